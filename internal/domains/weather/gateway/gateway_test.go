package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery-storefront/internal/domains/weather/model"
	"bakery-storefront/internal/infrastructure/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const saoPauloPayload = `{
  "name": "São Paulo",
  "sys": {"country": "BR"},
  "main": {"temp": 29.6, "feels_like": 31.2, "humidity": 74},
  "weather": [{"main": "Clouds", "description": "nublado", "icon": "04d"}],
  "wind": {"speed": 3.6}
}`

func TestOpenWeather_FetchByCoordinates(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(saoPauloPayload))
	}))
	defer srv.Close()

	client := NewOpenWeatherClient(OpenWeatherConfig{APIKey: "k", BaseURL: srv.URL + "/"}, httpclient.NewTracedClient(time.Second))
	obs, err := client.FetchByCoordinates(context.Background(), -23.55, -46.63)
	require.NoError(t, err)

	assert.Equal(t, "/weather", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "-23.55", q.Get("lat"))
	assert.Equal(t, "-46.63", q.Get("lon"))
	assert.Equal(t, "k", q.Get("appid"))
	assert.Equal(t, "metric", q.Get("units"))
	assert.Equal(t, "pt_br", q.Get("lang"))

	assert.Equal(t, "São Paulo", obs.City)
	assert.Equal(t, "BR", obs.Country)
	assert.Equal(t, 30, obs.TemperatureC)
	assert.Equal(t, 31, obs.FeelsLikeC)
	assert.Equal(t, 74, obs.HumidityPercent)
	assert.Equal(t, "Clouds", obs.ConditionMain)
	assert.Equal(t, "https://openweathermap.org/img/wn/04d@2x.png", obs.IconURL)
	assert.Equal(t, 3.6, obs.WindSpeed)
}

func TestOpenWeather_FetchByCityName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "São Paulo" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"name":"São Paulo","sys":{"country":"BR"},"main":{"temp":14.4,"feels_like":13.9,"humidity":60},"weather":[{"main":"Clear","description":"céu limpo","icon":"01n"}]}`))
	}))
	defer srv.Close()

	client := NewOpenWeatherClient(OpenWeatherConfig{APIKey: "k", BaseURL: srv.URL}, srv.Client())

	obs, err := client.FetchByCityName(context.Background(), "São Paulo")
	require.NoError(t, err)
	assert.Equal(t, 14, obs.TemperatureC)
	assert.Zero(t, obs.WindSpeed)

	_, err = client.FetchByCityName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, model.ErrCityNotFound)
	assert.ErrorIs(t, err, model.ErrWeatherFetchFailed)
}

func TestOpenWeather_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"unauthorized", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusUnauthorized) }},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{`)) }},
		{"no conditions", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"name":"x","weather":[]}`)) }},
		{"slow", func(w http.ResponseWriter, _ *http.Request) { time.Sleep(300 * time.Millisecond) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewOpenWeatherClient(OpenWeatherConfig{BaseURL: srv.URL}, httpclient.NewTracedClient(100*time.Millisecond))
			_, err := client.FetchByCoordinates(context.Background(), 0, 0)
			assert.ErrorIs(t, err, model.ErrWeatherFetchFailed)
			assert.NotErrorIs(t, err, model.ErrCityNotFound)
		})
	}
}

func TestViaCEP_LookupCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/01001000/json/":
			_, _ = w.Write([]byte(`{"cep":"01001-000","localidade":"São Paulo","uf":"SP"}`))
		case "/99999999/json/":
			_, _ = w.Write([]byte(`{"erro": true}`))
		case "/88888888/json/":
			_, _ = w.Write([]byte(`{"erro": "true"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := NewViaCEPClient(srv.URL, srv.Client())
	ctx := context.Background()

	city, err := client.LookupCity(ctx, "01001-000")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", city)

	_, err = client.LookupCity(ctx, "99999-999")
	assert.ErrorIs(t, err, model.ErrPostalCodeNotFound)

	_, err = client.LookupCity(ctx, "88888888")
	assert.ErrorIs(t, err, model.ErrPostalCodeNotFound)

	_, err = client.LookupCity(ctx, "123")
	assert.ErrorIs(t, err, model.ErrInvalidPostalCode)
}
