package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cartModel "bakery-storefront/internal/domains/cart/model"
	catalogService "bakery-storefront/internal/domains/catalog/service"
	"bakery-storefront/internal/domains/recommendation/model"
	"bakery-storefront/internal/domains/recommendation/repository"
	"bakery-storefront/internal/domains/recommendation/service"
	weatherModel "bakery-storefront/internal/domains/weather/model"
	infraCache "bakery-storefront/internal/infrastructure/cache"
	"bakery-storefront/internal/shared"
	"bakery-storefront/internal/shared/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWeather answers from a fixed table.
type fakeWeather struct {
	byCity map[string]weatherModel.Observation
	coords []weatherModel.Coordinates
}

func (f *fakeWeather) Refresh(_ context.Context, coords *weatherModel.Coordinates) (*weatherModel.Observation, error) {
	if coords != nil {
		if err := coords.Validate(); err != nil {
			return nil, weatherModel.ErrInvalidCoordinates
		}
		f.coords = append(f.coords, *coords)
	}
	obs, ok := f.byCity["São Paulo"]
	if !ok {
		return nil, weatherModel.ErrWeatherUnavailable
	}
	return &obs, nil
}

func (f *fakeWeather) ByCity(_ context.Context, city string) (*weatherModel.Observation, error) {
	obs, ok := f.byCity[city]
	if !ok {
		return nil, weatherModel.ErrCityNotFound
	}
	return &obs, nil
}

func (f *fakeWeather) ByPostalCode(ctx context.Context, cep string) (*weatherModel.Observation, error) {
	if cep == "01001000" {
		return f.ByCity(ctx, "São Paulo")
	}
	return nil, weatherModel.ErrInvalidPostalCode
}

type fakeCart struct {
	added []int
}

func (f *fakeCart) AddItem(_ context.Context, _ shared.Identity, productID int) (cartModel.Summary, error) {
	f.added = append(f.added, productID)
	return cartModel.Summary{ItemCount: len(f.added)}, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setup(t *testing.T, cities map[string]weatherModel.Observation) (*gin.Engine, *fakeWeather, *fakeCart) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := catalogService.Load("")
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := infraCache.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	engine := service.NewEngine(catalog, repository.NewSnapshotRepository(infraCache.NewRedisCache(client), time.Hour))
	weather := &fakeWeather{byCity: cities}
	carts := &fakeCart{}
	h := NewHandler(weather, engine, carts)

	r := gin.New()
	r.Use(middleware.Session(middleware.DefaultSessionMiddlewareConfig(nil)))
	g := r.Group("/weather/suggestion")
	g.GET("", h.GetSuggestion)
	g.GET("/current", h.GetCurrent)
	g.GET("/city/:name", h.GetByCity)
	g.GET("/cep/:cep", h.GetByPostalCode)
	g.POST("/add-to-cart", h.AddToCart)
	return r, weather, carts
}

const sessionA = "0b5c8c1e-3f7d-4a55-9d6a-6f0e7c2b9a10"
const sessionB = "9e2f4d6a-1c3b-4e5f-8a7b-2d4c6e8f0a12"

func do(t *testing.T, r *gin.Engine, method, path string) (int, envelope) {
	t.Helper()
	return doAs(t, r, sessionA, method, path)
}

func doAs(t *testing.T, r *gin.Engine, sessionID, method, path string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func reportOf(t *testing.T, env envelope) model.Report {
	t.Helper()
	var r model.Report
	require.NoError(t, json.Unmarshal(env.Data, &r))
	return r
}

var cities = map[string]weatherModel.Observation{
	"São Paulo": {City: "São Paulo", TemperatureC: 21, ConditionMain: "Rain", HumidityPercent: 88},
	"Recife":    {City: "Recife", TemperatureC: 31, ConditionMain: "Clear", HumidityPercent: 70},
}

func TestGetSuggestion(t *testing.T) {
	r, weather, _ := setup(t, cities)

	code, env := do(t, r, http.MethodGet, "/weather/suggestion?lat=-23.5&lon=-46.6")
	require.Equal(t, http.StatusOK, code)
	report := reportOf(t, env)
	assert.Equal(t, model.ReasonRainyWeather, report.Suggestion.ReasonCode)
	assert.Equal(t, 1, report.Product.ID)
	require.Len(t, weather.coords, 1)
	assert.Equal(t, -23.5, weather.coords[0].Lat)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion/current")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "São Paulo", reportOf(t, env).Weather.City)
}

func TestGetSuggestion_Errors(t *testing.T) {
	r, _, _ := setup(t, map[string]weatherModel.Observation{})

	code, env := do(t, r, http.MethodGet, "/weather/suggestion/current")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, weatherModel.ErrCodeNoSuggestion, env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, weatherModel.ErrCodeWeatherUnavailable, env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion?lat=abc&lon=1")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, weatherModel.ErrCodeInvalidCoordinates, env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion?lat=95&lon=1")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, weatherModel.ErrCodeInvalidCoordinates, env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion/city/Atlantis")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, weatherModel.ErrCodeCityNotFound, env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion/cep/123")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, weatherModel.ErrCodeInvalidPostalCode, env.Error.Code)
}

func TestGetByCityAndPostalCode(t *testing.T) {
	r, _, _ := setup(t, cities)

	code, env := do(t, r, http.MethodGet, "/weather/suggestion/city/Recife")
	require.Equal(t, http.StatusOK, code)
	report := reportOf(t, env)
	assert.Equal(t, model.ReasonHotWeather, report.Suggestion.ReasonCode)
	assert.Equal(t, 10, report.Suggestion.DiscountPercent)

	code, env = do(t, r, http.MethodGet, "/weather/suggestion/cep/01001000")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "São Paulo", reportOf(t, env).Weather.City)
}

func TestAddToCart(t *testing.T) {
	r, _, carts := setup(t, cities)

	code, _ := do(t, r, http.MethodPost, "/weather/suggestion/add-to-cart")
	assert.Equal(t, http.StatusConflict, code)
	assert.Empty(t, carts.added)

	do(t, r, http.MethodGet, "/weather/suggestion/city/Recife")
	code, env := do(t, r, http.MethodPost, "/weather/suggestion/add-to-cart")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, []int{4}, carts.added)

	var resp AddToCartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, model.ReasonHotWeather, resp.Suggestion.ReasonCode)
	assert.Equal(t, 1, resp.Cart.ItemCount)
}

func TestSuggestionIsPerSession(t *testing.T) {
	r, _, carts := setup(t, cities)

	code, _ := doAs(t, r, sessionA, http.MethodGet, "/weather/suggestion/city/Recife")
	require.Equal(t, http.StatusOK, code)

	code, env := doAs(t, r, sessionB, http.MethodGet, "/weather/suggestion/current")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, weatherModel.ErrCodeNoSuggestion, env.Error.Code)

	code, _ = doAs(t, r, sessionB, http.MethodPost, "/weather/suggestion/add-to-cart")
	assert.Equal(t, http.StatusConflict, code)
	assert.Empty(t, carts.added)
}
