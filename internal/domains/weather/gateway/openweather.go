package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bakery-storefront/internal/domains/weather/model"
)

type OpenWeatherConfig struct {
	APIKey  string
	BaseURL string // e.g. https://api.openweathermap.org/data/2.5
	Units   string
	Lang    string
}

type OpenWeatherClient struct {
	cfg    OpenWeatherConfig
	client *http.Client
	now    func() time.Time
}

func NewOpenWeatherClient(cfg OpenWeatherConfig, client *http.Client) *OpenWeatherClient {
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	if cfg.Lang == "" {
		cfg.Lang = "pt_br"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &OpenWeatherClient{cfg: cfg, client: client, now: time.Now}
}

// currentWeatherResponse is the subset of /weather we read
type currentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *OpenWeatherClient) FetchByCoordinates(ctx context.Context, lat, lon float64) (*model.Observation, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.fetch(ctx, q)
}

func (c *OpenWeatherClient) FetchByCityName(ctx context.Context, city string) (*model.Observation, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("%w: empty city name", model.ErrCityNotFound)
	}
	q := url.Values{}
	q.Set("q", city)
	return c.fetch(ctx, q)
}

func (c *OpenWeatherClient) fetch(ctx context.Context, q url.Values) (*model.Observation, error) {
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", c.cfg.Units)
	q.Set("lang", c.cfg.Lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrWeatherFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrWeatherFetchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %w", model.ErrWeatherFetchFailed, model.ErrCityNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: upstream status %d", model.ErrWeatherFetchFailed, resp.StatusCode)
	}

	var body currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", model.ErrWeatherFetchFailed, err)
	}
	if len(body.Weather) == 0 {
		return nil, fmt.Errorf("%w: response has no conditions", model.ErrWeatherFetchFailed)
	}

	obs := &model.Observation{
		City:            body.Name,
		Country:         body.Sys.Country,
		TemperatureC:    int(math.Round(body.Main.Temp)),
		FeelsLikeC:      int(math.Round(body.Main.FeelsLike)),
		ConditionMain:   body.Weather[0].Main,
		Description:     body.Weather[0].Description,
		HumidityPercent: body.Main.Humidity,
		Icon:            body.Weather[0].Icon,
		IconURL:         fmt.Sprintf(model.IconURLTemplate, body.Weather[0].Icon),
		ObservedAt:      c.now().UTC(),
	}
	if body.Wind != nil {
		obs.WindSpeed = body.Wind.Speed
	}

	if err := obs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrWeatherFetchFailed, err)
	}
	return obs, nil
}
