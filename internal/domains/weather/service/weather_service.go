package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery-storefront/internal/domains/weather/gateway"
	"bakery-storefront/internal/domains/weather/model"
	"bakery-storefront/pkg/logger"
)

type Config struct {
	DefaultCity string
	Timeout     time.Duration
}

type WeatherService struct {
	provider gateway.WeatherProvider
	postal   gateway.PostalCodeResolver
	cfg      Config
}

func NewWeatherService(provider gateway.WeatherProvider, postal gateway.PostalCodeResolver, cfg Config) *WeatherService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &WeatherService{provider: provider, postal: postal, cfg: cfg}
}

func (s *WeatherService) withTimeout(ctx context.Context, fetch func(ctx context.Context) (*model.Observation, error)) (*model.Observation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	return fetch(ctx)
}

// ===================================
// LOOKUPS
// ===================================

func (s *WeatherService) Refresh(ctx context.Context, coords *model.Coordinates) (*model.Observation, error) {
	if coords != nil {
		if err := coords.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidCoordinates, err)
		}

		obs, err := s.withTimeout(ctx, func(ctx context.Context) (*model.Observation, error) {
			return s.provider.FetchByCoordinates(ctx, coords.Lat, coords.Lon)
		})
		if err == nil {
			return obs, nil
		}

		logger.Warn("Weather by coordinates failed, falling back to default city", map[string]interface{}{
			"lat":          coords.Lat,
			"lon":          coords.Lon,
			"default_city": s.cfg.DefaultCity,
			"error":        err.Error(),
		})
	}

	obs, err := s.withTimeout(ctx, func(ctx context.Context) (*model.Observation, error) {
		return s.provider.FetchByCityName(ctx, s.cfg.DefaultCity)
	})
	if err != nil {
		logger.Error("Weather for default city failed", err)
		return nil, fmt.Errorf("%w: %v", model.ErrWeatherUnavailable, err)
	}

	return obs, nil
}

func (s *WeatherService) ByCity(ctx context.Context, city string) (*model.Observation, error) {
	obs, err := s.withTimeout(ctx, func(ctx context.Context) (*model.Observation, error) {
		return s.provider.FetchByCityName(ctx, city)
	})
	if err != nil {
		if !errors.Is(err, model.ErrCityNotFound) {
			logger.Error("Weather by city failed", err)
		}
		return nil, err
	}

	return obs, nil
}

func (s *WeatherService) ByPostalCode(ctx context.Context, cep string) (*model.Observation, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	city, err := s.postal.LookupCity(lookupCtx, cep)
	cancel()
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("Postal code %s resolved to %s", cep, city))
	return s.ByCity(ctx, city)
}
