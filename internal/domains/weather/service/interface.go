package service

import (
	"context"

	"bakery-storefront/internal/domains/weather/model"
)

type ServiceInterface interface {
	// Refresh tries the coordinates (when given) and falls back to the
	// default city exactly once before giving up with ErrWeatherUnavailable.
	Refresh(ctx context.Context, coords *model.Coordinates) (*model.Observation, error)
	ByCity(ctx context.Context, city string) (*model.Observation, error)
	ByPostalCode(ctx context.Context, cep string) (*model.Observation, error)
}
