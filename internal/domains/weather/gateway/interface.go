package gateway

import (
	"context"

	"bakery-storefront/internal/domains/weather/model"
)

// =====================================================
// GATEWAY INTERFACES
// =====================================================

// WeatherProvider fetches the current conditions from an upstream API
type WeatherProvider interface {
	FetchByCoordinates(ctx context.Context, lat, lon float64) (*model.Observation, error)
	FetchByCityName(ctx context.Context, city string) (*model.Observation, error)
}

// PostalCodeResolver maps a Brazilian CEP to its city
type PostalCodeResolver interface {
	LookupCity(ctx context.Context, cep string) (string, error)
}
