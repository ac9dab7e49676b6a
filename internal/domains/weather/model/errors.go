package model

import "errors"

var (
	ErrWeatherFetchFailed = errors.New("weather fetch failed")
	// ErrWeatherUnavailable is terminal: the coordinates and the default
	// city both failed.
	ErrWeatherUnavailable = errors.New("weather unavailable")
	ErrCityNotFound       = errors.New("city not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	ErrInvalidPostalCode  = errors.New("invalid postal code")
	ErrPostalCodeNotFound = errors.New("postal code not found")
	ErrPostalLookupFailed = errors.New("postal code lookup failed")
)

// Error codes returned in API responses
const (
	ErrCodeWeatherUnavailable = "WEATHER_UNAVAILABLE"
	ErrCodeCityNotFound       = "CITY_NOT_FOUND"
	ErrCodeInvalidCoordinates = "INVALID_COORDINATES"
	ErrCodeInvalidPostalCode  = "INVALID_POSTAL_CODE"
	ErrCodePostalCodeNotFound = "POSTAL_CODE_NOT_FOUND"
	ErrCodeNoSuggestion       = "NO_SUGGESTION"
)
