package model

import (
	catalogModel "bakery-storefront/internal/domains/catalog/model"
	weatherModel "bakery-storefront/internal/domains/weather/model"

	"github.com/shopspring/decimal"
)

// ReasonCode identifies which rule produced a suggestion.
type ReasonCode string

const (
	ReasonHotWeather      ReasonCode = "hot-weather"
	ReasonColdWeather     ReasonCode = "cold-weather"
	ReasonRainyWeather    ReasonCode = "rainy-weather"
	ReasonHighHumidity    ReasonCode = "high-humidity"
	ReasonPleasantWeather ReasonCode = "pleasant-weather"
)

type Suggestion struct {
	ProductID       int        `json:"product_id"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	DiscountPercent int        `json:"discount_percent"`
	Tips            []string   `json:"tips"`
	ReasonCode      ReasonCode `json:"reason_code"`
}

// Report is what the storefront renders: the weather, the suggestion and
// the suggested product with its promotional price.
type Report struct {
	Weather         weatherModel.Observation `json:"weather"`
	WeatherEmoji    string                   `json:"weather_emoji"`
	Suggestion      Suggestion               `json:"suggestion"`
	Product         catalogModel.Product     `json:"product"`
	Price           decimal.Decimal          `json:"price"`
	DiscountedPrice decimal.Decimal          `json:"discounted_price"`
}

// Snapshot is the last observation a session saw and what it produced.
type Snapshot struct {
	Observation weatherModel.Observation `json:"observation"`
	Suggestion  Suggestion               `json:"suggestion"`
}
