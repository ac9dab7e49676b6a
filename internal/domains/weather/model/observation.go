package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const IconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// Observation is the current weather at a place, temperatures already
// rounded to whole degrees Celsius.
type Observation struct {
	City            string    `json:"city"`
	Country         string    `json:"country"`
	TemperatureC    int       `json:"temperature_c"`
	FeelsLikeC      int       `json:"feels_like_c"`
	ConditionMain   string    `json:"condition_main"`
	Description     string    `json:"description"`
	HumidityPercent int       `json:"humidity_percent"`
	Icon            string    `json:"icon"`
	IconURL         string    `json:"icon_url"`
	WindSpeed       float64   `json:"wind_speed"`
	ObservedAt      time.Time `json:"observed_at"`
}

func (o Observation) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ConditionMain, validation.Required),
		validation.Field(&o.HumidityPercent, validation.Min(0), validation.Max(100)),
		validation.Field(&o.WindSpeed, validation.Min(0.0)),
	)
}

var conditionEmoji = map[string]string{
	"clear":        "☀️",
	"clouds":       "☁️",
	"rain":         "🌧️",
	"drizzle":      "🌦️",
	"thunderstorm": "⛈️",
	"snow":         "❄️",
	"mist":         "🌫️",
	"fog":          "🌫️",
	"haze":         "🌫️",
}

func (o Observation) Emoji() string {
	if e, ok := conditionEmoji[strings.ToLower(o.ConditionMain)]; ok {
		return e
	}
	return "🌤️"
}

// Coordinates as reported by the browser.
type Coordinates struct {
	Lat float64 `form:"lat" json:"lat"`
	Lon float64 `form:"lon" json:"lon"`
}

func (c Coordinates) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&c.Lon, validation.Min(-180.0), validation.Max(180.0)),
	)
}
