package service

import (
	"fmt"
	"strings"

	"bakery-storefront/internal/domains/recommendation/model"
	weatherModel "bakery-storefront/internal/domains/weather/model"
)

// Product ids on the built-in menu.
const (
	productRedVelvet = 1
	productChocolate = 2
	productMorango   = 3
	productLimao     = 4
)

const (
	hotThreshold      = 30
	veryHotThreshold  = 35
	coldThreshold     = 15
	veryColdThreshold = 10
	humidThreshold    = 80
)

// Suggest picks one product for the observation. Rules are checked in order
// and the first match wins: hot, cold, rain, humidity, pleasant.
func Suggest(obs weatherModel.Observation) model.Suggestion {
	temp := obs.TemperatureC
	condition := strings.ToLower(obs.ConditionMain)

	switch {
	case temp >= hotThreshold:
		discount := 10
		if temp >= veryHotThreshold {
			discount = 15
		}
		return model.Suggestion{
			ProductID:       productLimao,
			Title:           "Perfeito para o Calor! 🌞",
			Message:         fmt.Sprintf("Com %d°C, nada melhor que nosso refrescante Bolo de Limão Siciliano com cobertura gelada!", temp),
			DiscountPercent: discount,
			ReasonCode:      model.ReasonHotWeather,
			Tips: []string{
				"Servido gelado para máximo refrescamento",
				"Rico em vitamina C do limão siciliano",
				"Perfeito para compartilhar em família",
			},
		}

	case temp <= coldThreshold:
		discount := 8
		if temp <= veryColdThreshold {
			discount = 12
		}
		return model.Suggestion{
			ProductID:       productChocolate,
			Title:           "Aqueça seu Coração! ❄️",
			Message:         fmt.Sprintf("Com %d°C, nosso Bolo de Chocolate Belga quentinho é o que você precisa!", temp),
			DiscountPercent: discount,
			ReasonCode:      model.ReasonColdWeather,
			Tips: []string{
				"Servido morno para maior conforto",
				"Chocolate belga premium 70% cacau",
				"Acompanha calda quente de chocolate",
			},
		}

	case strings.Contains(condition, "rain") || strings.Contains(condition, "drizzle"):
		return model.Suggestion{
			ProductID:       productRedVelvet,
			Title:           "Conforto para Dias Chuvosos! 🌧️",
			Message:         "Dia chuvoso pede aconchego! Nosso Red Velvet com cream cheese é puro conforto.",
			DiscountPercent: 10,
			ReasonCode:      model.ReasonRainyWeather,
			Tips: []string{
				"Perfeito com uma xícara de café quente",
				"Massa úmida e saborosa",
				"Cream cheese frosting artesanal",
			},
		}

	case obs.HumidityPercent >= humidThreshold:
		return model.Suggestion{
			ProductID:       productLimao,
			Title:           "Refrescante para o Ar Úmido! 💨",
			Message:         fmt.Sprintf("Umidade alta (%d%%)? Nosso Bolo de Limão traz leveza e frescor!", obs.HumidityPercent),
			DiscountPercent: 8,
			ReasonCode:      model.ReasonHighHumidity,
			Tips: []string{
				"Sabor cítrico refrescante",
				"Textura leve e aerada",
				"Ideal para clima úmido",
			},
		}

	default:
		return model.Suggestion{
			ProductID:       productMorango,
			Title:           "Perfeito para o Clima Agradável! 🍓",
			Message:         fmt.Sprintf("Clima agradável de %d°C! Nosso Bolo de Morango é a escolha perfeita.", temp),
			DiscountPercent: 5,
			ReasonCode:      model.ReasonPleasantWeather,
			Tips: []string{
				"Morangos frescos selecionados",
				"Creme de baunilha artesanal",
				"Decoração elegante com frutas",
			},
		}
	}
}
