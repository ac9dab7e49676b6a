package repository

import (
	"bakery-storefront/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
)

// DefaultMenu is the built-in cake menu used when no spreadsheet is configured.
func DefaultMenu() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Bolo Red Velvet",
			Description: "Camadas de massa vermelha aveludada com cream cheese frosting",
			Price:       decimal.RequireFromString("109.90"),
			Rating:      5,
			Image:       "https://images.pexels.com/photos/1721932/pexels-photo-1721932.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:         "Bolo Red Velvet com cobertura de cream cheese e decoração elegante",
		},
		{
			ID:          2,
			Name:        "Bolo de Chocolate Belga",
			Description: "Chocolate 70% cacau com recheio de brigadeiro gourmet",
			Price:       decimal.RequireFromString("94.90"),
			Rating:      5,
			Image:       "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:         "Bolo de chocolate belga com ganache e decoração sofisticada",
		},
		{
			ID:          3,
			Name:        "Bolo de Morango",
			Description: "Massa branca com recheio de creme de baunilha e morangos frescos",
			Price:       decimal.RequireFromString("99.90"),
			Rating:      4,
			Image:       "https://images.pexels.com/photos/1126359/pexels-photo-1126359.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:         "Bolo de morango com chantilly e morangos frescos",
		},
		{
			ID:          4,
			Name:        "Bolo de Limão Siciliano",
			Description: "Massa cítrica com cobertura de merengue italiano queimado",
			Price:       decimal.RequireFromString("89.90"),
			Rating:      4,
			Image:       "https://images.pexels.com/photos/1721934/pexels-photo-1721934.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:         "Bolo de limão siciliano com merengue dourado",
		},
	}
}
