package service

import (
	"context"
	"fmt"

	catalogModel "bakery-storefront/internal/domains/catalog/model"
	"bakery-storefront/internal/domains/recommendation/model"
	"bakery-storefront/internal/domains/recommendation/repository"
	weatherModel "bakery-storefront/internal/domains/weather/model"
	"bakery-storefront/internal/shared/utils"
	"bakery-storefront/pkg/logger"
)

type ProductLookup interface {
	Get(id int) (catalogModel.Product, error)
}

// Engine remembers, per browser session, the last observation and the
// suggestion computed from it. Every Update recomputes; Current only re-reads.
type Engine struct {
	catalog ProductLookup
	repo    repository.RepositoryInterface
}

func NewEngine(catalog ProductLookup, repo repository.RepositoryInterface) *Engine {
	return &Engine{catalog: catalog, repo: repo}
}

// Update computes the suggestion for obs and caches it for the session.
// A failed cache write is logged; the fresh suggestion is still returned.
func (e *Engine) Update(ctx context.Context, sessionID string, obs weatherModel.Observation) model.Suggestion {
	s := Suggest(obs)

	if err := e.repo.Save(ctx, sessionID, model.Snapshot{Observation: obs, Suggestion: s}); err != nil {
		logger.Warn("Failed to cache suggestion", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}

	logger.Info("Recommendation updated", map[string]interface{}{
		"city":        obs.City,
		"temperature": obs.TemperatureC,
		"condition":   obs.ConditionMain,
		"humidity":    obs.HumidityPercent,
		"reason":      string(s.ReasonCode),
		"product_id":  s.ProductID,
	})
	return s
}

// Current returns the cached pair, or ErrNoSuggestion when the session has
// none or the cache cannot be read.
func (e *Engine) Current(ctx context.Context, sessionID string) (*model.Snapshot, error) {
	snapshot, err := e.repo.Load(ctx, sessionID)
	if err != nil {
		logger.Warn("Failed to read cached suggestion", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, model.ErrNoSuggestion
	}
	if snapshot == nil {
		return nil, model.ErrNoSuggestion
	}
	return snapshot, nil
}

// Report renders a suggestion with its product and promotional price.
func (e *Engine) Report(obs weatherModel.Observation, s model.Suggestion) (*model.Report, error) {
	product, err := e.catalog.Get(s.ProductID)
	if err != nil {
		return nil, fmt.Errorf("suggested product %d: %w", s.ProductID, err)
	}

	return &model.Report{
		Weather:         obs,
		WeatherEmoji:    obs.Emoji(),
		Suggestion:      s,
		Product:         product,
		Price:           product.Price,
		DiscountedPrice: utils.ApplyDiscount(product.Price, s.DiscountPercent),
	}, nil
}
