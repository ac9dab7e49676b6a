package main

import (
	"github.com/hibiken/asynq"

	cartJob "bakery-storefront/internal/domains/cart/job"
	"bakery-storefront/internal/shared"
	"bakery-storefront/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	completeCheckout *cartJob.CompleteCheckoutHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		completeCheckout: cartJob.NewCompleteCheckoutHandler(c.CartService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Cart
	mux.HandleFunc(shared.TypeCompleteCheckout, h.completeCheckout.ProcessTask)
}
