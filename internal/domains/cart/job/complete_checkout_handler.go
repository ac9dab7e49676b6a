package job

import (
	"context"
	"fmt"

	"bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/shared/utils"
	"bakery-storefront/pkg/logger"

	"github.com/hibiken/asynq"
)

// CheckoutCompleter is the part of the cart service the worker needs.
type CheckoutCompleter interface {
	CompleteCheckout(ctx context.Context, payload model.CompleteCheckoutPayload) error
}

// CompleteCheckoutHandler clears the cart of a simulated order once its
// delay has elapsed.
type CompleteCheckoutHandler struct {
	carts CheckoutCompleter
}

func NewCompleteCheckoutHandler(carts CheckoutCompleter) *CompleteCheckoutHandler {
	return &CompleteCheckoutHandler{carts: carts}
}

func (h *CompleteCheckoutHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.CompleteCheckoutPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		// a malformed payload will never succeed
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("Processing complete checkout task", map[string]interface{}{
		"checkout_id": payload.CheckoutID,
		"storage_key": payload.StorageKey,
		"item_count":  payload.ItemCount,
		"total":       payload.Total,
	})

	if err := h.carts.CompleteCheckout(ctx, payload); err != nil {
		return fmt.Errorf("complete checkout %s: %w", payload.CheckoutID, err)
	}

	logger.Info("Checkout completed, cart cleared", map[string]interface{}{
		"checkout_id": payload.CheckoutID,
	})
	return nil
}
