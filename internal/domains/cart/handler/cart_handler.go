package handler

import (
	"errors"
	"net/http"

	"bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/domains/cart/service"
	"bakery-storefront/internal/shared/middleware"
	"bakery-storefront/internal/shared/response"
	"bakery-storefront/internal/shared/utils"
	"bakery-storefront/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the cart
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ===================================
// GET /cart
// ===================================

func (h *Handler) GetCart(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	response.Success(c, http.StatusOK, "Cart retrieved successfully", h.service.GetCart(c.Request.Context(), identity))
}

// ===================================
// POST /cart/items
// ===================================

func (h *Handler) AddItem(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request", err.Error())
		return
	}

	summary, err := h.service.AddItem(c.Request.Context(), identity, req.ProductID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Item added to cart", summary)
}

// ===================================
// PATCH /cart/items/:product_id
// ===================================

func (h *Handler) ChangeQuantity(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	productID, err := utils.ParsePositiveInt(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id", err.Error())
		return
	}

	var req model.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request", err.Error())
		return
	}

	summary, err := h.service.ChangeQuantity(c.Request.Context(), identity, productID, *req.Delta)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Quantity updated", summary)
}

// ===================================
// DELETE /cart/items/:product_id
// ===================================

func (h *Handler) RemoveItem(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	productID, err := utils.ParsePositiveInt(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Item removed from cart", h.service.RemoveItem(c.Request.Context(), identity, productID))
}

// ===================================
// DELETE /cart
// ===================================

func (h *Handler) Clear(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	response.Success(c, http.StatusOK, "Cart cleared", h.service.Clear(c.Request.Context(), identity))
}

// ===================================
// POST /cart/checkout
// ===================================

// Checkout simulates placing the order. The cart is emptied by the worker
// once the checkout delay has passed.
func (h *Handler) Checkout(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, "Order received", result)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownProduct):
		response.ErrorWithCode(c, http.StatusNotFound, model.ErrCodeUnknownProduct, "Product is not on the menu", nil)
	case errors.Is(err, model.ErrItemNotInCart):
		response.ErrorWithCode(c, http.StatusNotFound, model.ErrCodeItemNotInCart, "Product is not in the cart", nil)
	case errors.Is(err, model.ErrInvalidQuantity):
		response.ErrorWithCode(c, http.StatusBadRequest, model.ErrCodeInvalidQuantity, "Quantity out of range", nil)
	case errors.Is(err, model.ErrEmptyCart):
		response.Conflict(c, model.ErrCodeEmptyCart, "Cart is empty")
	case errors.Is(err, model.ErrCheckoutQueue):
		logger.Error("Checkout could not be scheduled", err)
		response.ServiceUnavailable(c, "CHECKOUT_UNAVAILABLE", "Checkout is temporarily unavailable")
	default:
		logger.Error("Cart request failed", err)
		response.InternalServerError(c, "Cart request failed")
	}
}
