package handler

import (
	"context"
	"errors"
	"net/http"

	cartModel "bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/domains/recommendation/model"
	weatherModel "bakery-storefront/internal/domains/weather/model"
	weatherService "bakery-storefront/internal/domains/weather/service"
	"bakery-storefront/internal/shared"
	"bakery-storefront/internal/shared/middleware"
	"bakery-storefront/internal/shared/response"
	"bakery-storefront/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Recommender interface {
	Update(ctx context.Context, sessionID string, obs weatherModel.Observation) model.Suggestion
	Current(ctx context.Context, sessionID string) (*model.Snapshot, error)
	Report(obs weatherModel.Observation, s model.Suggestion) (*model.Report, error)
}

type CartAdder interface {
	AddItem(ctx context.Context, identity shared.Identity, productID int) (cartModel.Summary, error)
}

// AddToCartResponse echoes the suggestion that was added with the resulting cart.
type AddToCartResponse struct {
	Suggestion model.Suggestion  `json:"suggestion"`
	Cart       cartModel.Summary `json:"cart"`
}

type Handler struct {
	weather     weatherService.ServiceInterface
	recommender Recommender
	carts       CartAdder
}

func NewHandler(weather weatherService.ServiceInterface, recommender Recommender, carts CartAdder) *Handler {
	return &Handler{weather: weather, recommender: recommender, carts: carts}
}

// ===================================
// GET /weather/suggestion?lat=&lon=
// ===================================

// GetSuggestion refreshes the weather and returns the new suggestion.
// Without coordinates the default city is used.
func (h *Handler) GetSuggestion(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	var coords *weatherModel.Coordinates
	if c.Query("lat") != "" || c.Query("lon") != "" {
		var q weatherModel.Coordinates
		if err := c.ShouldBindQuery(&q); err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, weatherModel.ErrCodeInvalidCoordinates, "Invalid coordinates", err.Error())
			return
		}
		coords = &q
	}

	obs, err := h.weather.Refresh(c.Request.Context(), coords)
	h.respondWithObservation(c, identity, obs, err)
}

// ===================================
// GET /weather/suggestion/current
// ===================================

func (h *Handler) GetCurrent(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	snapshot, err := h.recommender.Current(c.Request.Context(), identity.SessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.respondWithReport(c, snapshot.Observation, snapshot.Suggestion)
}

// ===================================
// GET /weather/suggestion/city/:name
// ===================================

func (h *Handler) GetByCity(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	obs, err := h.weather.ByCity(c.Request.Context(), c.Param("name"))
	h.respondWithObservation(c, identity, obs, err)
}

// ===================================
// GET /weather/suggestion/cep/:cep
// ===================================

func (h *Handler) GetByPostalCode(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	obs, err := h.weather.ByPostalCode(c.Request.Context(), c.Param("cep"))
	h.respondWithObservation(c, identity, obs, err)
}

// ===================================
// POST /weather/suggestion/add-to-cart
// ===================================

// AddToCart puts the currently suggested product in the cart at its menu
// price; the discount is promotional copy only.
func (h *Handler) AddToCart(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	snapshot, err := h.recommender.Current(c.Request.Context(), identity.SessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	summary, err := h.carts.AddItem(c.Request.Context(), identity, snapshot.Suggestion.ProductID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Suggested item added to cart", AddToCartResponse{
		Suggestion: snapshot.Suggestion,
		Cart:       summary,
	})
}

// respondWithObservation recomputes the session's suggestion from a fresh
// observation and renders it.
func (h *Handler) respondWithObservation(c *gin.Context, identity shared.Identity, obs *weatherModel.Observation, err error) {
	if err != nil {
		h.handleError(c, err)
		return
	}

	suggestion := h.recommender.Update(c.Request.Context(), identity.SessionID, *obs)
	h.respondWithReport(c, *obs, suggestion)
}

func (h *Handler) respondWithReport(c *gin.Context, obs weatherModel.Observation, s model.Suggestion) {
	report, err := h.recommender.Report(obs, s)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Suggestion retrieved successfully", report)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, weatherModel.ErrInvalidCoordinates):
		response.ErrorWithCode(c, http.StatusBadRequest, weatherModel.ErrCodeInvalidCoordinates, "Invalid coordinates", err.Error())
	case errors.Is(err, weatherModel.ErrInvalidPostalCode):
		response.ErrorWithCode(c, http.StatusBadRequest, weatherModel.ErrCodeInvalidPostalCode, "Postal code must have 8 digits", nil)
	case errors.Is(err, weatherModel.ErrCityNotFound):
		response.ErrorWithCode(c, http.StatusNotFound, weatherModel.ErrCodeCityNotFound, "City not found", nil)
	case errors.Is(err, weatherModel.ErrPostalCodeNotFound):
		response.ErrorWithCode(c, http.StatusNotFound, weatherModel.ErrCodePostalCodeNotFound, "Postal code not found", nil)
	case errors.Is(err, model.ErrNoSuggestion):
		response.Conflict(c, weatherModel.ErrCodeNoSuggestion, "No suggestion yet, refresh the weather first")
	case errors.Is(err, weatherModel.ErrWeatherUnavailable),
		errors.Is(err, weatherModel.ErrWeatherFetchFailed),
		errors.Is(err, weatherModel.ErrPostalLookupFailed):
		response.ServiceUnavailable(c, weatherModel.ErrCodeWeatherUnavailable, "Weather is unavailable right now")
	case errors.Is(err, cartModel.ErrUnknownProduct):
		response.ErrorWithCode(c, http.StatusNotFound, cartModel.ErrCodeUnknownProduct, "Suggested product is not on the menu", nil)
	default:
		logger.Error("Suggestion request failed", err)
		response.InternalServerError(c, "Suggestion request failed")
	}
}
