package handler

import (
	"context"
	"errors"
	"net/http"

	cartModel "bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/domains/identity/model"
	"bakery-storefront/internal/domains/identity/service"
	"bakery-storefront/internal/shared"
	"bakery-storefront/internal/shared/middleware"
	"bakery-storefront/internal/shared/response"
	"bakery-storefront/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CartViewer renders the cart that belongs to an identity.
type CartViewer interface {
	GetCart(ctx context.Context, identity shared.Identity) cartModel.Summary
}

type Handler struct {
	service service.ServiceInterface
	carts   CartViewer
}

func NewHandler(service service.ServiceInterface, carts CartViewer) *Handler {
	return &Handler{service: service, carts: carts}
}

func sessionResponse(identity shared.Identity) model.SessionResponse {
	return model.SessionResponse{
		SessionID: identity.SessionID,
		UserID:    identity.UserID,
		SignedIn:  !identity.IsAnonymous(),
	}
}

// GET /session
func (h *Handler) GetSession(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	response.Success(c, http.StatusOK, "Session retrieved successfully", sessionResponse(identity))
}

// POST /session/sign-in
func (h *Handler) SignIn(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request", err.Error())
		return
	}

	session, err := h.service.SignIn(c.Request.Context(), identity.SessionID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	signedIn := shared.Identity{SessionID: session.SessionID, UserID: session.UserID}
	resp := model.SignInResponse{SessionResponse: sessionResponse(signedIn)}
	if h.carts != nil {
		resp.Cart = h.carts.GetCart(c.Request.Context(), signedIn)
	}

	response.Success(c, http.StatusOK, "Signed in successfully", resp)
}

// POST /session/sign-out
func (h *Handler) SignOut(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.InternalServerError(c, "Missing session")
		return
	}

	if err := h.service.SignOut(c.Request.Context(), identity.SessionID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Signed out successfully", sessionResponse(shared.Identity{SessionID: identity.SessionID}))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidUserID):
		response.ErrorWithCode(c, http.StatusBadRequest, model.ErrCodeInvalidUserID, "Invalid user id", err.Error())
	case errors.Is(err, model.ErrAlreadySignedIn):
		response.Conflict(c, model.ErrCodeAlreadySignedIn, "Sign out before switching accounts")
	case errors.Is(err, model.ErrNotSignedIn):
		response.Conflict(c, model.ErrCodeNotSignedIn, "Session is not signed in")
	default:
		logger.Error("Session request failed", err)
		response.ServiceUnavailable(c, "SESSION_UNAVAILABLE", "Sign-in is temporarily unavailable")
	}
}
