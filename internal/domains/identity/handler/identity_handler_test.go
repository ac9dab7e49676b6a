package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cartModel "bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/domains/identity/model"
	"bakery-storefront/internal/domains/identity/repository"
	"bakery-storefront/internal/domains/identity/service"
	infraCache "bakery-storefront/internal/infrastructure/cache"
	"bakery-storefront/internal/shared"
	"bakery-storefront/internal/shared/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarts struct {
	seen []shared.Identity
}

func (f *fakeCarts) GetCart(_ context.Context, identity shared.Identity) cartModel.Summary {
	f.seen = append(f.seen, identity)
	return cartModel.Summary{ItemCount: 3}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T) (*gin.Engine, *fakeCarts) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := infraCache.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	svc := service.NewIdentityService(repository.NewSessionRepository(infraCache.NewRedisCache(client), time.Hour))
	carts := &fakeCarts{}
	h := NewHandler(svc, carts)

	r := gin.New()
	r.Use(middleware.Session(middleware.DefaultSessionMiddlewareConfig(svc)))
	r.GET("/session", h.GetSession)
	r.POST("/session/sign-in", h.SignIn)
	r.POST("/session/sign-out", h.SignOut)
	return r, carts
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "7f8c2a34-5a43-4f5e-9a39-0c8e4c1f2b11"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestSessionLifecycle(t *testing.T) {
	r, carts := newRouter(t)

	code, env := do(t, r, http.MethodGet, "/session", "")
	require.Equal(t, http.StatusOK, code)
	var session model.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.False(t, session.SignedIn)

	code, env = do(t, r, http.MethodPost, "/session/sign-in", `{"user_id":"maria"}`)
	require.Equal(t, http.StatusOK, code)
	var signIn struct {
		model.SessionResponse
		Cart cartModel.Summary `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &signIn))
	assert.True(t, signIn.SignedIn)
	assert.Equal(t, "maria", signIn.UserID)
	assert.Equal(t, 3, signIn.Cart.ItemCount)
	require.Len(t, carts.seen, 1)
	assert.Equal(t, "maria", carts.seen[0].UserID)

	code, env = do(t, r, http.MethodGet, "/session", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "maria", session.UserID)

	code, env = do(t, r, http.MethodPost, "/session/sign-in", `{"user_id":"joao"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, model.ErrCodeAlreadySignedIn, env.Error.Code)

	code, _ = do(t, r, http.MethodPost, "/session/sign-out", "")
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodPost, "/session/sign-out", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, model.ErrCodeNotSignedIn, env.Error.Code)
}

func TestSignIn_InvalidUserID(t *testing.T) {
	r, _ := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/session/sign-in", `{"user_id":"a:b"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, model.ErrCodeInvalidUserID, env.Error.Code)

	code, _ = do(t, r, http.MethodPost, "/session/sign-in", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
