package middleware

import (
	"context"
	"net/http"

	"bakery-storefront/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===================================
// INTERFACES
// ===================================

// IdentityResolver maps a browser session to the signed-in user, if any.
// Implemented by the identity service; declared here to avoid an import cycle.
type IdentityResolver interface {
	Current(ctx context.Context, sessionID string) shared.Identity
}

// ===================================
// CONSTANTS
// ===================================

const (
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	ContextKeyIdentity = "identity"
)

type SessionMiddlewareConfig struct {
	Resolver       IdentityResolver
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

func DefaultSessionMiddlewareConfig(resolver IdentityResolver) SessionMiddlewareConfig {
	return SessionMiddlewareConfig{
		Resolver:       resolver,
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// ===================================
// SESSION MIDDLEWARE
// ===================================

// Session makes sure every request carries an identity:
// 1. Read session_id cookie, issue a new uuid when missing or malformed
// 2. Ask the resolver whether the session is signed in
// 3. Store the identity in the gin context for handlers
func Session(config SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		identity := shared.Identity{SessionID: sessionID}
		if config.Resolver != nil {
			identity = config.Resolver.Current(c.Request.Context(), sessionID)
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// ===================================
// HELPER FUNCTIONS
// ===================================

func getSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		return ""
	}

	return sessionID
}

func setSessionCookie(c *gin.Context, sessionID string, config SessionMiddlewareConfig) {
	c.SetSameSite(config.CookieSameSite)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		SessionMaxAge,
		config.CookiePath,
		config.CookieDomain,
		config.CookieSecure,
		true, // httpOnly
	)
}

// GetIdentity returns the identity stored by Session.
// ok is false when the middleware did not run.
func GetIdentity(c *gin.Context) (shared.Identity, bool) {
	v, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return shared.Identity{}, false
	}
	identity, ok := v.(shared.Identity)
	return identity, ok
}
