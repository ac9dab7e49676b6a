package middleware

import (
	"net/http"

	"bakery-storefront/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				response.ErrorWithCode(c, http.StatusInternalServerError, "SYS_001", "Internal server error", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
