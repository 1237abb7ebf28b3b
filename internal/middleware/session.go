package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superengulfing/site-backend/internal/response"
	"github.com/superengulfing/site-backend/internal/service"
)

// CheckUserSession validates the JWT's JTI against the active session
// in Redis. A logout (or a newer login) replaces the stored JTI, which
// invalidates older tokens before their JWT expiry.
func CheckUserSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		// Only enforce for member tokens.
		if claims.TokenType != service.TokenTypeUser {
			c.Next()
			return
		}

		if err := authService.ValidateUserSession(c.Request.Context(), claims.UserID, claims.ID); err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
			return
		}

		c.Next()
	}
}
