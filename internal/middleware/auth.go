package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/service/session"
)

// Context keys set by Authenticate.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextSessionID = "sessionID"
)

type AuthMiddleware struct {
	resolver session.Resolver
}

// NewAuthMiddleware takes the session resolver as an explicit dependency;
// nothing here reaches for global auth state.
func NewAuthMiddleware(resolver session.Resolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate resolves the bearer session token and sets the caller's
// identity in the request context. Requests without a valid, unexpired
// session are rejected before any handler runs.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		su, err := m.resolver.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid session"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, su.User.ID)
		c.Set(ContextUserEmail, su.User.Email)
		c.Set(ContextSessionID, su.Session.ID)
		c.Next()
	}
}
