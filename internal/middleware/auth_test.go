package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dragenda/agenda-api/internal/model"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type stubResolver struct {
	sessions map[string]*model.SessionUser
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (*model.SessionUser, error) {
	su, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.Unauthorized(nil)
	}
	return su, nil
}

func setupAuthRouter(resolver *stubResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewAuthMiddleware(resolver).Authenticate())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return r
}

func TestAuthenticateValidToken(t *testing.T) {
	r := setupAuthRouter(&stubResolver{sessions: map[string]*model.SessionUser{
		"tok-1": {
			Session: model.Session{ID: "sess-1", UserID: "user-1"},
			User:    model.User{ID: "user-1", Email: "ada@example.com"},
		},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := setupAuthRouter(&stubResolver{sessions: map[string]*model.SessionUser{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r := setupAuthRouter(&stubResolver{sessions: map[string]*model.SessionUser{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	r := setupAuthRouter(&stubResolver{sessions: map[string]*model.SessionUser{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
