// Package session resolves login sessions issued by the external auth
// provider. This is the only auth capability the API consumes: given a
// token, return the session and its owning user, or an unauthorized error.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/dragenda/agenda-api/internal/model"
	"github.com/dragenda/agenda-api/internal/repository"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

// Resolver is the injected session-lookup capability. Handlers and
// middleware depend on this interface, never on the store directly.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*model.SessionUser, error)
}

type Service struct {
	repo  repository.SessionRepository
	cache *cache.Cache
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the expiry clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.SessionRepository, cacheTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		cache: cache.New(cacheTTL, 2*cacheTTL),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve looks up the session by token and joins the owning user. Unknown
// and expired tokens both surface as unauthorized: callers cannot tell the
// two apart.
func (s *Service) Resolve(ctx context.Context, token string) (*model.SessionUser, error) {
	if token == "" {
		return nil, apperrors.Unauthorized(nil)
	}

	if cached, ok := s.cache.Get(token); ok {
		su := cached.(*model.SessionUser)
		if s.expired(su) {
			s.cache.Delete(token)
			return nil, apperrors.Unauthorized(fmt.Errorf("session expired"))
		}
		return su, nil
	}

	su, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(fmt.Errorf("unknown session token"))
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if s.expired(su) {
		return nil, apperrors.Unauthorized(fmt.Errorf("session expired"))
	}

	s.cache.SetDefault(token, su)
	return su, nil
}

func (s *Service) expired(su *model.SessionUser) bool {
	return !su.Session.ExpiresAt.After(s.now())
}
