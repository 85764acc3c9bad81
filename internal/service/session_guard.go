package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/internal/utils"
	"github.com/MKhiriev/go-pet-walker/models"
)

// SessionGuard is the auth token accessor of the client. It restores the
// token from the local store on first use and refuses calls with a blank
// or expired token.
type SessionGuard struct {
	tokens   adapter.TokenHolder
	sessions store.SessionRepository
	now      func() time.Time
	logger   *logger.Logger
}

// NewSessionGuard creates a SessionGuard.
func NewSessionGuard(tokens adapter.TokenHolder, sessions store.SessionRepository, log *logger.Logger) *SessionGuard {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionGuard{tokens: tokens, sessions: sessions, now: time.Now, logger: log}
}

// Token returns a usable bearer token. It returns models.ErrUnauthorized
// wrapped with ErrNoSession or ErrSessionExpired when there is none.
func (g *SessionGuard) Token(ctx context.Context) (string, error) {
	token := g.tokens.Token()

	if token == "" {
		s, err := g.sessions.Get(ctx)
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return "", fmt.Errorf("%w: %w", models.ErrUnauthorized, ErrNoSession)
		}
		if err != nil {
			return "", fmt.Errorf("read local session: %w", err)
		}
		token = strings.TrimSpace(s.Token)
		if token == "" {
			return "", fmt.Errorf("%w: %w", models.ErrUnauthorized, ErrNoSession)
		}
		g.tokens.SetToken(token)
	}

	if utils.IsTokenExpired(token, g.now()) {
		g.logger.Debug().Str("func", "SessionGuard.Token").Msg("stored token is expired")
		g.tokens.SetToken("")
		return "", fmt.Errorf("%w: %w", models.ErrUnauthorized, ErrSessionExpired)
	}

	return token, nil
}

// Forget drops the in-memory and stored session.
func (g *SessionGuard) Forget(ctx context.Context) error {
	g.tokens.SetToken("")
	if err := g.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}
	return nil
}

// guarded runs call after the guard admits it. Adapter errors are mapped to
// business errors and prefixed with op. A server-side 401 forgets the
// session so the next call fails fast.
func guarded[T any](ctx context.Context, g *SessionGuard, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T

	if _, err := g.Token(ctx); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	out, err := call(ctx)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			if ferr := g.Forget(ctx); ferr != nil {
				g.logger.Err(ferr).Str("func", "guarded").Str("op", op).Msg("failed to forget rejected session")
			}
		}
		return zero, fmt.Errorf("%s: %w", op, mapAdapterError(err))
	}

	return out, nil
}
