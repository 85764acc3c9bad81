package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientAuthService struct {
	api       adapter.AuthAPI
	sessions  store.SessionRepository
	guard     *SessionGuard
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewClientAuthService creates an AuthService.
func NewClientAuthService(api adapter.AuthAPI, sessions store.SessionRepository, guard *SessionGuard, validator validators.Validator, log *logger.Logger) AuthService {
	return &clientAuthService{
		api:       api,
		sessions:  sessions,
		guard:     guard,
		validator: validator,
		now:       time.Now,
		logger:    log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, fmt.Errorf("login: %w: %w", models.ErrBadRequest, err)
	}

	user, err := a.api.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}

	return a.persist(ctx, user)
}

func (a *clientAuthService) Register(ctx context.Context, registration models.Registration) (models.Session, error) {
	if err := a.validator.Validate(ctx, registration); err != nil {
		return models.Session{}, fmt.Errorf("register: %w: %w", models.ErrBadRequest, err)
	}

	user, err := a.api.Register(ctx, registration)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}

	return a.persist(ctx, user)
}

// persist stores the session of the freshly authenticated user. The token
// is the one the adapter picked from the response.
func (a *clientAuthService) persist(ctx context.Context, user models.User) (models.Session, error) {
	session := models.Session{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     a.api.Token(),
		UpdatedAt: a.now().UTC(),
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.persist").
			Int64("user_id", user.ID).
			Msg("failed to save session")
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.guard.Forget(ctx)
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (models.Session, error) {
	if _, err := a.guard.Token(ctx); err != nil {
		return models.Session{}, err
	}

	session, err := a.sessions.Get(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("current session: %w", err)
	}
	return session, nil
}
