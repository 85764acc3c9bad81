package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pet-walker/internal/utils"
	"github.com/MKhiriev/go-pet-walker/models"
)

// Login implements [AuthAPI]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	user, resp, err := call[models.User](ctx, h, http.MethodPost, "/api/auth/login", credentials, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", errors.Join(ErrMissingToken, err))
	}

	h.SetToken(token)
	return user, nil
}

// Register implements [AuthAPI]. It POSTs the registration to
// POST /api/auth/register and stores the returned bearer token.
func (h *httpServerAdapter) Register(ctx context.Context, registration models.Registration) (models.User, error) {
	user, resp, err := call[models.User](ctx, h, http.MethodPost, "/api/auth/register", registration, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", errors.Join(ErrMissingToken, err))
	}

	h.SetToken(token)
	return user, nil
}

// Me implements [AuthAPI] via GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	user, err := get[models.User](ctx, h, "/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	return user, nil
}
