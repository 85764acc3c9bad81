// Package store implements the local persistence of the client: the
// authenticated session and small user preferences, kept in SQLite.
package store

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single authenticated session of the device.
type SessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session models.Session) error

	// Get returns the stored session or ErrLocalSessionNotFound.
	Get(ctx context.Context) (models.Session, error)

	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}

// PreferenceRepository is a small key/value store for UI preferences such
// as the last used page size or the last map position.
type PreferenceRepository interface {
	Put(ctx context.Context, key, value string) error

	// Get returns the value of key or ErrPreferenceNotFound.
	Get(ctx context.Context, key string) (string, error)

	Delete(ctx context.Context, key string) error
}
