package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferenceRepository returns a SQLite-backed PreferenceRepository.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{DB: db, logger: logger, now: time.Now}
}

func (r *preferenceRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := putPreferenceQuery(key, value, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "preferenceRepository.Put").
			Str("key", key).
			Msg("failed to store preference")
		return fmt.Errorf("%w: put preference %q: %w", ErrExecutingQuery, key, err)
	}

	return nil
}

func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := getPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrPreferenceNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *preferenceRepository) Delete(ctx context.Context, key string) error {
	query, args, err := deletePreferenceQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete preference %q: %w", ErrExecutingQuery, key, err)
	}

	return nil
}
