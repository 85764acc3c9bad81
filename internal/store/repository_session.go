// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns a SQLite-backed SessionRepository.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger, now: time.Now}
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = r.now().UTC()
	}

	query, args, err := saveSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	query, args, err := getSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Name, &s.Email, &s.Token, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Get").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := clearSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to clear session")
		return fmt.Errorf("%w: clear session: %w", ErrExecutingQuery, err)
	}

	return nil
}
