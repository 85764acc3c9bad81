package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_Put(t *testing.T) {
	db, mock := newTestDB(t)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &preferenceRepository{DB: db, logger: logger.Nop(), now: func() time.Time { return at }}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO preferences (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key)")).
		WithArgs("theme", "dark", at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Put(context.Background(), "theme", "dark"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPreferenceRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM preferences WHERE key = ?")).
		WithArgs("theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("dark"))
	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	v, err := repo.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPreferenceRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM preferences WHERE key = ?")).
		WithArgs("theme").
		WillReturnError(errors.New("locked"))

	err := repo.Delete(context.Background(), "theme")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
