package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/migrations"
)

// DB wraps the local database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date and logs the versions it applied.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().
			Str("func", "DB.Migrate").
			Ints64("versions", applied).
			Msg("applied schema migrations")
	}
	return nil
}
