// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-walker/models"
)

// sessionRowID is the primary key of the only row of the sessions table.
const sessionRowID = 1

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	sessionColumns = []string{"user_id", "name", "email", "token", "updated_at"}
)

func saveSessionQuery(s models.Session) (string, []any, error) {
	return psql.Insert("sessions").
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, s.UserID, s.Name, s.Email, s.Token, s.UpdatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			email = excluded.email,
			token = excluded.token,
			updated_at = excluded.updated_at`).
		ToSql()
}

func getSessionQuery() (string, []any, error) {
	return psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func clearSessionQuery() (string, []any, error) {
	return psql.Delete("sessions").ToSql()
}

func putPreferenceQuery(key, value string, at time.Time) (string, []any, error) {
	return psql.Insert("preferences").
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func getPreferenceQuery(key string) (string, []any, error) {
	return psql.Select("value").
		From("preferences").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func deletePreferenceQuery(key string) (string, []any, error) {
	return psql.Delete("preferences").
		Where(sq.Eq{"key": key}).
		ToSql()
}
