package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pet-walker/internal/app"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, body string) error {
		return fmt.Errorf("op request: %w", fmt.Errorf("%w: %s", sentinel, body))
	}

	tests := []struct {
		name     string
		err      error
		business error
		kind     models.ErrorKind
	}{
		{"wrong password", wrap(models.ErrUnauthorized, app.MsgInvalidEmailPassword), ErrWrongPassword, models.Unauthorized},
		{"expired", wrap(models.ErrUnauthorized, app.MsgTokenIsExpired), ErrSessionExpired, models.Unauthorized},
		{"email taken", wrap(models.ErrConflict, app.MsgEmailAlreadyExists), ErrEmailAlreadyExists, models.Conflict},
		{"already recruited", wrap(models.ErrConflict, app.MsgAlreadyRecruited), ErrAlreadyRecruited, models.Conflict},
		{"closed", wrap(models.ErrConflict, app.MsgAssignmentClosed), ErrAssignmentClosed, models.Conflict},
		{"answered", wrap(models.ErrConflict, app.MsgRecruitmentAnswered), ErrRecruitmentAnswered, models.Conflict},
		{"reviewed", wrap(models.ErrConflict, app.MsgAlreadyReviewed), ErrAlreadyReviewed, models.Conflict},
		{"invalid data", wrap(models.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidDataProvided, models.BadRequest},
		{"unknown conflict", wrap(models.ErrConflict, "something else"), nil, models.Conflict},
		{"not found", wrap(models.ErrNotFound, "nope"), nil, models.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			assert.ErrorIs(t, got, tt.err)
			if tt.business != nil {
				assert.ErrorIs(t, got, tt.business)
			}
			assert.Equal(t, tt.kind, models.KindOf(got))
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	plain := errors.New("plain")
	assert.Equal(t, plain, mapAdapterError(plain))
}
