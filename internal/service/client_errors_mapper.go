// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pet-walker/internal/app"
	"github.com/MKhiriev/go-pet-walker/models"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The result still wraps the original error, so
// models.KindOf keeps classifying it.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var business error
	switch {
	case errors.Is(err, models.ErrBadRequest):
		if hasBody(err, app.MsgInvalidDataProvided) {
			business = ErrInvalidDataProvided
		}

	case errors.Is(err, models.ErrUnauthorized):
		switch {
		case hasBody(err, app.MsgInvalidEmailPassword):
			business = ErrWrongPassword
		case hasBody(err, app.MsgTokenIsExpired), hasBody(err, app.MsgTokenIsExpiredOrInvalid):
			business = ErrSessionExpired
		}

	case errors.Is(err, models.ErrConflict):
		switch {
		case hasBody(err, app.MsgEmailAlreadyExists):
			business = ErrEmailAlreadyExists
		case hasBody(err, app.MsgAlreadyRecruited):
			business = ErrAlreadyRecruited
		case hasBody(err, app.MsgAssignmentClosed):
			business = ErrAssignmentClosed
		case hasBody(err, app.MsgRecruitmentAnswered):
			business = ErrRecruitmentAnswered
		case hasBody(err, app.MsgAlreadyReviewed):
			business = ErrAlreadyReviewed
		}
	}

	if business == nil {
		return err
	}
	return fmt.Errorf("%w: %w", business, err)
}

// hasBody reports whether the response body carried in err equals msg.
// Adapter errors end with the body, after any wrapping prefixes.
func hasBody(err error, msg string) bool {
	return strings.HasSuffix(err.Error(), ": "+msg)
}
