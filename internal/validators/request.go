package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pet-walker/models"
)

// RequestValidator implements the Validator interface for every request
// model the client submits: Assignment, Pet, MedicalRecord, Post, Comment,
// MessageDraft, Review, Credentials and Registration.
//
// It supports both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
	now Clock
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface. A nil clock defaults to time.Now.
func NewRequestValidator(now Clock) Validator {
	if now == nil {
		now = time.Now
	}
	return &RequestValidator{now: now}
}

// Validate dispatches validation to the form of obj's dynamic type.
//
// Returns ErrUnsupportedType if obj does not match any known model,
// ErrUnknownField for a field the form does not know, and ErrInvalidField
// wrapped with the field name for the first failing field.
func (v *RequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Assignment:
		return AssignmentForm(v.now).Validate(value, fields...)
	case *models.Assignment:
		return AssignmentForm(v.now).Validate(*value, fields...)

	case models.Pet:
		return PetForm(v.now).Validate(value, fields...)
	case *models.Pet:
		return PetForm(v.now).Validate(*value, fields...)

	case models.MedicalRecord:
		return MedicalRecordForm(v.now).Validate(value, fields...)
	case *models.MedicalRecord:
		return MedicalRecordForm(v.now).Validate(*value, fields...)

	case models.Post:
		return PostForm().Validate(value, fields...)
	case *models.Post:
		return PostForm().Validate(*value, fields...)

	case models.Comment:
		return CommentForm().Validate(value, fields...)
	case *models.Comment:
		return CommentForm().Validate(*value, fields...)

	case models.MessageDraft:
		return MessageForm().Validate(value, fields...)
	case *models.MessageDraft:
		return MessageForm().Validate(*value, fields...)

	case models.Review:
		return ReviewForm().Validate(value, fields...)
	case *models.Review:
		return ReviewForm().Validate(*value, fields...)

	case models.Credentials:
		return LoginForm().Validate(value, fields...)
	case *models.Credentials:
		return LoginForm().Validate(*value, fields...)

	case models.Registration:
		return RegisterForm().Validate(value, fields...)
	case *models.Registration:
		return RegisterForm().Validate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}
