// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides field-level validation for every form of the
// client and whole-model validation before submission.
//
// Core concepts:
//   - Validation: the result of validating one input field. A form keeps one
//     per field and replaces it whenever the field changes.
//   - Rules: small pure functions (Required, MinLength, Email, ...) that
//     produce a Validation.
//   - Form validators: per-form functions keyed by field constants, e.g.
//     AssignmentField(FieldTitle, assignment, now).
//   - Validator: validates a complete request model and returns
//     ErrInvalidField wrapped with the first failing field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
