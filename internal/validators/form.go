package validators

import "fmt"

// Rule validates one named field of T.
type Rule[T any] struct {
	Field string
	Check func(T) Validation
}

// Form is an ordered set of field rules for one input model.
type Form[T any] struct {
	rules []Rule[T]
}

// NewForm builds a Form from rules in the order they should be reported.
func NewForm[T any](rules ...Rule[T]) Form[T] {
	return Form[T]{rules: rules}
}

// Fields returns the field names known to the form, in order.
func (f Form[T]) Fields() []string {
	out := make([]string, len(f.rules))
	for i, r := range f.rules {
		out[i] = r.Field
	}
	return out
}

// Field validates a single field of v.
// Returns ErrUnknownField if the form has no rule for field.
func (f Form[T]) Field(field string, v T) (Validation, error) {
	for _, r := range f.rules {
		if r.Field == field {
			return r.Check(v), nil
		}
	}
	return Validation{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
}

// All validates every field of v.
func (f Form[T]) All(v T) map[string]Validation {
	out := make(map[string]Validation, len(f.rules))
	for _, r := range f.rules {
		out[r.Field] = r.Check(v)
	}
	return out
}

// Validate checks the named fields of v (all fields when none are given)
// and returns ErrInvalidField wrapped with the first failure.
func (f Form[T]) Validate(v T, fields ...string) error {
	if len(fields) == 0 {
		fields = f.Fields()
	}
	for _, field := range fields {
		res, err := f.Field(field, v)
		if err != nil {
			return err
		}
		if !res.Valid {
			return fmt.Errorf("%w: %s: %s", ErrInvalidField, field, res.Text())
		}
	}
	return nil
}
