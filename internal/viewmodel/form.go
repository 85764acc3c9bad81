package viewmodel

import (
	"maps"

	"github.com/MKhiriev/go-pet-walker/internal/validators"
)

// FormState is the editable part of a configure screen: the value being
// built, the validation of every field and whether it may be submitted.
// Validations are recomputed after every edit.
type FormState[T any] struct {
	Value       T
	Validations map[string]validators.Validation
	Touched     map[string]bool
	CanSubmit   bool
}

func newFormState[T any](form validators.Form[T], v T) FormState[T] {
	f := FormState[T]{Value: v, Touched: map[string]bool{}}
	return f.validated(form)
}

func (f FormState[T]) validated(form validators.Form[T]) FormState[T] {
	f.Validations = form.All(f.Value)
	all := make([]validators.Validation, 0, len(f.Validations))
	for _, v := range f.Validations {
		all = append(all, v)
	}
	f.CanSubmit = validators.CanSubmit(all...)
	return f
}

// edit applies fn to the value, marks fields as touched and revalidates.
func (f FormState[T]) edit(form validators.Form[T], fn func(*T), fields ...string) FormState[T] {
	fn(&f.Value)
	f.Touched = maps.Clone(f.Touched)
	for _, field := range fields {
		f.Touched[field] = true
	}
	return f.validated(form)
}

// touchAll marks every field touched so all errors become visible.
func (f FormState[T]) touchAll(form validators.Form[T]) FormState[T] {
	f.Touched = make(map[string]bool, len(f.Validations))
	for _, field := range form.Fields() {
		f.Touched[field] = true
	}
	return f
}

// Error returns the rendered validation message of field, or "" when the
// field is valid or has not been touched yet.
func (f FormState[T]) Error(field string) string {
	if !f.Touched[field] {
		return ""
	}
	v, ok := f.Validations[field]
	if !ok || v.Valid {
		return ""
	}
	return v.Text()
}
