package validators

import "fmt"

// Message keys rendered by Validation.Text. The UI may localise them.
const (
	MsgRequired     = "validation.required"
	MsgMinLength    = "validation.min_length"
	MsgMaxLength    = "validation.max_length"
	MsgEmail        = "validation.email"
	MsgRange        = "validation.range"
	MsgPositive     = "validation.positive"
	MsgNotBefore    = "validation.not_before"
	MsgNotAfter     = "validation.not_after"
	MsgAfter        = "validation.after"
	MsgOneOf        = "validation.one_of"
	MsgNoneSelected = "validation.none_selected"
)

var templates = map[string]string{
	MsgRequired:     "this field is required",
	MsgMinLength:    "must be at least %d characters",
	MsgMaxLength:    "must be at most %d characters",
	MsgEmail:        "must be a valid email address",
	MsgRange:        "must be between %v and %v",
	MsgPositive:     "must be greater than zero",
	MsgNotBefore:    "must not be before %s",
	MsgNotAfter:     "must not be after %s",
	MsgAfter:        "must be after %s",
	MsgOneOf:        "must be one of %v",
	MsgNoneSelected: "select at least one",
}

// Validation is the result of validating a single input field.
type Validation struct {
	// Valid reports whether the field passed its rules.
	Valid bool

	// Message is a template key such as MsgRequired, empty when Valid.
	Message string

	// Args fill the placeholders of the Message template.
	Args []any
}

// OK returns a passing Validation.
func OK() Validation {
	return Validation{Valid: true}
}

// Invalid returns a failing Validation with the given message key.
func Invalid(message string, args ...any) Validation {
	return Validation{Message: message, Args: args}
}

// Text renders the message with its arguments. Unknown keys are returned
// verbatim.
func (v Validation) Text() string {
	if v.Valid {
		return ""
	}
	tmpl, ok := templates[v.Message]
	if !ok {
		return v.Message
	}
	if len(v.Args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, v.Args...)
}

// CanSubmit reports whether every validation passed.
func CanSubmit(validations ...Validation) bool {
	for _, v := range validations {
		if !v.Valid {
			return false
		}
	}
	return true
}

// First returns the first failing validation, or OK when all pass.
func First(validations ...Validation) Validation {
	for _, v := range validations {
		if !v.Valid {
			return v
		}
	}
	return OK()
}
