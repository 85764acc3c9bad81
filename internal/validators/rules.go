package validators

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Required fails on blank (whitespace-only) strings.
func Required(s string) Validation {
	if strings.TrimSpace(s) == "" {
		return Invalid(MsgRequired)
	}
	return OK()
}

// MinLength fails when the trimmed string has fewer than n runes.
func MinLength(s string, n int) Validation {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < n {
		return Invalid(MsgMinLength, n)
	}
	return OK()
}

// MaxLength fails when the string has more than n runes.
func MaxLength(s string, n int) Validation {
	if utf8.RuneCountInString(s) > n {
		return Invalid(MsgMaxLength, n)
	}
	return OK()
}

// Email fails when s is not a bare address such as "a@b.c".
func Email(s string) Validation {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndex(s, "@"):], ".") {
		return Invalid(MsgEmail)
	}
	return OK()
}

// IntRange fails when v is outside [lo, hi].
func IntRange(v, lo, hi int) Validation {
	if v < lo || v > hi {
		return Invalid(MsgRange, lo, hi)
	}
	return OK()
}

// FloatRange fails when v is outside [lo, hi].
func FloatRange(v, lo, hi float64) Validation {
	if v < lo || v > hi {
		return Invalid(MsgRange, lo, hi)
	}
	return OK()
}

// Positive fails when v <= 0.
func Positive[N int | int64 | float64](v N) Validation {
	if v <= 0 {
		return Invalid(MsgPositive)
	}
	return OK()
}

// NotBefore fails when t is before limit.
func NotBefore(t, limit time.Time) Validation {
	if t.Before(limit) {
		return Invalid(MsgNotBefore, limit.Format(time.DateTime))
	}
	return OK()
}

// After fails unless t is strictly after limit.
func After(t, limit time.Time) Validation {
	if !t.After(limit) {
		return Invalid(MsgAfter, limit.Format(time.DateTime))
	}
	return OK()
}

// NotAfter fails when t is after limit.
func NotAfter(t, limit time.Time) Validation {
	if t.After(limit) {
		return Invalid(MsgNotAfter, limit.Format(time.DateTime))
	}
	return OK()
}

// NonEmpty fails on an empty selection.
func NonEmpty[T any](items []T) Validation {
	if len(items) == 0 {
		return Invalid(MsgNoneSelected)
	}
	return OK()
}

// OneOf fails when v is not among allowed.
func OneOf[T comparable](v T, allowed ...T) Validation {
	for _, a := range allowed {
		if v == a {
			return OK()
		}
	}
	return Invalid(MsgOneOf, allowed)
}
