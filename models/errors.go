// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"errors"
	"net"
)

// ErrorKind is the closed set of application outcomes a failed remote call
// can resolve to. It is carried by async.Result as the failure payload.
type ErrorKind int

const (
	// Unknown is any failure that does not map to a more specific kind.
	Unknown ErrorKind = iota
	// Unauthorized means the session is missing, expired or rejected.
	Unauthorized
	// Forbidden means the user is authenticated but not allowed.
	Forbidden
	// NotFound means the requested resource does not exist.
	NotFound
	// Conflict means the request clashes with the current server state.
	Conflict
	// BadRequest means the server rejected the payload.
	BadRequest
	// ServerError means the server failed (5xx).
	ServerError
	// Network means the server could not be reached.
	Network
)

var kindNames = map[ErrorKind]string{
	Unknown:      "UNKNOWN",
	Unauthorized: "UNAUTHORIZED",
	Forbidden:    "FORBIDDEN",
	NotFound:     "NOT_FOUND",
	Conflict:     "CONFLICT",
	BadRequest:   "BAD_REQUEST",
	ServerError:  "SERVER_ERROR",
	Network:      "NETWORK",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// Sentinel errors, one per ErrorKind. Transport code wraps them with the
// server-provided body, e.g. fmt.Errorf("%w: %s", ErrNotFound, body).
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrServerError  = errors.New("server error")
	ErrNetwork      = errors.New("server is unreachable")
)

var kindSentinels = []struct {
	kind ErrorKind
	err  error
}{
	{Unauthorized, ErrUnauthorized},
	{Forbidden, ErrForbidden},
	{NotFound, ErrNotFound},
	{Conflict, ErrConflict},
	{BadRequest, ErrBadRequest},
	{ServerError, ErrServerError},
	{Network, ErrNetwork},
}

// KindOf classifies err. A nil error has no kind and yields Unknown, so
// callers must check err first.
func KindOf(err error) ErrorKind {
	if err == nil {
		return Unknown
	}

	for _, s := range kindSentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Network
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Network
	}

	return Unknown
}

// ErrorOf returns the sentinel error for kind. Unknown has no sentinel and
// yields a generic error.
func ErrorOf(kind ErrorKind) error {
	for _, s := range kindSentinels {
		if s.kind == kind {
			return s.err
		}
	}
	return errUnknown
}

var errUnknown = errors.New("unknown error")
