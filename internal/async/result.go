// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package async provides Result, the tri-state wrapper every state
// container uses to describe the lifecycle of a remote fetch.
//
// A Result is always in exactly one of three states:
//   - Loading: the request is in flight, no payload;
//   - Failed: the attempt ended with a [models.ErrorKind];
//   - Succeeded: the attempt ended with a value (which may be a zero value).
//
// The zero Result is Loading, so a freshly declared state field starts out
// "not yet trustworthy" without explicit initialisation.
package async

import "github.com/MKhiriev/go-pet-walker/models"

// Status enumerates the three Result variants.
type Status int

const (
	StatusLoading Status = iota
	StatusFailed
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "failed"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "invalid"
	}
}

// Result is an immutable tagged union over Loading, Failed and Succeeded.
type Result[T any] struct {
	status Status
	value  T
	kind   models.ErrorKind
}

// Loading returns the in-flight variant.
func Loading[T any]() Result[T] {
	return Result[T]{status: StatusLoading}
}

// Failed returns the failure variant carrying kind.
func Failed[T any](kind models.ErrorKind) Result[T] {
	return Result[T]{status: StatusFailed, kind: kind}
}

// Succeeded returns the success variant carrying value.
func Succeeded[T any](value T) Result[T] {
	return Result[T]{status: StatusSucceeded, value: value}
}

// FromCall converts the (value, error) pair of a repository call into a
// terminal Result.
func FromCall[T any](value T, err error) Result[T] {
	if err != nil {
		return Failed[T](models.KindOf(err))
	}
	return Succeeded(value)
}

// Status reports the active variant.
func (r Result[T]) Status() Status { return r.status }

// IsLoading reports whether r is Loading.
func (r Result[T]) IsLoading() bool { return r.status == StatusLoading }

// IsFailed reports whether r is Failed.
func (r Result[T]) IsFailed() bool { return r.status == StatusFailed }

// IsSucceeded reports whether r is Succeeded.
func (r Result[T]) IsSucceeded() bool { return r.status == StatusSucceeded }

// Value returns the payload and true only for Succeeded.
func (r Result[T]) Value() (T, bool) {
	if r.status != StatusSucceeded {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Kind returns the error kind and true only for Failed.
func (r Result[T]) Kind() (models.ErrorKind, bool) {
	if r.status != StatusFailed {
		return models.Unknown, false
	}
	return r.kind, true
}

// Match calls exactly one of the callbacks, chosen by the active variant.
// Nil callbacks are skipped.
func (r Result[T]) Match(onLoading func(), onFailed func(models.ErrorKind), onSucceeded func(T)) {
	switch r.status {
	case StatusLoading:
		if onLoading != nil {
			onLoading()
		}
	case StatusFailed:
		if onFailed != nil {
			onFailed(r.kind)
		}
	case StatusSucceeded:
		if onSucceeded != nil {
			onSucceeded(r.value)
		}
	}
}

// Map transforms the Succeeded payload, keeping Loading and Failed as is.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.status {
	case StatusSucceeded:
		return Succeeded(fn(r.value))
	case StatusFailed:
		return Failed[U](r.kind)
	default:
		return Loading[U]()
	}
}

// Join combines two results. It is Failed if either input failed (first
// failure wins), Loading if either is still loading, Succeeded otherwise.
func Join[A, B, C any](a Result[A], b Result[B], fn func(A, B) C) Result[C] {
	if kind, ok := a.Kind(); ok {
		return Failed[C](kind)
	}
	if kind, ok := b.Kind(); ok {
		return Failed[C](kind)
	}
	if a.IsLoading() || b.IsLoading() {
		return Loading[C]()
	}
	return Succeeded(fn(a.value, b.value))
}
