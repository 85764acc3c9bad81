// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pet-walker/models"
)

// ErrUserQuit is returned by Run when the user closes the program.
var ErrUserQuit = errors.New("user quit")

// kindMessage turns an error kind into a line for the user.
func kindMessage(kind models.ErrorKind) string {
	switch kind {
	case models.Unauthorized:
		return "Your session has expired, please sign in again"
	case models.Forbidden:
		return "You are not allowed to do that"
	case models.NotFound:
		return "Not found"
	case models.Conflict:
		return "Already done"
	case models.BadRequest:
		return "Some fields are invalid"
	case models.ServerError:
		return "The server failed, try again later"
	case models.Network:
		return "No network or the server is unreachable"
	default:
		return "Something went wrong"
	}
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	return kindMessage(models.KindOf(err))
}
