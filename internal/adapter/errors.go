// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid adapter http address")
	ErrMissingToken   = errors.New("response carries no bearer token")
)
