// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs terminal UI sessions until the user quits, starting a fresh
// session after every log out.
package client
