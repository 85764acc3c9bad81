// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants.
//
// All Msg* constants are the human-readable messages the marketplace API
// writes into error response bodies. The service layer matches them to turn
// transport errors into business errors, so the wording must stay in step
// with the server.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgEmailAlreadyExists is returned on registration with a taken email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAlreadyRecruited is returned when the user already has a pending or
	// accepted recruitment for the assignment.
	MsgAlreadyRecruited = "already recruited"

	// MsgAssignmentClosed is returned when an assignment no longer accepts
	// recruitments or edits.
	MsgAssignmentClosed = "assignment is closed"

	// MsgRecruitmentAnswered is returned when accepting or declining a
	// recruitment that was already answered.
	MsgRecruitmentAnswered = "recruitment already answered"

	// MsgAlreadyReviewed is returned when the user already reviewed the
	// assignment.
	MsgAlreadyReviewed = "already reviewed"
)
