package service

import "errors"

var (
	ErrNoSession           = errors.New("no active session")
	ErrSessionExpired      = errors.New("session expired")
	ErrWrongPassword       = errors.New("wrong email or password")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrAlreadyRecruited    = errors.New("already recruited")
	ErrAssignmentClosed    = errors.New("assignment is closed")
	ErrRecruitmentAnswered = errors.New("recruitment already answered")
	ErrAlreadyReviewed     = errors.New("already reviewed")
)
