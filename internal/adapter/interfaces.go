// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the pet-walking marketplace API.
//
// The API is split into narrow per-resource interfaces ([AuthAPI],
// [AssignmentAPI], [PetAPI], ...) so services depend only on what they use;
// [ServerAdapter] composes them. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx statuses are mapped by mapHTTPError to the sentinel errors of the
// models package, so callers can use [errors.Is] or [models.KindOf] for
// transport-agnostic error handling (e.g. [models.ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenHolder stores the bearer token attached to authenticated requests.
type TokenHolder interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string.
	Token() string
}

// AuthAPI covers account endpoints.
type AuthAPI interface {
	TokenHolder

	// Login authenticates with credentials. On success the bearer token from
	// the Authorization response header is stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Register creates an account. On success the bearer token is stored via
	// SetToken, as with Login.
	Register(ctx context.Context, registration models.Registration) (models.User, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.User, error)
}

// AssignmentAPI covers walking assignments.
type AssignmentAPI interface {
	ListAssignments(ctx context.Context, filter models.AssignmentFilter, page models.PageRequest) (models.Paged[models.Assignment], error)
	GetAssignment(ctx context.Context, id int64) (models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)

	// AssignmentPets pages through the pets an assignment covers.
	AssignmentPets(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Pet], error)

	// AssignmentRecruitments pages through recruitments of an assignment.
	AssignmentRecruitments(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Recruitment], error)

	// CanRecruit reports whether the current user may apply to or recruit
	// for the assignment.
	CanRecruit(ctx context.Context, assignmentID int64) (bool, error)

	// Recruit starts a recruitment for the assignment on behalf of the
	// current user.
	Recruit(ctx context.Context, assignmentID int64) (models.Recruitment, error)
}

// PetAPI covers pets and their medical records.
type PetAPI interface {
	ListPets(ctx context.Context, page models.PageRequest) (models.Paged[models.Pet], error)
	GetPet(ctx context.Context, id int64) (models.Pet, error)
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
	UpdatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
	MedicalRecords(ctx context.Context, petID int64, page models.PageRequest) (models.Paged[models.MedicalRecord], error)
	AddMedicalRecord(ctx context.Context, record models.MedicalRecord) (models.MedicalRecord, error)
}

// PostAPI covers community posts and their comments.
type PostAPI interface {
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	Comments(ctx context.Context, postID int64, page models.PageRequest) (models.Paged[models.Comment], error)
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// ChannelAPI covers chat channels between an owner and a walker.
type ChannelAPI interface {
	GetChannel(ctx context.Context, id int64) (models.Channel, error)
	Messages(ctx context.Context, channelID int64, page models.PageRequest) (models.Paged[models.Message], error)
	SendMessage(ctx context.Context, channelID int64, draft models.MessageDraft) (models.Message, error)
}

// RecruitmentAPI covers answers to recruitments.
type RecruitmentAPI interface {
	AcceptRecruitment(ctx context.Context, id int64) (models.Recruitment, error)
	DeclineRecruitment(ctx context.Context, id int64) (models.Recruitment, error)
}

// WalkerAPI covers user profiles, featured walkers and user reviews.
type WalkerAPI interface {
	FeaturedWalkers(ctx context.Context, page models.PageRequest) (models.Paged[models.Walker], error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UserReviews(ctx context.Context, userID int64, page models.PageRequest) (models.Paged[models.Review], error)
}

// ReviewAPI covers review submission.
type ReviewAPI interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
}

// FileAPI covers attachment transfer.
type FileAPI interface {
	// UploadFile sends data as a multipart file and returns its reference.
	UploadFile(ctx context.Context, name string, data []byte) (models.UploadedFile, error)

	// DownloadFile fetches the attachment identified by reference.
	DownloadFile(ctx context.Context, reference string) (models.File, error)
}

// ServerAdapter composes every API of the marketplace server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to models sentinels.
type ServerAdapter interface {
	AuthAPI
	AssignmentAPI
	PetAPI
	PostAPI
	ChannelAPI
	RecruitmentAPI
	WalkerAPI
	ReviewAPI
	FileAPI
}
