// Package service holds the client-side business layer between the view
// models and the transport/storage adapters.
//
// Every call that needs authentication passes through a [SessionGuard]
// first: a blank or expired token yields models.ErrUnauthorized without
// touching the network. Input models are validated before submission;
// validation failures wrap models.ErrBadRequest.
package service

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AuthService manages the device session.
type AuthService interface {
	// Login authenticates with credentials and persists the new session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Register creates an account and persists the new session.
	Register(ctx context.Context, registration models.Registration) (models.Session, error)

	// Logout forgets the session locally. It never calls the server.
	Logout(ctx context.Context) error

	// CurrentSession returns the stored session if it is still valid.
	// Returns models.ErrUnauthorized (wrapped) otherwise.
	CurrentSession(ctx context.Context) (models.Session, error)
}

// AssignmentService covers walking assignments.
type AssignmentService interface {
	List(ctx context.Context, filter models.AssignmentFilter, page models.PageRequest) (models.Paged[models.Assignment], error)
	Get(ctx context.Context, id int64) (models.Assignment, error)
	Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	Pets(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Pet], error)
	Recruitments(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Recruitment], error)
	CanRecruit(ctx context.Context, assignmentID int64) (bool, error)
	Recruit(ctx context.Context, assignmentID int64) (models.Recruitment, error)
}

// PetService covers pets and medical records.
type PetService interface {
	List(ctx context.Context, page models.PageRequest) (models.Paged[models.Pet], error)
	Get(ctx context.Context, id int64) (models.Pet, error)
	Create(ctx context.Context, pet models.Pet) (models.Pet, error)
	Update(ctx context.Context, pet models.Pet) (models.Pet, error)
	MedicalRecords(ctx context.Context, petID int64, page models.PageRequest) (models.Paged[models.MedicalRecord], error)
	AddMedicalRecord(ctx context.Context, record models.MedicalRecord) (models.MedicalRecord, error)
}

// PostService covers community posts and comments.
type PostService interface {
	Get(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, post models.Post) (models.Post, error)
	Comments(ctx context.Context, postID int64, page models.PageRequest) (models.Paged[models.Comment], error)
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// ChannelService covers chat channels.
type ChannelService interface {
	Get(ctx context.Context, id int64) (models.Channel, error)
	Messages(ctx context.Context, channelID int64, page models.PageRequest) (models.Paged[models.Message], error)
	Send(ctx context.Context, channelID int64, draft models.MessageDraft) (models.Message, error)
}

// RecruitmentService answers recruitments.
type RecruitmentService interface {
	Accept(ctx context.Context, id int64) (models.Recruitment, error)
	Decline(ctx context.Context, id int64) (models.Recruitment, error)
}

// WalkerService covers profiles, featured walkers and user reviews.
type WalkerService interface {
	Featured(ctx context.Context, page models.PageRequest) (models.Paged[models.Walker], error)
	User(ctx context.Context, id int64) (models.User, error)
	Reviews(ctx context.Context, userID int64, page models.PageRequest) (models.Paged[models.Review], error)
}

// ReviewService submits reviews.
type ReviewService interface {
	Create(ctx context.Context, review models.Review) (models.Review, error)
}

// FileService transfers attachments.
type FileService interface {
	Upload(ctx context.Context, name string, data []byte) (models.UploadedFile, error)
	Download(ctx context.Context, reference string) (models.File, error)
}
