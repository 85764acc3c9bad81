package service

import (
	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
)

// ClientServices groups every client service sharing one session guard.
type ClientServices struct {
	Guard              *SessionGuard
	AuthService        AuthService
	AssignmentService  AssignmentService
	PetService         PetService
	PostService        PostService
	ChannelService     ChannelService
	RecruitmentService RecruitmentService
	WalkerService      WalkerService
	ReviewService      ReviewService
	FileService        FileService
}

// NewClientServices wires the services to serverAdapter and the local
// storages.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	validator := validators.NewRequestValidator(nil)
	guard := NewSessionGuard(serverAdapter, storages.Sessions, log)

	return &ClientServices{
		Guard:              guard,
		AuthService:        NewClientAuthService(serverAdapter, storages.Sessions, guard, validator, log),
		AssignmentService:  NewClientAssignmentService(serverAdapter, guard, validator),
		PetService:         NewClientPetService(serverAdapter, guard, validator),
		PostService:        NewClientPostService(serverAdapter, guard, validator),
		ChannelService:     NewClientChannelService(serverAdapter, guard, validator),
		RecruitmentService: NewClientRecruitmentService(serverAdapter, guard),
		WalkerService:      NewClientWalkerService(serverAdapter, guard),
		ReviewService:      NewClientReviewService(serverAdapter, guard, validator),
		FileService:        NewClientFileService(serverAdapter, guard),
	}
}
