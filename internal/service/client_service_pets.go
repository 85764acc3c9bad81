package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientPetService struct {
	api       adapter.PetAPI
	guard     *SessionGuard
	validator validators.Validator
}

// NewClientPetService creates a PetService.
func NewClientPetService(api adapter.PetAPI, guard *SessionGuard, validator validators.Validator) PetService {
	return &clientPetService{api: api, guard: guard, validator: validator}
}

func (s *clientPetService) List(ctx context.Context, page models.PageRequest) (models.Paged[models.Pet], error) {
	return guarded(ctx, s.guard, "list pets", func(ctx context.Context) (models.Paged[models.Pet], error) {
		return s.api.ListPets(ctx, page)
	})
}

func (s *clientPetService) Get(ctx context.Context, id int64) (models.Pet, error) {
	return guarded(ctx, s.guard, "get pet", func(ctx context.Context) (models.Pet, error) {
		return s.api.GetPet(ctx, id)
	})
}

func (s *clientPetService) Create(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if err := s.validator.Validate(ctx, pet); err != nil {
		return models.Pet{}, fmt.Errorf("create pet: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "create pet", func(ctx context.Context) (models.Pet, error) {
		return s.api.CreatePet(ctx, pet)
	})
}

func (s *clientPetService) Update(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if err := s.validator.Validate(ctx, pet); err != nil {
		return models.Pet{}, fmt.Errorf("update pet: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "update pet", func(ctx context.Context) (models.Pet, error) {
		return s.api.UpdatePet(ctx, pet)
	})
}

func (s *clientPetService) MedicalRecords(ctx context.Context, petID int64, page models.PageRequest) (models.Paged[models.MedicalRecord], error) {
	return guarded(ctx, s.guard, "medical records", func(ctx context.Context) (models.Paged[models.MedicalRecord], error) {
		return s.api.MedicalRecords(ctx, petID, page)
	})
}

func (s *clientPetService) AddMedicalRecord(ctx context.Context, record models.MedicalRecord) (models.MedicalRecord, error) {
	if err := s.validator.Validate(ctx, record); err != nil {
		return models.MedicalRecord{}, fmt.Errorf("add medical record: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "add medical record", func(ctx context.Context) (models.MedicalRecord, error) {
		return s.api.AddMedicalRecord(ctx, record)
	})
}
