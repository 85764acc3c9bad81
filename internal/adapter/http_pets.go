package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/models"
)

// ListPets implements [PetAPI] via GET /api/pets.
func (h *httpServerAdapter) ListPets(ctx context.Context, page models.PageRequest) (models.Paged[models.Pet], error) {
	out, err := getPaged[models.Pet](ctx, h, "/api/pets", page, nil)
	if err != nil {
		return out, fmt.Errorf("list pets: %w", err)
	}
	return out, nil
}

// GetPet implements [PetAPI] via GET /api/pets/{id}.
func (h *httpServerAdapter) GetPet(ctx context.Context, id int64) (models.Pet, error) {
	out, err := get[models.Pet](ctx, h, idPath("/api/pets/%d", id))
	if err != nil {
		return out, fmt.Errorf("get pet %d: %w", id, err)
	}
	return out, nil
}

// CreatePet implements [PetAPI] via POST /api/pets.
func (h *httpServerAdapter) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	out, err := post[models.Pet](ctx, h, "/api/pets", pet)
	if err != nil {
		return out, fmt.Errorf("create pet: %w", err)
	}
	return out, nil
}

// UpdatePet implements [PetAPI] via PUT /api/pets/{id}.
func (h *httpServerAdapter) UpdatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	out, err := put[models.Pet](ctx, h, idPath("/api/pets/%d", pet.ID), pet)
	if err != nil {
		return out, fmt.Errorf("update pet %d: %w", pet.ID, err)
	}
	return out, nil
}

// MedicalRecords implements [PetAPI] via GET /api/pets/{id}/medical-records.
func (h *httpServerAdapter) MedicalRecords(ctx context.Context, petID int64, page models.PageRequest) (models.Paged[models.MedicalRecord], error) {
	out, err := getPaged[models.MedicalRecord](ctx, h, idPath("/api/pets/%d/medical-records", petID), page, nil)
	if err != nil {
		return out, fmt.Errorf("pet %d medical records: %w", petID, err)
	}
	return out, nil
}

// AddMedicalRecord implements [PetAPI] via POST /api/pets/{id}/medical-records.
func (h *httpServerAdapter) AddMedicalRecord(ctx context.Context, record models.MedicalRecord) (models.MedicalRecord, error) {
	out, err := post[models.MedicalRecord](ctx, h, idPath("/api/pets/%d/medical-records", record.PetID), record)
	if err != nil {
		return out, fmt.Errorf("add medical record to pet %d: %w", record.PetID, err)
	}
	return out, nil
}
