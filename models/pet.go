package models

import "time"

// Species of a pet.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Pet is a pet profile owned by a user.
type Pet struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"ownerId"`
	Name      string     `json:"name"`
	Species   Species    `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	WeightKg  float64    `json:"weightKg"`
	Notes     string     `json:"notes,omitempty"`
}

// MedicalRecord is a single entry of a pet's medical history. The document
// itself, if any, is stored server-side under AttachmentRef.
type MedicalRecord struct {
	ID             int64     `json:"id"`
	PetID          int64     `json:"petId"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	AttachmentRef  string    `json:"attachmentRef,omitempty"`
	AttachmentName string    `json:"attachmentName,omitempty"`
	RecordedAt     time.Time `json:"recordedAt"`
}
