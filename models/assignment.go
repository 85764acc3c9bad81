package models

import "time"

// AssignmentStatus is the lifecycle state of an assignment.
type AssignmentStatus string

const (
	AssignmentOpen      AssignmentStatus = "open"
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// Assignment is a posted walk request.
type Assignment struct {
	ID             int64            `json:"id"`
	OwnerID        int64            `json:"ownerId"`
	WalkerID       int64            `json:"walkerId,omitempty"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	PetIDs         []int64          `json:"petIds"`
	StartsAt       time.Time        `json:"startsAt"`
	EndsAt         time.Time        `json:"endsAt"`
	Location       Location         `json:"location"`
	Price          int64            `json:"price"`
	Status         AssignmentStatus `json:"status"`
	AttachmentRef  string           `json:"attachmentRef,omitempty"`
	AttachmentName string           `json:"attachmentName,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// AssignmentFilter narrows the assignment browse list.
type AssignmentFilter struct {
	Status AssignmentStatus `json:"status,omitempty"`
	Query  string           `json:"query,omitempty"`
	Bounds *Bounds          `json:"bounds,omitempty"`
}
