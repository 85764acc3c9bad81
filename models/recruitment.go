package models

import "time"

// RecruitmentInitiator tells which side asked for the match.
type RecruitmentInitiator string

const (
	InitiatedByWalker RecruitmentInitiator = "walker"
	InitiatedByOwner  RecruitmentInitiator = "owner"
)

// RecruitmentStatus is the state of a recruitment request.
type RecruitmentStatus string

const (
	RecruitmentPending  RecruitmentStatus = "pending"
	RecruitmentAccepted RecruitmentStatus = "accepted"
	RecruitmentDeclined RecruitmentStatus = "declined"
)

// Recruitment is a request to match a walker with an assignment.
type Recruitment struct {
	ID           int64                `json:"id"`
	AssignmentID int64                `json:"assignmentId"`
	WalkerID     int64                `json:"walkerId"`
	OwnerID      int64                `json:"ownerId"`
	InitiatedBy  RecruitmentInitiator `json:"initiatedBy"`
	Status       RecruitmentStatus    `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}
