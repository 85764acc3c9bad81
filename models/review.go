package models

import "time"

// Review is a rating left for a user after an assignment.
type Review struct {
	ID           int64     `json:"id"`
	AssignmentID int64     `json:"assignmentId"`
	AuthorID     int64     `json:"authorId"`
	SubjectID    int64     `json:"subjectId"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
