package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-pet-walker/models"
)

type eligibility struct {
	Eligible bool `json:"eligible"`
}

// ListAssignments implements [AssignmentAPI] via GET /api/assignments.
// Filter fields are sent as query parameters; bounds as
// south,west,north,east.
func (h *httpServerAdapter) ListAssignments(ctx context.Context, filter models.AssignmentFilter, page models.PageRequest) (models.Paged[models.Assignment], error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if b := filter.Bounds; b != nil {
		query.Set("bounds", fmt.Sprintf("%s,%s,%s,%s", ff(b.South), ff(b.West), ff(b.North), ff(b.East)))
	}

	out, err := getPaged[models.Assignment](ctx, h, "/api/assignments", page, query)
	if err != nil {
		return out, fmt.Errorf("list assignments: %w", err)
	}
	return out, nil
}

// GetAssignment implements [AssignmentAPI] via GET /api/assignments/{id}.
func (h *httpServerAdapter) GetAssignment(ctx context.Context, id int64) (models.Assignment, error) {
	out, err := get[models.Assignment](ctx, h, idPath("/api/assignments/%d", id))
	if err != nil {
		return out, fmt.Errorf("get assignment %d: %w", id, err)
	}
	return out, nil
}

// CreateAssignment implements [AssignmentAPI] via POST /api/assignments.
func (h *httpServerAdapter) CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	out, err := post[models.Assignment](ctx, h, "/api/assignments", assignment)
	if err != nil {
		return out, fmt.Errorf("create assignment: %w", err)
	}
	return out, nil
}

// UpdateAssignment implements [AssignmentAPI] via PUT /api/assignments/{id}.
func (h *httpServerAdapter) UpdateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	out, err := put[models.Assignment](ctx, h, idPath("/api/assignments/%d", assignment.ID), assignment)
	if err != nil {
		return out, fmt.Errorf("update assignment %d: %w", assignment.ID, err)
	}
	return out, nil
}

// AssignmentPets implements [AssignmentAPI] via GET /api/assignments/{id}/pets.
func (h *httpServerAdapter) AssignmentPets(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Pet], error) {
	out, err := getPaged[models.Pet](ctx, h, idPath("/api/assignments/%d/pets", assignmentID), page, nil)
	if err != nil {
		return out, fmt.Errorf("assignment %d pets: %w", assignmentID, err)
	}
	return out, nil
}

// AssignmentRecruitments implements [AssignmentAPI] via
// GET /api/assignments/{id}/recruitments.
func (h *httpServerAdapter) AssignmentRecruitments(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Recruitment], error) {
	out, err := getPaged[models.Recruitment](ctx, h, idPath("/api/assignments/%d/recruitments", assignmentID), page, nil)
	if err != nil {
		return out, fmt.Errorf("assignment %d recruitments: %w", assignmentID, err)
	}
	return out, nil
}

// CanRecruit implements [AssignmentAPI] via
// GET /api/assignments/{id}/eligibility.
func (h *httpServerAdapter) CanRecruit(ctx context.Context, assignmentID int64) (bool, error) {
	out, err := get[eligibility](ctx, h, idPath("/api/assignments/%d/eligibility", assignmentID))
	if err != nil {
		return false, fmt.Errorf("assignment %d eligibility: %w", assignmentID, err)
	}
	return out.Eligible, nil
}

// Recruit implements [AssignmentAPI] via
// POST /api/assignments/{id}/recruitments.
func (h *httpServerAdapter) Recruit(ctx context.Context, assignmentID int64) (models.Recruitment, error) {
	out, err := post[models.Recruitment](ctx, h, idPath("/api/assignments/%d/recruitments", assignmentID), struct{}{})
	if err != nil {
		return out, fmt.Errorf("recruit for assignment %d: %w", assignmentID, err)
	}
	return out, nil
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
