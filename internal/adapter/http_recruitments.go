package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/models"
)

// AcceptRecruitment implements [RecruitmentAPI] via
// POST /api/recruitments/{id}/accept.
func (h *httpServerAdapter) AcceptRecruitment(ctx context.Context, id int64) (models.Recruitment, error) {
	out, err := post[models.Recruitment](ctx, h, idPath("/api/recruitments/%d/accept", id), struct{}{})
	if err != nil {
		return out, fmt.Errorf("accept recruitment %d: %w", id, err)
	}
	return out, nil
}

// DeclineRecruitment implements [RecruitmentAPI] via
// POST /api/recruitments/{id}/decline.
func (h *httpServerAdapter) DeclineRecruitment(ctx context.Context, id int64) (models.Recruitment, error) {
	out, err := post[models.Recruitment](ctx, h, idPath("/api/recruitments/%d/decline", id), struct{}{})
	if err != nil {
		return out, fmt.Errorf("decline recruitment %d: %w", id, err)
	}
	return out, nil
}
