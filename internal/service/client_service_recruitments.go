package service

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientRecruitmentService struct {
	api   adapter.RecruitmentAPI
	guard *SessionGuard
}

// NewClientRecruitmentService creates a RecruitmentService.
func NewClientRecruitmentService(api adapter.RecruitmentAPI, guard *SessionGuard) RecruitmentService {
	return &clientRecruitmentService{api: api, guard: guard}
}

func (s *clientRecruitmentService) Accept(ctx context.Context, id int64) (models.Recruitment, error) {
	return guarded(ctx, s.guard, "accept recruitment", func(ctx context.Context) (models.Recruitment, error) {
		return s.api.AcceptRecruitment(ctx, id)
	})
}

func (s *clientRecruitmentService) Decline(ctx context.Context, id int64) (models.Recruitment, error) {
	return guarded(ctx, s.guard, "decline recruitment", func(ctx context.Context) (models.Recruitment, error) {
		return s.api.DeclineRecruitment(ctx, id)
	})
}
