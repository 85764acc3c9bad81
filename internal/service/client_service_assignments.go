package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientAssignmentService struct {
	api       adapter.AssignmentAPI
	guard     *SessionGuard
	validator validators.Validator
}

// NewClientAssignmentService creates an AssignmentService.
func NewClientAssignmentService(api adapter.AssignmentAPI, guard *SessionGuard, validator validators.Validator) AssignmentService {
	return &clientAssignmentService{api: api, guard: guard, validator: validator}
}

func (s *clientAssignmentService) List(ctx context.Context, filter models.AssignmentFilter, page models.PageRequest) (models.Paged[models.Assignment], error) {
	return guarded(ctx, s.guard, "list assignments", func(ctx context.Context) (models.Paged[models.Assignment], error) {
		return s.api.ListAssignments(ctx, filter, page)
	})
}

func (s *clientAssignmentService) Get(ctx context.Context, id int64) (models.Assignment, error) {
	return guarded(ctx, s.guard, "get assignment", func(ctx context.Context) (models.Assignment, error) {
		return s.api.GetAssignment(ctx, id)
	})
}

func (s *clientAssignmentService) Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	if err := s.validator.Validate(ctx, assignment); err != nil {
		return models.Assignment{}, fmt.Errorf("create assignment: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "create assignment", func(ctx context.Context) (models.Assignment, error) {
		return s.api.CreateAssignment(ctx, assignment)
	})
}

func (s *clientAssignmentService) Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	if err := s.validator.Validate(ctx, assignment); err != nil {
		return models.Assignment{}, fmt.Errorf("update assignment: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "update assignment", func(ctx context.Context) (models.Assignment, error) {
		return s.api.UpdateAssignment(ctx, assignment)
	})
}

func (s *clientAssignmentService) Pets(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Pet], error) {
	return guarded(ctx, s.guard, "assignment pets", func(ctx context.Context) (models.Paged[models.Pet], error) {
		return s.api.AssignmentPets(ctx, assignmentID, page)
	})
}

func (s *clientAssignmentService) Recruitments(ctx context.Context, assignmentID int64, page models.PageRequest) (models.Paged[models.Recruitment], error) {
	return guarded(ctx, s.guard, "assignment recruitments", func(ctx context.Context) (models.Paged[models.Recruitment], error) {
		return s.api.AssignmentRecruitments(ctx, assignmentID, page)
	})
}

func (s *clientAssignmentService) CanRecruit(ctx context.Context, assignmentID int64) (bool, error) {
	return guarded(ctx, s.guard, "can recruit", func(ctx context.Context) (bool, error) {
		return s.api.CanRecruit(ctx, assignmentID)
	})
}

func (s *clientAssignmentService) Recruit(ctx context.Context, assignmentID int64) (models.Recruitment, error) {
	return guarded(ctx, s.guard, "recruit", func(ctx context.Context) (models.Recruitment, error) {
		return s.api.Recruit(ctx, assignmentID)
	})
}
