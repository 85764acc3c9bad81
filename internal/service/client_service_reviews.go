package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientReviewService struct {
	api       adapter.ReviewAPI
	guard     *SessionGuard
	validator validators.Validator
}

// NewClientReviewService creates a ReviewService.
func NewClientReviewService(api adapter.ReviewAPI, guard *SessionGuard, validator validators.Validator) ReviewService {
	return &clientReviewService{api: api, guard: guard, validator: validator}
}

func (s *clientReviewService) Create(ctx context.Context, review models.Review) (models.Review, error) {
	if err := s.validator.Validate(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("create review: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "create review", func(ctx context.Context) (models.Review, error) {
		return s.api.CreateReview(ctx, review)
	})
}
