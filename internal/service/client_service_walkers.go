package service

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientWalkerService struct {
	api   adapter.WalkerAPI
	guard *SessionGuard
}

// NewClientWalkerService creates a WalkerService.
func NewClientWalkerService(api adapter.WalkerAPI, guard *SessionGuard) WalkerService {
	return &clientWalkerService{api: api, guard: guard}
}

func (s *clientWalkerService) Featured(ctx context.Context, page models.PageRequest) (models.Paged[models.Walker], error) {
	return guarded(ctx, s.guard, "featured walkers", func(ctx context.Context) (models.Paged[models.Walker], error) {
		return s.api.FeaturedWalkers(ctx, page)
	})
}

func (s *clientWalkerService) User(ctx context.Context, id int64) (models.User, error) {
	return guarded(ctx, s.guard, "get user", func(ctx context.Context) (models.User, error) {
		return s.api.GetUser(ctx, id)
	})
}

func (s *clientWalkerService) Reviews(ctx context.Context, userID int64, page models.PageRequest) (models.Paged[models.Review], error) {
	return guarded(ctx, s.guard, "user reviews", func(ctx context.Context) (models.Paged[models.Review], error) {
		return s.api.UserReviews(ctx, userID, page)
	})
}
