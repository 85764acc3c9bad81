package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/models"
)

// FeaturedWalkers implements [WalkerAPI] via GET /api/walkers/featured.
func (h *httpServerAdapter) FeaturedWalkers(ctx context.Context, page models.PageRequest) (models.Paged[models.Walker], error) {
	out, err := getPaged[models.Walker](ctx, h, "/api/walkers/featured", page, nil)
	if err != nil {
		return out, fmt.Errorf("featured walkers: %w", err)
	}
	return out, nil
}

// GetUser implements [WalkerAPI] via GET /api/users/{id}.
func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	out, err := get[models.User](ctx, h, idPath("/api/users/%d", id))
	if err != nil {
		return out, fmt.Errorf("get user %d: %w", id, err)
	}
	return out, nil
}

// UserReviews implements [WalkerAPI] via GET /api/users/{id}/reviews.
func (h *httpServerAdapter) UserReviews(ctx context.Context, userID int64, page models.PageRequest) (models.Paged[models.Review], error) {
	out, err := getPaged[models.Review](ctx, h, idPath("/api/users/%d/reviews", userID), page, nil)
	if err != nil {
		return out, fmt.Errorf("user %d reviews: %w", userID, err)
	}
	return out, nil
}

// CreateReview implements [ReviewAPI] via POST /api/reviews.
func (h *httpServerAdapter) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	out, err := post[models.Review](ctx, h, "/api/reviews", review)
	if err != nil {
		return out, fmt.Errorf("create review: %w", err)
	}
	return out, nil
}
