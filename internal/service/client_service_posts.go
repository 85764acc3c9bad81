package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientPostService struct {
	api       adapter.PostAPI
	guard     *SessionGuard
	validator validators.Validator
}

// NewClientPostService creates a PostService.
func NewClientPostService(api adapter.PostAPI, guard *SessionGuard, validator validators.Validator) PostService {
	return &clientPostService{api: api, guard: guard, validator: validator}
}

func (s *clientPostService) Get(ctx context.Context, id int64) (models.Post, error) {
	return guarded(ctx, s.guard, "get post", func(ctx context.Context) (models.Post, error) {
		return s.api.GetPost(ctx, id)
	})
}

func (s *clientPostService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	if err := s.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "create post", func(ctx context.Context) (models.Post, error) {
		return s.api.CreatePost(ctx, post)
	})
}

func (s *clientPostService) Comments(ctx context.Context, postID int64, page models.PageRequest) (models.Paged[models.Comment], error) {
	return guarded(ctx, s.guard, "post comments", func(ctx context.Context) (models.Paged[models.Comment], error) {
		return s.api.Comments(ctx, postID, page)
	})
}

func (s *clientPostService) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := s.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("add comment: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "add comment", func(ctx context.Context) (models.Comment, error) {
		return s.api.AddComment(ctx, comment)
	})
}
