package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/models"
)

// GetPost implements [PostAPI] via GET /api/posts/{id}.
func (h *httpServerAdapter) GetPost(ctx context.Context, id int64) (models.Post, error) {
	out, err := get[models.Post](ctx, h, idPath("/api/posts/%d", id))
	if err != nil {
		return out, fmt.Errorf("get post %d: %w", id, err)
	}
	return out, nil
}

// CreatePost implements [PostAPI] via POST /api/posts.
func (h *httpServerAdapter) CreatePost(ctx context.Context, p models.Post) (models.Post, error) {
	out, err := post[models.Post](ctx, h, "/api/posts", p)
	if err != nil {
		return out, fmt.Errorf("create post: %w", err)
	}
	return out, nil
}

// Comments implements [PostAPI] via GET /api/posts/{id}/comments.
func (h *httpServerAdapter) Comments(ctx context.Context, postID int64, page models.PageRequest) (models.Paged[models.Comment], error) {
	out, err := getPaged[models.Comment](ctx, h, idPath("/api/posts/%d/comments", postID), page, nil)
	if err != nil {
		return out, fmt.Errorf("post %d comments: %w", postID, err)
	}
	return out, nil
}

// AddComment implements [PostAPI] via POST /api/posts/{id}/comments.
func (h *httpServerAdapter) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	out, err := post[models.Comment](ctx, h, idPath("/api/posts/%d/comments", comment.PostID), comment)
	if err != nil {
		return out, fmt.Errorf("comment on post %d: %w", comment.PostID, err)
	}
	return out, nil
}
