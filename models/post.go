package models

import "time"

// Post is a community post.
type Post struct {
	ID             int64     `json:"id"`
	AuthorID       int64     `json:"authorId"`
	Title          string    `json:"title"`
	Content        string    `json:"content,omitempty"`
	AttachmentRef  string    `json:"attachmentRef,omitempty"`
	AttachmentName string    `json:"attachmentName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Comment is a reply under a post.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	AuthorID  int64     `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
