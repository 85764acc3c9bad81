package models

import "time"

// Channel is the per-assignment message thread between owner and walker.
type Channel struct {
	ID           int64 `json:"id"`
	AssignmentID int64 `json:"assignmentId"`
	OwnerID      int64 `json:"ownerId"`
	WalkerID     int64 `json:"walkerId"`
}

// Message is a single channel message.
type Message struct {
	ID             int64     `json:"id"`
	ChannelID      int64     `json:"channelId"`
	SenderID       int64     `json:"senderId"`
	Content        string    `json:"content,omitempty"`
	AttachmentRef  string    `json:"attachmentRef,omitempty"`
	AttachmentName string    `json:"attachmentName,omitempty"`
	SentAt         time.Time `json:"sentAt"`
}

// MessageDraft is the body of a send-message request.
type MessageDraft struct {
	Content       string `json:"content,omitempty"`
	AttachmentRef string `json:"attachmentRef,omitempty"`
}
