package models

import "time"

// Role describes what a user does on the marketplace.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
)

// User is a marketplace account as returned by the server.
type User struct {
	// ID is the server-assigned user identifier.
	ID int64 `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is the login identifier.
	Email string `json:"email"`

	// AvatarURL points to the profile picture, may be empty.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// Role is the primary role chosen at registration.
	Role Role `json:"role"`

	// Location is the last known home location, if shared.
	Location *Location `json:"location,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Session is the authenticated state persisted by the client.
type Session struct {
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updatedAt"`
}
