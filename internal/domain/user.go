package domain

import "time"

// Role represents the user's permission level in the system.
type Role string

const (
	// RoleAdmin grants full administrative access.
	RoleAdmin Role = "admin"
	// RoleMember grants standard user access.
	RoleMember Role = "member"
)

// User represents a registered account.
// Alias and Email are unique across users.
type User struct {
	ID           int64     `json:"id"`
	Role         Role      `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Name         string    `json:"name"`
	Alias        string    `json:"alias"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	RegisteredAt time.Time `json:"registered_at"`
}
