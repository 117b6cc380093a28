package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The ID is assigned at registration
// and never changes; Username is unique and immutable after creation.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser constructs a user with a fresh random identifier. The password
// hash must already be derived; plaintext never reaches the domain layer.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// UserSummary provides a safe view of user data (no password hash)
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSummary converts a User to UserSummary
func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}
