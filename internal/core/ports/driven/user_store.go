package driven

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// UserStore handles user persistence (PostgreSQL or Redis).
type UserStore interface {
	// CreateAndGet persists a new user and returns the canonical stored
	// record. The uniqueness check on username is atomic with the write:
	// a collision returns domain.ErrAlreadyExists and leaves no record.
	CreateAndGet(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns domain.ErrNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns domain.ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
