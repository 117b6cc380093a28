package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.UserStore = (*UserStore)(nil)

const (
	// Key prefixes for Redis
	userPrefix     = "user:"
	usernamePrefix = "user:username:"
)

// userRecord is the stored shape; PasswordHash must round-trip even though
// domain.User never serializes it.
type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Admin        bool      `json:"admin"`
	CreatedAt    int64     `json:"created_at"`
}

// UserStore implements driven.UserStore using Redis. Intended for small
// single-node deployments where PostgreSQL is not worth running.
type UserStore struct {
	client *redis.Client
}

// NewUserStore creates a new Redis-backed UserStore
func NewUserStore(client *redis.Client) *UserStore {
	return &UserStore{client: client}
}

// CreateAndGet persists a new user and returns the canonical stored record.
// Uniqueness rides on SETNX of the username index: the first writer wins,
// the loser gets ErrAlreadyExists with nothing persisted.
func (s *UserStore) CreateAndGet(ctx context.Context, user *domain.User) (*domain.User, error) {
	ok, err := s.client.SetNX(ctx, usernamePrefix+user.Username, user.ID.String(), 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to reserve username: %w", err)
	}
	if !ok {
		return nil, domain.ErrAlreadyExists
	}

	data, err := json.Marshal(toRecord(user))
	if err != nil {
		// Roll the reservation back so the username is not burned.
		s.client.Del(ctx, usernamePrefix+user.Username)
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := s.client.Set(ctx, userPrefix+user.ID.String(), data, 0).Err(); err != nil {
		s.client.Del(ctx, usernamePrefix+user.Username)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return s.GetByID(ctx, user.ID)
}

// GetByUsername retrieves a user by username
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	id, err := s.client.Get(ctx, usernamePrefix+username).Result()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get username index: %w", err)
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("corrupt username index for %q: %w", username, err)
	}

	return s.GetByID(ctx, userID)
}

// GetByID retrieves a user by ID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	data, err := s.client.Get(ctx, userPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return fromRecord(&rec), nil
}

func toRecord(u *domain.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Admin:        u.Admin,
		CreatedAt:    u.CreatedAt.Unix(),
	}
}

func fromRecord(r *userRecord) *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Admin:        r.Admin,
		CreatedAt:    time.Unix(r.CreatedAt, 0).UTC(),
	}
}
