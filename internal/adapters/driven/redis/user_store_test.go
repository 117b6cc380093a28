package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// setupTestUserStore creates a test Redis client and UserStore
func setupTestUserStore(t *testing.T) (*UserStore, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewUserStore(client)

	return store, mr, func() {
		client.Close()
		mr.Close()
	}
}

// createTestUser creates a test user with default values
func createTestUser(username string) *domain.User {
	user := domain.NewUser(username, "$2a$10$fakehashfakehashfakehash")
	return user
}

func TestNewUserStore(t *testing.T) {
	store, _, cleanup := setupTestUserStore(t)
	defer cleanup()

	if store == nil {
		t.Fatal("expected non-nil UserStore")
	}
	if store.client == nil {
		t.Error("expected non-nil Redis client")
	}
}

func TestUserStore_CreateAndGet_Success(t *testing.T) {
	store, _, cleanup := setupTestUserStore(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser("alice")

	stored, err := store.CreateAndGet(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error creating user: %v", err)
	}

	if stored.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, stored.ID)
	}
	if stored.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, stored.Username)
	}
	if stored.PasswordHash != user.PasswordHash {
		t.Error("expected password hash to round-trip")
	}
}

func TestUserStore_CreateAndGet_DuplicateUsername(t *testing.T) {
	store, _, cleanup := setupTestUserStore(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := store.CreateAndGet(ctx, createTestUser("alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := createTestUser("alice")
	_, err := store.CreateAndGet(ctx, second)
	if err != domain.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The loser's record must not exist
	if _, err := store.GetByID(ctx, second.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for losing registration, got %v", err)
	}
}

func TestUserStore_GetByUsername(t *testing.T) {
	store, _, cleanup := setupTestUserStore(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser("bob")
	if _, err := store.CreateAndGet(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := store.GetByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, found.ID)
	}
}

func TestUserStore_GetByUsername_NotFound(t *testing.T) {
	store, _, cleanup := setupTestUserStore(t)
	defer cleanup()

	_, err := store.GetByUsername(context.Background(), "nobody")
	if err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStore_GetByID_NotFound(t *testing.T) {
	store, _, cleanup := setupTestUserStore(t)
	defer cleanup()

	_, err := store.GetByID(context.Background(), uuid.New())
	if err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStore_GetByUsername_DanglingIndex(t *testing.T) {
	store, mr, cleanup := setupTestUserStore(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser("carol")

	if _, err := store.CreateAndGet(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate the user blob disappearing while the index survives; a
	// lookup must surface the missing record, not a phantom user.
	mr.Del(userPrefix + user.ID.String())

	if _, err := store.GetByUsername(ctx, "carol"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for dangling index, got %v", err)
	}
}
