package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// MockUserStore is a mock implementation of UserStore for testing
type MockUserStore struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*domain.User
	byUsername map[string]*domain.User
}

// NewMockUserStore creates a new MockUserStore
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:      make(map[uuid.UUID]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func (m *MockUserStore) CreateAndGet(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUsername[user.Username]; ok {
		return nil, domain.ErrAlreadyExists
	}
	stored := *user
	m.users[stored.ID] = &stored
	m.byUsername[stored.Username] = &stored
	return &stored, nil
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// Helper methods for testing

func (m *MockUserStore) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		delete(m.byUsername, user.Username)
		delete(m.users, id)
	}
}

func (m *MockUserStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[uuid.UUID]*domain.User)
	m.byUsername = make(map[string]*domain.User)
}

func (m *MockUserStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}
