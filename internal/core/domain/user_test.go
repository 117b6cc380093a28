package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user := NewUser("alice", "hashed")

	if user.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}
	if user.PasswordHash != "hashed" {
		t.Error("expected password hash to be set")
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestNewUser_UniqueIDs(t *testing.T) {
	a := NewUser("alice", "h")
	b := NewUser("alice", "h")

	if a.ID == b.ID {
		t.Error("expected distinct ids for distinct users")
	}
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := NewUser("alice", "super-secret-hash")

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "super-secret-hash") {
		t.Error("password hash must not appear in serialized user")
	}
}

func TestUser_ToSummary(t *testing.T) {
	user := NewUser("alice", "hash")
	user.Admin = true

	summary := user.ToSummary()

	if summary.ID != user.ID {
		t.Error("expected id to carry over")
	}
	if summary.Username != user.Username {
		t.Error("expected username to carry over")
	}
	if !summary.Admin {
		t.Error("expected admin flag to carry over")
	}
}
