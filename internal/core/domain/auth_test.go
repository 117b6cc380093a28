package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenPayload_IsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "future expiry", expiresAt: time.Now().Add(time.Hour), want: false},
		{name: "past expiry", expiresAt: time.Now().Add(-time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := TokenPayload{SubjectID: uuid.New(), ExpiresAt: tt.expiresAt}
			if got := p.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
