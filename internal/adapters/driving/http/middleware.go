package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/ports/driving"
)

// Context keys
type contextKey string

const subjectIDKey contextKey = "subject_id"

// AuthMiddleware handles request authentication
type AuthMiddleware struct {
	authService driving.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService driving.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate validates the bearer token and adds the subject id to the
// request context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		subjectID, err := m.authService.DecodeAccessToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), subjectIDKey, subjectID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectID retrieves the authenticated subject id from request context
func GetSubjectID(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	subjectID, ok := ctx.Value(subjectIDKey).(uuid.UUID)
	return subjectID, ok
}

// extractBearerToken extracts the Bearer token from Authorization header
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
