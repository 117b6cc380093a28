package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
	"github.com/custodia-labs/authcore/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface. It holds no mutable
// state beyond configuration fixed at construction, so a single instance is
// safe for concurrent use.
type authService struct {
	userStore  driven.UserStore
	hasher     driven.PasswordHasher
	codec      driven.TokenCodec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates a new AuthService with the given token lifetimes.
func NewAuthService(
	userStore driven.UserStore,
	hasher driven.PasswordHasher,
	codec driven.TokenCodec,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) driving.AuthService {
	return &authService{
		userStore:  userStore,
		hasher:     hasher,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a new user and mints its first token pair
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, *domain.TokenPair, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	// The store returns the canonical record so storage-assigned fields
	// are reflected in the minted tokens. A username collision surfaces
	// as ErrAlreadyExists and leaves nothing persisted.
	user, err := s.userStore.CreateAndGet(ctx, domain.NewUser(username, passwordHash))
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.mintTokenPair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Login verifies credentials and mints a fresh token pair
func (s *authService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		// Same error as a wrong password so callers cannot tell
		// "user not found" from "bad password".
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthorized
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrNotAuthorized
	}

	return s.mintTokenPair(user.ID)
}

// Refresh exchanges a valid refresh token for a brand-new pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.ErrNotAuthorized
	}

	payload, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, domain.ErrNotAuthorized
	}

	// The user may have been deleted since the token was issued.
	user, err := s.userStore.GetByID(ctx, payload.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthorized
		}
		return nil, err
	}

	return s.mintTokenPair(user.ID)
}

// DecodeAccessToken validates a token and returns its subject id
func (s *authService) DecodeAccessToken(ctx context.Context, token string) (uuid.UUID, error) {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return uuid.Nil, domain.ErrNotAuthorized
	}
	return payload.SubjectID, nil
}

// mintTokenPair issues an access/refresh pair for a subject. Both tokens
// come from the same codec and secret; only the TTL differs.
func (s *authService) mintTokenPair(subjectID uuid.UUID) (*domain.TokenPair, error) {
	accessToken, err := s.codec.Encode(subjectID, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.codec.Encode(subjectID, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
