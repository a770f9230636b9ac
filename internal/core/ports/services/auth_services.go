package services

import (
	"context"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/SscSPs/resale_hub/internal/dto"
)

// AuthSvcFacade registers users and exchanges credentials for access tokens.
type AuthSvcFacade interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and issues a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
