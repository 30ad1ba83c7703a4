package auth

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/registration"
)

// Service defines the interface for authentication and onboarding logic
type Service interface {
	// Login matches username and credential exactly. A match on an account
	// that is neither ACTIVE nor an admin fails with ErrAccountNotActive.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register redeems a registration code and creates a PENDING_APPROVAL
	// user with a placeholder username, notifying the admins.
	Register(ctx context.Context, req RegisterRequest) error

	// CheckEmailForSetup reports whether a WAITING_SETUP account exists for
	// the email.
	CheckEmailForSetup(ctx context.Context, email string) (bool, error)

	// CompleteSetup fills in the account of a WAITING_SETUP user, activates
	// it and returns a session for it.
	CompleteSetup(ctx context.Context, req SetupRequest) (TokenResponse, error)

	// GenerateCode mints a 6-character registration code valid for 30
	// minutes. Previously issued codes stay valid.
	GenerateCode(ctx context.Context, createdBy string) (registration.Code, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
