package user

import "context"

// Service covers the account lifecycle operations an admin (or the user
// themselves, for profile edits) performs after registration.
type Service interface {
	// ApproveForSetup moves a PENDING_APPROVAL user to WAITING_SETUP.
	// Any other source status fails with ErrInvalidStatusTransition.
	ApproveForSetup(ctx context.Context, userID string) (User, error)

	SetStatus(ctx context.Context, userID string, status Status) (User, error)
	SetPermissions(ctx context.Context, userID string, permissions []Permission) (User, error)

	// UpdateProfile applies the non-nil fields. The returned user reflects
	// the committed state so a self-update can refresh the caller's session
	// view.
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (User, error)

	Get(ctx context.Context, userID string) (User, error)
	List(ctx context.Context) ([]User, error)
}
