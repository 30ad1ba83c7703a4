package leave

import "context"

type Service interface {
	// Submit creates a PENDING request for the user and notifies the admins.
	Submit(ctx context.Context, userID string, req CreateRequest) (Request, error)

	// Decide moves a PENDING request to APPROVED or REJECTED and notifies
	// its owner. Deciding a request that is no longer PENDING fails with
	// ErrAlreadyProcessed.
	Decide(ctx context.Context, requestID string, status Status) (Request, error)

	ListAll(ctx context.Context) ([]Request, error)
	ListByUser(ctx context.Context, userID string) ([]Request, error)
}
