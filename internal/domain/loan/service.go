package loan

import "context"

type Service interface {
	// Submit creates a PENDING loan after checking every requested item
	// against existing holding loans for window overlap. A clash fails with
	// *ItemConflictError naming the contested item; on success the admins
	// are notified.
	Submit(ctx context.Context, userID string, req CreateRequest) (Request, error)

	// Decide moves a PENDING loan to SUCCESS or REJECTED and notifies its
	// owner. Deciding a loan that is no longer PENDING fails with
	// ErrAlreadyProcessed.
	Decide(ctx context.Context, requestID string, status Status) (Request, error)

	ListAll(ctx context.Context) ([]Request, error)
	ListByUser(ctx context.Context, userID string) ([]Request, error)
}
