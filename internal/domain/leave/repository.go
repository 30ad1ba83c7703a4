package leave

import "context"

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// Decide moves a PENDING request to the given terminal status. A request
	// already decided fails with ErrAlreadyProcessed.
	Decide(ctx context.Context, id string, status Status) (Request, error)
	List(ctx context.Context) ([]Request, error)
	ListByUser(ctx context.Context, userID string) ([]Request, error)
}
