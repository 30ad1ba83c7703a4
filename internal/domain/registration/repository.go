package registration

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, code Code) (Code, error)
	// FindValid returns the stored code matching the given value that has
	// not expired at the given time.
	FindValid(ctx context.Context, code string, now time.Time) (Code, bool, error)
	List(ctx context.Context) ([]Code, error)
}
