package activity

import "context"

type Repository interface {
	Create(ctx context.Context, a Activity) (Activity, error)
	GetByID(ctx context.Context, id string) (Activity, error)
	// Vote applies the user's RSVP against the stored record in one atomic
	// operation, so concurrent votes cannot overwrite each other.
	Vote(ctx context.Context, activityID, userID string, status AttendeeStatus) (Activity, error)
	List(ctx context.Context) ([]Activity, error)
}
