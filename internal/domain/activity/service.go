package activity

import "context"

type Service interface {
	// Create stores the activity with an empty attendee list and notifies
	// every visible, active recipient other than the creator.
	Create(ctx context.Context, creatorID string, req CreateRequest) (Activity, error)

	// RSVP upserts the user's vote. A new ACCEPT fails with ErrActivityFull
	// when the accepted count has reached MaxPeople; the user's prior vote,
	// if any, is left untouched in that case. A user already accepted may
	// always re-accept.
	RSVP(ctx context.Context, userID, activityID string, status AttendeeStatus) (Activity, error)

	ListVisible(ctx context.Context, userID string) ([]Activity, error)
}
