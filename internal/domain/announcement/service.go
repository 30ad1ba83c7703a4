package announcement

import "context"

type Service interface {
	// Create stores the announcement with an empty read-set and notifies
	// every visible, active recipient other than the creator.
	Create(ctx context.Context, creatorID string, req CreateRequest) (Announcement, error)

	// Acknowledge adds the user to the read-set. Acknowledging twice is a
	// no-op.
	Acknowledge(ctx context.Context, userID, announcementID string) (Announcement, error)

	Delete(ctx context.Context, announcementID string) error
	ListVisible(ctx context.Context, userID string) ([]Announcement, error)
}
