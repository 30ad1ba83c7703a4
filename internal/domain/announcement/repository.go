package announcement

import "context"

type Repository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	// MarkRead records the user in ReadBy against the stored record.
	// Repeated calls are no-ops.
	MarkRead(ctx context.Context, announcementID, userID string) (Announcement, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Announcement, error)
}
