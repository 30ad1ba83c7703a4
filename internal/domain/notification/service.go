package notification

import "context"

// Service fans notifications out as a side effect of state-changing
// operations elsewhere in the store.
type Service interface {
	Notify(ctx context.Context, userID string, typ Type, title, message, relatedID string) error
	// NotifyAdmins sends a SYSTEM notification to every admin account.
	NotifyAdmins(ctx context.Context, title, message string) error
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
}
