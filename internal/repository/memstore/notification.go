package memstore

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
)

type notificationRepository struct {
	s *Store
}

func NewNotificationRepository(s *Store) notification.Repository {
	return &notificationRepository{s: s}
}

// Create implements notification.Repository.
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.notifications = append([]notification.Notification{n}, r.s.notifications...)
	r.s.saveLocked(ctx, keyNotifications, r.s.notifications)
	return n, nil
}

// ListByUser implements notification.Repository.
func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []notification.Notification{}
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkAllRead implements notification.Repository.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	changed := false
	for i := range r.s.notifications {
		if r.s.notifications[i].UserID == userID && !r.s.notifications[i].IsRead {
			r.s.notifications[i].IsRead = true
			changed = true
		}
	}
	if changed {
		r.s.saveLocked(ctx, keyNotifications, r.s.notifications)
	}
	return nil
}
