package memstore

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
)

type announcementRepository struct {
	s *Store
}

func NewAnnouncementRepository(s *Store) announcement.Repository {
	return &announcementRepository{s: s}
}

// Create implements announcement.Repository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ReadBy == nil {
		a.ReadBy = []string{}
	}
	r.s.announcements = append([]announcement.Announcement{a}, r.s.announcements...)
	r.s.saveLocked(ctx, keyAnnouncements, r.s.announcements)
	return a, nil
}

// GetByID implements announcement.Repository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.announcements {
		if a.ID == id {
			return a, nil
		}
	}
	return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
}

// MarkRead implements announcement.Repository. The append runs against the
// stored record under the write lock, so concurrent readers cannot drop
// each other's acknowledgements.
func (r *announcementRepository) MarkRead(ctx context.Context, announcementID, userID string) (announcement.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.announcements {
		if r.s.announcements[i].ID != announcementID {
			continue
		}
		a := r.s.announcements[i]
		if a.IsReadBy(userID) {
			return a, nil
		}
		a.ReadBy = append(append([]string(nil), a.ReadBy...), userID)
		r.s.announcements[i] = a
		r.s.saveLocked(ctx, keyAnnouncements, r.s.announcements)
		return a, nil
	}
	return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
}

// Delete implements announcement.Repository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.announcements {
		if existing.ID == id {
			r.s.announcements = append(r.s.announcements[:i], r.s.announcements[i+1:]...)
			r.s.saveLocked(ctx, keyAnnouncements, r.s.announcements)
			return nil
		}
	}
	return announcement.ErrAnnouncementNotFound
}

// List implements announcement.Repository.
func (r *announcementRepository) List(ctx context.Context) ([]announcement.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]announcement.Announcement, len(r.s.announcements))
	copy(out, r.s.announcements)
	return out, nil
}
