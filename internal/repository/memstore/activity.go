package memstore

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/activity"
)

type activityRepository struct {
	s *Store
}

func NewActivityRepository(s *Store) activity.Repository {
	return &activityRepository{s: s}
}

// Create implements activity.Repository.
func (r *activityRepository) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.Attendees == nil {
		a.Attendees = []activity.Attendee{}
	}
	r.s.activities = append([]activity.Activity{a}, r.s.activities...)
	r.s.saveLocked(ctx, keyActivities, r.s.activities)
	return a, nil
}

// GetByID implements activity.Repository.
func (r *activityRepository) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return activity.Activity{}, activity.ErrActivityNotFound
}

// Vote implements activity.Repository. The capacity check and the upsert
// run against the stored record under one write lock, so concurrent votes
// neither exceed MaxPeople nor overwrite each other. Attendees is cloned
// before the change so copies handed out earlier keep their own slice.
func (r *activityRepository) Vote(ctx context.Context, activityID, userID string, status activity.AttendeeStatus) (activity.Activity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.activities {
		if r.s.activities[i].ID != activityID {
			continue
		}
		a := r.s.activities[i]
		a.Attendees = append([]activity.Attendee(nil), a.Attendees...)
		if err := a.ApplyVote(userID, status); err != nil {
			return activity.Activity{}, err
		}
		r.s.activities[i] = a
		r.s.saveLocked(ctx, keyActivities, r.s.activities)
		return a, nil
	}
	return activity.Activity{}, activity.ErrActivityNotFound
}

// List implements activity.Repository.
func (r *activityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]activity.Activity, len(r.s.activities))
	copy(out, r.s.activities)
	return out, nil
}
