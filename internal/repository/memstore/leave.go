package memstore

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/leave"
)

type leaveRepository struct {
	s *Store
}

func NewLeaveRepository(s *Store) leave.Repository {
	return &leaveRepository{s: s}
}

// Create implements leave.Repository. Newest requests go first, matching
// how the listings are consumed.
func (r *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.leaves = append([]leave.Request{req}, r.s.leaves...)
	r.s.saveLocked(ctx, keyLeaves, r.s.leaves)
	return req, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, req := range r.s.leaves {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

// Decide implements leave.Repository. The status check and the write share
// the lock, so only the first of two racing decisions lands.
func (r *leaveRepository) Decide(ctx context.Context, id string, status leave.Status) (leave.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.leaves {
		if r.s.leaves[i].ID != id {
			continue
		}
		if r.s.leaves[i].Status != leave.StatusPending {
			return leave.Request{}, leave.ErrAlreadyProcessed
		}
		r.s.leaves[i].Status = status
		r.s.saveLocked(ctx, keyLeaves, r.s.leaves)
		return r.s.leaves[i], nil
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]leave.Request, len(r.s.leaves))
	copy(out, r.s.leaves)
	return out, nil
}

// ListByUser implements leave.Repository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []leave.Request
	for _, req := range r.s.leaves {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}
