package memstore

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/loan"
)

type loanRepository struct {
	s *Store
}

func NewLoanRepository(s *Store) loan.Repository {
	return &loanRepository{s: s}
}

// CreateIfAvailable implements loan.Repository. The conflict scan and the
// insert run under one write lock, so two overlapping submits cannot both
// pass the check.
func (r *loanRepository) CreateIfAvailable(ctx context.Context, req loan.Request) (loan.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Every requested item is checked against every loan that still holds
	// its items. Pending requests reserve ahead, so they block too.
	for _, itemID := range req.ItemIDs {
		for i := range r.s.loans {
			held := &r.s.loans[i]
			if held.Holds() && held.HasItem(itemID) && held.Overlaps(req.StartDate, req.ReturnDate) {
				return loan.Request{}, &loan.ItemConflictError{
					ItemID:   itemID,
					ItemName: r.itemNameLocked(itemID),
				}
			}
		}
	}

	r.s.loans = append([]loan.Request{req}, r.s.loans...)
	r.s.saveLocked(ctx, keyLoans, r.s.loans)
	return req, nil
}

// GetByID implements loan.Repository.
func (r *loanRepository) GetByID(ctx context.Context, id string) (loan.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, req := range r.s.loans {
		if req.ID == id {
			return req, nil
		}
	}
	return loan.Request{}, loan.ErrRequestNotFound
}

// Decide implements loan.Repository. The status check and the write share
// the lock, so only the first of two racing decisions lands.
func (r *loanRepository) Decide(ctx context.Context, id string, status loan.Status) (loan.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.loans {
		if r.s.loans[i].ID != id {
			continue
		}
		if r.s.loans[i].Status != loan.StatusPending {
			return loan.Request{}, loan.ErrAlreadyProcessed
		}
		r.s.loans[i].Status = status
		r.s.saveLocked(ctx, keyLoans, r.s.loans)
		return r.s.loans[i], nil
	}
	return loan.Request{}, loan.ErrRequestNotFound
}

// List implements loan.Repository.
func (r *loanRepository) List(ctx context.Context) ([]loan.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]loan.Request, len(r.s.loans))
	copy(out, r.s.loans)
	return out, nil
}

// ListByUser implements loan.Repository.
func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]loan.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []loan.Request
	for _, req := range r.s.loans {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *loanRepository) itemNameLocked(itemID string) string {
	for _, item := range r.s.items {
		if item.ID == itemID {
			return item.Name
		}
	}
	return itemID
}
