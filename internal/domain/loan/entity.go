package loan

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusSuccess  Status = "SUCCESS"
	StatusRejected Status = "REJECTED"

	// StatusOverdue is display-only: an approved loan past its return time.
	// Computed at read time, never persisted.
	StatusOverdue Status = "OVERDUE"
)

// Request entity. ItemName is a human-readable summary of the borrowed
// items; ItemIDs carries the specific inventory ids the conflict check
// operates on.
type Request struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ItemName   string    `json:"itemName"`
	ItemIDs    []string  `json:"itemIds"`
	StartDate  time.Time `json:"startDate"`
	ReturnDate time.Time `json:"returnDate"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsTerminal reports whether the stored status admits no further transition
func (r *Request) IsTerminal() bool {
	return r.Status == StatusSuccess || r.Status == StatusRejected
}

// Holds reports whether this loan keeps its items reserved: pending requests
// reserve ahead, approved loans hold until returned. SUCCESS subsumes the
// derived OVERDUE state.
func (r *Request) Holds() bool {
	return r.Status == StatusPending || r.Status == StatusSuccess
}

// Overlaps tests half-open window intersection with [start, end)
func (r *Request) Overlaps(start, end time.Time) bool {
	return start.Before(r.ReturnDate) && end.After(r.StartDate)
}

// HasItem reports whether the loan includes the inventory item
func (r *Request) HasItem(itemID string) bool {
	for _, id := range r.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// DisplayStatus derives the status shown to callers at the given time
func (r *Request) DisplayStatus(now time.Time) Status {
	if r.Status == StatusSuccess && r.ReturnDate.Before(now) {
		return StatusOverdue
	}
	return r.Status
}
