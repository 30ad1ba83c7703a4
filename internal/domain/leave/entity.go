package leave

import "time"

type Type string

const (
	TypePersonal     Type = "PERSONAL"
	TypeSick         Type = "SICK"
	TypeAnnual       Type = "ANNUAL"
	TypeMarriage     Type = "MARRIAGE"
	TypeFuneral      Type = "FUNERAL"
	TypeMaternity    Type = "MATERNITY"
	TypeCompensation Type = "COMPENSATION"
	// TypeAllowed is leave pre-approved verbally by a named approver; the
	// request must carry that approver's name.
	TypeAllowed Type = "ALLOWED"
)

// AllTypes returns every leave type a request may carry
func AllTypes() []Type {
	return []Type{
		TypePersonal,
		TypeSick,
		TypeAnnual,
		TypeMarriage,
		TypeFuneral,
		TypeMaternity,
		TypeCompensation,
		TypeAllowed,
	}
}

func IsValidType(t Type) bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"

	// StatusExpired is display-only: a PENDING request whose window has
	// passed. It is computed at read time and never persisted.
	StatusExpired Status = "EXPIRED"
)

// Request entity
type Request struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Type      Type      `json:"type"`
	AllowedBy string    `json:"allowedBy,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsTerminal reports whether the stored status admits no further transition
func (r *Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// DisplayStatus derives the status shown to callers at the given time
func (r *Request) DisplayStatus(now time.Time) Status {
	if r.Status == StatusPending && r.EndDate.Before(now) {
		return StatusExpired
	}
	return r.Status
}
