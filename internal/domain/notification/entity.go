package notification

import "time"

// Type tags a notification with the surface it originated from
type Type string

const (
	TypeLeave        Type = "LEAVE"
	TypeLoan         Type = "LOAN"
	TypeAnnouncement Type = "ANNOUNCEMENT"
	TypeActivity     Type = "ACTIVITY"
	TypeSystem       Type = "SYSTEM"
)

// Notification represents a notification entity
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	RelatedID string    `json:"relatedId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
