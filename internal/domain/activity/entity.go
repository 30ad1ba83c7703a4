package activity

import "time"

type AttendeeStatus string

const (
	AttendeeAccepted AttendeeStatus = "ACCEPTED"
	AttendeeRejected AttendeeStatus = "REJECTED"
)

type Attendee struct {
	UserID string         `json:"userId"`
	Status AttendeeStatus `json:"status"`
}

// Activity entity. Attendees holds at most one entry per user; re-voting
// replaces the prior vote.
type Activity struct {
	ID            string     `json:"id"`
	CreatorID     string     `json:"creatorId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	TotalPrice    string     `json:"totalPrice"`
	MaxPeople     int        `json:"maxPeople"`
	Banner        string     `json:"banner,omitempty"`
	IsPublic      bool       `json:"isPublic"`
	TargetUserIDs []string   `json:"targetUserIds"`
	Attendees     []Attendee `json:"attendees"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// IsVisibleTo reports whether the user may see the activity
func (a *Activity) IsVisibleTo(userID string) bool {
	if a.IsPublic || a.CreatorID == userID {
		return true
	}
	for _, id := range a.TargetUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AcceptedCount returns how many attendees currently hold an ACCEPTED vote
func (a *Activity) AcceptedCount() int {
	count := 0
	for _, att := range a.Attendees {
		if att.Status == AttendeeAccepted {
			count++
		}
	}
	return count
}

// ApplyVote upserts the user's vote. An ACCEPT that would push the accepted
// count past MaxPeople fails with ErrActivityFull; the caller's own prior
// ACCEPT does not count against the limit, so re-accepting at capacity
// still succeeds.
func (a *Activity) ApplyVote(userID string, status AttendeeStatus) error {
	if status == AttendeeAccepted {
		accepted := a.AcceptedCount()
		if prior, ok := a.VoteOf(userID); ok && prior.Status == AttendeeAccepted {
			accepted--
		}
		if accepted >= a.MaxPeople {
			return ErrActivityFull
		}
	}

	for i := range a.Attendees {
		if a.Attendees[i].UserID == userID {
			a.Attendees[i].Status = status
			return nil
		}
	}
	a.Attendees = append(a.Attendees, Attendee{UserID: userID, Status: status})
	return nil
}

// VoteOf returns the user's current vote, if any
func (a *Activity) VoteOf(userID string) (Attendee, bool) {
	for _, att := range a.Attendees {
		if att.UserID == userID {
			return att, true
		}
	}
	return Attendee{}, false
}
