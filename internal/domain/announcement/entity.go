package announcement

import "time"

// Announcement entity. Visibility is either public (all active users) or an
// explicit target list; ReadBy records acknowledgements.
type Announcement struct {
	ID            string    `json:"id"`
	CreatorID     string    `json:"creatorId"`
	Content       string    `json:"content"`
	IsPublic      bool      `json:"isPublic"`
	TargetUserIDs []string  `json:"targetUserIds"`
	ReadBy        []string  `json:"readBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsVisibleTo reports whether the user may see the announcement
func (a *Announcement) IsVisibleTo(userID string) bool {
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

// IsReadBy reports whether the user has acknowledged the announcement
func (a *Announcement) IsReadBy(userID string) bool {
	for _, id := range a.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
