package announcement

import (
	"time"

	"github.com/officedesk/officeops-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Content       string   `json:"content"`
	IsPublic      bool     `json:"is_public"`
	TargetUserIDs []string `json:"target_user_ids"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}
	if !r.IsPublic && len(r.TargetUserIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target_user_ids",
			Message: "a targeted announcement needs at least one recipient",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID            string    `json:"id"`
	CreatorID     string    `json:"creator_id"`
	Content       string    `json:"content"`
	IsPublic      bool      `json:"is_public"`
	TargetUserIDs []string  `json:"target_user_ids,omitempty"`
	ReadBy        []string  `json:"read_by"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse renders the announcement for a particular viewer; Read is the
// viewer's own acknowledgement flag.
func ToResponse(a Announcement, viewerID string) Response {
	readBy := a.ReadBy
	if readBy == nil {
		readBy = []string{}
	}
	return Response{
		ID:            a.ID,
		CreatorID:     a.CreatorID,
		Content:       a.Content,
		IsPublic:      a.IsPublic,
		TargetUserIDs: a.TargetUserIDs,
		ReadBy:        readBy,
		Read:          a.IsReadBy(viewerID),
		CreatedAt:     a.CreatedAt,
	}
}
