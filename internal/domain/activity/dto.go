package activity

import (
	"time"

	"github.com/officedesk/officeops-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	TotalPrice    string   `json:"total_price"`
	MaxPeople     int      `json:"max_people"`
	Banner        string   `json:"banner"`
	IsPublic      bool     `json:"is_public"`
	TargetUserIDs []string `json:"target_user_ids"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	start, startOK := validator.IsValidDateTime(r.Start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a valid ISO8601 timestamp",
		})
	}
	end, endOK := validator.IsValidDateTime(r.End)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a valid ISO8601 timestamp",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be after start",
		})
	}
	if r.MaxPeople <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_people",
			Message: "max_people must be positive",
		})
	}
	if !r.IsPublic && len(r.TargetUserIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target_user_ids",
			Message: "a targeted activity needs at least one recipient",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RSVPRequest struct {
	Status AttendeeStatus `json:"status"`
}

func (r *RSVPRequest) Validate() error {
	if r.Status != AttendeeAccepted && r.Status != AttendeeRejected {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be ACCEPTED or REJECTED",
		}}
	}
	return nil
}

type Response struct {
	ID            string     `json:"id"`
	CreatorID     string     `json:"creator_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	TotalPrice    string     `json:"total_price"`
	MaxPeople     int        `json:"max_people"`
	Banner        string     `json:"banner,omitempty"`
	IsPublic      bool       `json:"is_public"`
	TargetUserIDs []string   `json:"target_user_ids,omitempty"`
	Attendees     []Attendee `json:"attendees"`
	AcceptedCount int        `json:"accepted_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToResponse(a Activity) Response {
	attendees := a.Attendees
	if attendees == nil {
		attendees = []Attendee{}
	}
	return Response{
		ID:            a.ID,
		CreatorID:     a.CreatorID,
		Title:         a.Title,
		Description:   a.Description,
		Location:      a.Location,
		Start:         a.Start,
		End:           a.End,
		TotalPrice:    a.TotalPrice,
		MaxPeople:     a.MaxPeople,
		Banner:        a.Banner,
		IsPublic:      a.IsPublic,
		TargetUserIDs: a.TargetUserIDs,
		Attendees:     attendees,
		AcceptedCount: a.AcceptedCount(),
		CreatedAt:     a.CreatedAt,
	}
}
