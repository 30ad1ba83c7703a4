package leave

import (
	"time"

	"github.com/officedesk/officeops-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      Type   `json:"type"`
	AllowedBy string `json:"allowed_by"`
	Comment   string `json:"comment"`
}

// Validate enforces the field rules, including that ALLOWED leave names its
// approver. The store itself accepts what it is given; this edge check is
// the only place the rule lives.
func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDateTime(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid ISO8601 timestamp",
		})
	}
	end, endOK := validator.IsValidDateTime(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid ISO8601 timestamp",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be after start_date",
		})
	}
	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown leave type",
		})
	}
	if r.Type == TypeAllowed && validator.IsEmpty(r.AllowedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_by",
			Message: "allowed_by is required for ALLOWED leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	Status Status `json:"status"`
}

func (r *DecideRequest) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		}}
	}
	return nil
}

type Response struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Type          Type      `json:"type"`
	AllowedBy     string    `json:"allowed_by,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	Status        Status    `json:"status"`
	DisplayStatus Status    `json:"display_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(r Request, now time.Time) Response {
	return Response{
		ID:            r.ID,
		UserID:        r.UserID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Type:          r.Type,
		AllowedBy:     r.AllowedBy,
		Comment:       r.Comment,
		Status:        r.Status,
		DisplayStatus: r.DisplayStatus(now),
		CreatedAt:     r.CreatedAt,
	}
}
