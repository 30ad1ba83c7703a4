package loan

import (
	"time"

	"github.com/officedesk/officeops-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	ItemIDs    []string `json:"item_ids"`
	StartDate  string   `json:"start_date"`
	ReturnDate string   `json:"return_date"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.ItemIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "item_ids",
			Message: "at least one item is required",
		})
	}
	start, startOK := validator.IsValidDateTime(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid ISO8601 timestamp",
		})
	}
	end, endOK := validator.IsValidDateTime(r.ReturnDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "return_date",
			Message: "return_date must be a valid ISO8601 timestamp",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "return_date",
			Message: "return_date must be after start_date",
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
	if r.Status != StatusSuccess && r.Status != StatusRejected {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be SUCCESS or REJECTED",
		}}
	}
	return nil
}

type Response struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ItemName      string    `json:"item_name"`
	ItemIDs       []string  `json:"item_ids"`
	StartDate     time.Time `json:"start_date"`
	ReturnDate    time.Time `json:"return_date"`
	Status        Status    `json:"status"`
	DisplayStatus Status    `json:"display_status"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(r Request, now time.Time) Response {
	return Response{
		ID:            r.ID,
		UserID:        r.UserID,
		ItemName:      r.ItemName,
		ItemIDs:       r.ItemIDs,
		StartDate:     r.StartDate,
		ReturnDate:    r.ReturnDate,
		Status:        r.Status,
		DisplayStatus: r.DisplayStatus(now),
		CreatedAt:     r.CreatedAt,
	}
}
