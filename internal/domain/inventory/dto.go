package inventory

import "github.com/officedesk/officeops-backend-go/internal/pkg/validator"

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r *CreateCategoryRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type CreateItemRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	ImageURL   string `json:"image_url"`
	Note       string `json:"note"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
