package user

import (
	"time"

	"github.com/officedesk/officeops-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil {
		if validator.IsEmpty(*r.Username) {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username must not be empty",
			})
		} else if !validator.IsValidUsername(*r.Username) {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username must be 3-50 characters of letters, numbers, dots, underscores, or hyphens",
			})
		}
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	Status Status `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	switch r.Status {
	case StatusPendingApproval, StatusWaitingSetup, StatusActive:
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "status",
		Message: "status must be one of PENDING_APPROVAL, WAITING_SETUP, ACTIVE",
	}}
}

type SetPermissionsRequest struct {
	Permissions []Permission `json:"permissions"`
}

func (r *SetPermissionsRequest) Validate() error {
	var errs validator.ValidationErrors
	for _, p := range r.Permissions {
		if !IsValidPermission(p) {
			errs = append(errs, validator.ValidationError{
				Field:   "permissions",
				Message: "unknown permission: " + string(p),
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Response is the user payload returned to its owner and to listings.
// Credentials never leave the store through it.
type Response struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Avatar      string       `json:"avatar"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
	Status      Status       `json:"status"`
	JoinedAt    time.Time    `json:"joined_at"`
}

// AccountResponse extends Response with the stored credential. Only the
// account-view surface returns it; the store keeps passwords in the clear.
type AccountResponse struct {
	Response
	Password string `json:"password"`
}

func ToResponse(u User) Response {
	perms := u.Permissions
	if perms == nil {
		perms = []Permission{}
	}
	return Response{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Avatar:      u.Avatar,
		Role:        u.Role,
		Permissions: perms,
		Status:      u.Status,
		JoinedAt:    u.JoinedAt,
	}
}

func ToAccountResponse(u User) AccountResponse {
	return AccountResponse{
		Response: ToResponse(u),
		Password: u.Password,
	}
}
