package response

import (
	"errors"
	"net/http"

	"github.com/officedesk/officeops-backend-go/internal/domain/activity"
	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
	"github.com/officedesk/officeops-backend-go/internal/domain/auth"
	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
	"github.com/officedesk/officeops-backend-go/internal/domain/leave"
	"github.com/officedesk/officeops-backend-go/internal/domain/loan"
	"github.com/officedesk/officeops-backend-go/internal/domain/registration"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var itemConflict *loan.ItemConflictError
	if errors.As(err, &itemConflict) {
		Conflict(w, itemConflict.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountNotActive):
		Forbidden(w, "Account is not yet activated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "No account awaiting setup for this email")

	// Registration domain errors
	case errors.Is(err, registration.ErrInvalidOrExpiredCode):
		BadRequest(w, "Registration code is invalid or has expired", nil)
	case errors.Is(err, registration.ErrEmailAlreadyUsed):
		Conflict(w, "Email already in use")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInvalidStatusTransition):
		Conflict(w, "User is not in a state that allows this transition")
	case errors.Is(err, user.ErrInvalidStatus):
		BadRequest(w, "Invalid user status", nil)
	case errors.Is(err, user.ErrInvalidPermission):
		BadRequest(w, "Unknown permission", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrPermissionRequired):
		Forbidden(w, "Missing required permission")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Leave decision must be APPROVED or REJECTED", nil)

	// Loan domain errors
	case errors.Is(err, loan.ErrRequestNotFound):
		NotFound(w, "Loan request not found")
	case errors.Is(err, loan.ErrAlreadyProcessed):
		Conflict(w, "Loan request already processed")
	case errors.Is(err, loan.ErrInvalidDecision):
		BadRequest(w, "Loan decision must be SUCCESS or REJECTED", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Activity domain errors
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Activity not found")
	case errors.Is(err, activity.ErrActivityFull):
		Conflict(w, "Activity has reached its maximum attendance")

	// Inventory domain errors
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Inventory item not found")
	case errors.Is(err, inventory.ErrCategoryNotFound):
		NotFound(w, "Category not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
