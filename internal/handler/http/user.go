package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/middleware"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	SetPermissions(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Me implements UserHandler.
func (h *UserHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userData, err := h.userService.Get(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToResponse(userData))
}

// UpdateMe implements UserHandler.
func (h *UserHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateMe decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userData, err := h.userService.UpdateProfile(r.Context(), middleware.UserID(r), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated", user.ToResponse(userData))
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]user.Response, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToResponse(u))
	}
	response.Success(w, out)
}

// ListAccounts implements UserHandler. It is the only surface that returns
// stored credentials and sits behind the account-view permission.
func (h *UserHandlerImpl) ListAccounts(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]user.AccountResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToAccountResponse(u))
	}
	response.Success(w, out)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userData, err := h.userService.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToResponse(userData))
}

// Approve implements UserHandler.
func (h *UserHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userData, err := h.userService.ApproveForSetup(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User approved for setup", user.ToResponse(userData))
}

// SetStatus implements UserHandler.
func (h *UserHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq user.SetStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("SetStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := statusReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userData, err := h.userService.SetStatus(r.Context(), chi.URLParam(r, "userID"), statusReq.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User status updated", user.ToResponse(userData))
}

// SetPermissions implements UserHandler.
func (h *UserHandlerImpl) SetPermissions(w http.ResponseWriter, r *http.Request) {
	var permReq user.SetPermissionsRequest

	if err := json.NewDecoder(r.Body).Decode(&permReq); err != nil {
		slog.Error("SetPermissions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := permReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userData, err := h.userService.SetPermissions(r.Context(), chi.URLParam(r, "userID"), permReq.Permissions)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User permissions updated", user.ToResponse(userData))
}
