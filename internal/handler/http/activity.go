package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/activity"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/middleware"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	RSVP(w http.ResponseWriter, r *http.Request)
	ListVisible(w http.ResponseWriter, r *http.Request)
}

type ActivityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &ActivityHandlerImpl{activityService: activityService}
}

// Create implements ActivityHandler.
func (h *ActivityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq activity.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create activity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.activityService.Create(r.Context(), middleware.UserID(r), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Activity published", activity.ToResponse(a))
}

// RSVP implements ActivityHandler.
func (h *ActivityHandlerImpl) RSVP(w http.ResponseWriter, r *http.Request) {
	var rsvpReq activity.RSVPRequest

	if err := json.NewDecoder(r.Body).Decode(&rsvpReq); err != nil {
		slog.Error("RSVP decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := rsvpReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	a, err := h.activityService.RSVP(r.Context(), middleware.UserID(r), chi.URLParam(r, "activityID"), rsvpReq.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, activity.ToResponse(a))
}

// ListVisible implements ActivityHandler.
func (h *ActivityHandlerImpl) ListVisible(w http.ResponseWriter, r *http.Request) {
	all, err := h.activityService.ListVisible(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]activity.Response, 0, len(all))
	for _, a := range all {
		out = append(out, activity.ToResponse(a))
	}
	response.Success(w, out)
}
