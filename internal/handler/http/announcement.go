package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/middleware"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListVisible(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.Service
}

func NewAnnouncementHandler(announcementService announcement.Service) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq announcement.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	viewerID := middleware.UserID(r)
	a, err := h.announcementService.Create(r.Context(), viewerID, createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Announcement published", announcement.ToResponse(a, viewerID))
}

// Acknowledge implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r)
	a, err := h.announcementService.Acknowledge(r.Context(), viewerID, chi.URLParam(r, "announcementID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, announcement.ToResponse(a, viewerID))
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementService.Delete(r.Context(), chi.URLParam(r, "announcementID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement deleted", nil)
}

// ListVisible implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) ListVisible(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r)
	all, err := h.announcementService.ListVisible(r.Context(), viewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]announcement.Response, 0, len(all))
	for _, a := range all {
		out = append(out, announcement.ToResponse(a, viewerID))
	}
	response.Success(w, out)
}
