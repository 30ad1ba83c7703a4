package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/officeops-backend-go/internal/domain/loan"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/middleware"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type LoanHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type LoanHandlerImpl struct {
	loanService loan.Service
}

func NewLoanHandler(loanService loan.Service) LoanHandler {
	return &LoanHandlerImpl{loanService: loanService}
}

// Submit implements LoanHandler.
func (h *LoanHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var createReq loan.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Submit loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.loanService.Submit(r.Context(), middleware.UserID(r), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Borrow request submitted", loan.ToResponse(request, time.Now()))
}

// Decide implements LoanHandler.
func (h *LoanHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decideReq loan.DecideRequest

	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := decideReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.loanService.Decide(r.Context(), chi.URLParam(r, "requestID"), decideReq.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Borrow request processed", loan.ToResponse(request, time.Now()))
}

// ListAll implements LoanHandler.
func (h *LoanHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.loanService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toLoanResponses(requests))
}

// ListMine implements LoanHandler.
func (h *LoanHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.loanService.ListByUser(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toLoanResponses(requests))
}

func toLoanResponses(requests []loan.Request) []loan.Response {
	now := time.Now()
	out := make([]loan.Response, 0, len(requests))
	for _, req := range requests {
		out = append(out, loan.ToResponse(req, now))
	}
	return out
}
