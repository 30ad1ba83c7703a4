package http

import (
	"net/http"

	"github.com/officedesk/officeops-backend-go/internal/domain/auth"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/middleware"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type RegistrationHandler interface {
	GenerateCode(w http.ResponseWriter, r *http.Request)
}

type RegistrationHandlerImpl struct {
	authService auth.Service
}

func NewRegistrationHandler(authService auth.Service) RegistrationHandler {
	return &RegistrationHandlerImpl{authService: authService}
}

// GenerateCode implements RegistrationHandler.
func (h *RegistrationHandlerImpl) GenerateCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.authService.GenerateCode(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration code generated", auth.CodeResponse{
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt.Unix(),
	})
}
