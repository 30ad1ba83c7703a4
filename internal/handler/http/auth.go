package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/officedesk/officeops-backend-go/internal/domain/auth"
	"github.com/officedesk/officeops-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	CheckSetup(w http.ResponseWriter, r *http.Request)
	CompleteSetup(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "username", loginReq.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.Register(r.Context(), registerReq); err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration received and awaiting approval", nil)
}

// CheckSetup implements AuthHandler.
func (a *AuthHandlerImpl) CheckSetup(w http.ResponseWriter, r *http.Request) {
	var checkReq auth.CheckSetupRequest

	if err := json.NewDecoder(r.Body).Decode(&checkReq); err != nil {
		slog.Error("CheckSetup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := checkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ready, err := a.authService.CheckEmailForSetup(r.Context(), checkReq.Email)
	if err != nil {
		slog.Error("CheckSetup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth.CheckSetupResponse{ReadyForSetup: ready})
}

// CompleteSetup implements AuthHandler.
func (a *AuthHandlerImpl) CompleteSetup(w http.ResponseWriter, r *http.Request) {
	var setupReq auth.SetupRequest

	if err := json.NewDecoder(r.Body).Decode(&setupReq); err != nil {
		slog.Error("CompleteSetup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := setupReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := a.authService.CompleteSetup(r.Context(), setupReq)
	if err != nil {
		slog.Error("CompleteSetup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account activated", tokens)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		slog.Error("RefreshToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if refreshReq.RefreshToken == "" {
		response.BadRequest(w, "refresh_token is required", nil)
		return
	}

	token, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var logoutReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&logoutReq); err != nil {
		slog.Error("Logout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if logoutReq.RefreshToken == "" {
		response.BadRequest(w, "refresh_token is required", nil)
		return
	}

	if err := a.authService.Logout(r.Context(), logoutReq.RefreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}
