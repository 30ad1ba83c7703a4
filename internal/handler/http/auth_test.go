package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/pkg/jwt"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
	"github.com/officedesk/officeops-backend-go/internal/repository/memstore"
	activityService "github.com/officedesk/officeops-backend-go/internal/service/activity"
	announcementService "github.com/officedesk/officeops-backend-go/internal/service/announcement"
	authService "github.com/officedesk/officeops-backend-go/internal/service/auth"
	inventoryService "github.com/officedesk/officeops-backend-go/internal/service/inventory"
	leaveService "github.com/officedesk/officeops-backend-go/internal/service/leave"
	loanService "github.com/officedesk/officeops-backend-go/internal/service/loan"
	notificationService "github.com/officedesk/officeops-backend-go/internal/service/notification"
	userService "github.com/officedesk/officeops-backend-go/internal/service/user"
)

const (
	testSecret   = "test-secret-key-for-jwt"
	testPassword = "admin-pass"
)

func newTestServer(t *testing.T) (*httptest.Server, *memstore.Store) {
	t.Helper()
	store, err := memstore.New(context.Background(), snapshot.NewMemoryStore(), memstore.SeedConfig{
		AdminUsername: "admin",
		AdminPassword: testPassword,
		AdminEmail:    "admin@office.local",
	})
	require.NoError(t, err)

	userRepo := memstore.NewUserRepository(store)
	codeRepo := memstore.NewRegistrationRepository(store)
	leaveRepo := memstore.NewLeaveRepository(store)
	loanRepo := memstore.NewLoanRepository(store)
	announcementRepo := memstore.NewAnnouncementRepository(store)
	activityRepo := memstore.NewActivityRepository(store)
	inventoryRepo := memstore.NewInventoryRepository(store)
	notificationRepo := memstore.NewNotificationRepository(store)

	jwtSvc := jwt.NewJWTService(testSecret, "1h", "24h")
	notifSvc := notificationService.NewNotificationService(notificationRepo, userRepo)
	authSvc := authService.NewAuthService(userRepo, codeRepo, jwtSvc, notifSvc)
	userSvc := userService.NewUserService(userRepo, notifSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notifSvc)
	loanSvc := loanService.NewLoanService(loanRepo, inventoryRepo, notifSvc)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, userRepo, notifSvc)
	activitySvc := activityService.NewActivityService(activityRepo, userRepo, notifSvc)
	inventorySvc := inventoryService.NewInventoryService(inventoryRepo)

	router := NewRouter(jwtSvc, "test", Handlers{
		Auth:         NewAuthHandler(authSvc),
		Registration: NewRegistrationHandler(authSvc),
		User:         NewUserHandler(userSvc),
		Leave:        NewLeaveHandler(leaveSvc),
		Loan:         NewLoanHandler(loanSvc),
		Announcement: NewAnnouncementHandler(announcementSvc),
		Activity:     NewActivityHandler(activitySvc),
		Inventory:    NewInventoryHandler(inventorySvc),
		Notification: NewNotificationHandler(notifSvc),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func loginAs(t *testing.T, server *httptest.Server, username, password string) string {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	return tokens.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	token := loginAs(t, server, "admin", testPassword)
	assert.NotEmpty(t, token)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	server, _ := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	server, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeEndpointOmitsPassword(t *testing.T) {
	server, _ := newTestServer(t)
	token := loginAs(t, server, "admin", testPassword)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	assert.Equal(t, "admin", raw["username"])
	_, hasPassword := raw["password"]
	assert.False(t, hasPassword)
}

func TestPermissionGateOnLeaveDecisions(t *testing.T) {
	ctx := context.Background()
	server, store := newTestServer(t)

	// a plain active user without the leave-approval grant
	_, err := memstore.NewUserRepository(store).Create(ctx, user.User{
		ID:       "u1",
		Username: "plain",
		Password: "secret123",
		Email:    "plain@office.local",
		Role:     user.RoleUser,
		Status:   user.StatusActive,
	})
	require.NoError(t, err)

	token := loginAs(t, server, "plain", "secret123")

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/v1/leaves", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// own submissions are always allowed
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/leaves", token, map[string]interface{}{
		"start_date": "2024-02-01T00:00:00Z",
		"end_date":   "2024-02-03T00:00:00Z",
		"type":       "ANNUAL",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// admin passes the gate
	adminToken := loginAs(t, server, "admin", testPassword)
	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/v1/leaves", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRefreshTokenFlow(t *testing.T) {
	server, _ := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// logging out revokes the refresh token
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/logout", "", map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRequiresRefreshToken(t *testing.T) {
	server, _ := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/logout", "", map[string]string{
		"refresh_token": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestValidationErrorsReturn422(t *testing.T) {
	server, _ := newTestServer(t)
	token := loginAs(t, server, "admin", testPassword)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/leaves", token, map[string]interface{}{
		"start_date": "not-a-date",
		"end_date":   "2024-02-03T00:00:00Z",
		"type":       "ANNUAL",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestLoanConflictReturns409(t *testing.T) {
	server, _ := newTestServer(t)
	token := loginAs(t, server, "admin", testPassword)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/loans", token, map[string]interface{}{
		"item_ids":    []string{"item-1"},
		"start_date":  "2024-01-10T09:00:00Z",
		"return_date": "2024-01-10T18:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/loans", token, map[string]interface{}{
		"item_ids":    []string{"item-1"},
		"start_date":  "2024-01-10T12:00:00Z",
		"return_date": "2024-01-10T15:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}
