package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/auth"
	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/registration"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/fixtures"
	"github.com/officedesk/officeops-backend-go/internal/pkg/jwt"
)

const (
	codeCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
	codeValidity = 30 * time.Minute
)

type AuthServiceImpl struct {
	userRepository      user.Repository
	codeRepository      registration.Repository
	jwtService          jwt.Service
	notificationService notification.Service
}

func NewAuthService(userRepository user.Repository, codeRepository registration.Repository, jwtService jwt.Service, notificationService notification.Service) auth.Service {
	return &AuthServiceImpl{
		userRepository:      userRepository,
		codeRepository:      codeRepository,
		jwtService:          jwtService,
		notificationService: notificationService,
	}
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.userRepository.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// Exact credential match against the stored value.
	if userData.Password != req.Password {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !userData.CanLogin() {
		return auth.TokenResponse{}, auth.ErrAccountNotActive
	}

	return a.issueTokens(userData)
}

// Register implements auth.Service.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	now := time.Now()

	_, ok, err := a.codeRepository.FindValid(ctx, strings.ToUpper(strings.TrimSpace(req.Code)), now)
	if err != nil {
		return fmt.Errorf("failed to look up registration code: %w", err)
	}
	if !ok {
		return registration.ErrInvalidOrExpiredCode
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := a.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return registration.ErrEmailAlreadyUsed
	}

	newUser := user.User{
		ID:          uuid.NewString(),
		Username:    fmt.Sprintf("User%04d", now.Unix()%10000),
		Email:       email,
		Avatar:      fixtures.DefaultAvatarURL,
		Role:        user.RoleUser,
		Permissions: []user.Permission{},
		Status:      user.StatusPendingApproval,
		JoinedAt:    now,
	}
	if _, err := a.userRepository.Create(ctx, newUser); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return a.notificationService.NotifyAdmins(ctx,
		"New Registration",
		fmt.Sprintf("%s has registered and is waiting for approval.", email))
}

// CheckEmailForSetup implements auth.Service.
func (a *AuthServiceImpl) CheckEmailForSetup(ctx context.Context, email string) (bool, error) {
	userData, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to get user by email: %w", err)
	}
	return userData.Status == user.StatusWaitingSetup, nil
}

// CompleteSetup implements auth.Service.
func (a *AuthServiceImpl) CompleteSetup(ctx context.Context, req auth.SetupRequest) (auth.TokenResponse, error) {
	userData, err := a.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData.Status != user.StatusWaitingSetup {
		return auth.TokenResponse{}, user.ErrInvalidStatusTransition
	}

	userData.Username = req.Username
	userData.Password = req.Password
	if req.Avatar != "" {
		userData.Avatar = req.Avatar
	}
	userData.Status = user.StatusActive

	userData, err = a.userRepository.Update(ctx, userData)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to activate user: %w", err)
	}

	return a.issueTokens(userData)
}

// GenerateCode implements auth.Service.
func (a *AuthServiceImpl) GenerateCode(ctx context.Context, createdBy string) (registration.Code, error) {
	value, err := randomCode(codeLength)
	if err != nil {
		return registration.Code{}, fmt.Errorf("failed to generate code: %w", err)
	}

	code := registration.Code{
		Code:      value,
		ExpiresAt: time.Now().Add(codeValidity),
		CreatedBy: createdBy,
	}
	return a.codeRepository.Create(ctx, code)
}

// RefreshToken implements auth.Service.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims := token.PrivateClaims()
	if typ, _ := claims["type"].(string); typ != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresIn, err := a.jwtService.GenerateAccessToken(userData)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresIn,
	}, nil
}

// Logout implements auth.Service.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresIn, err := a.jwtService.GenerateAccessToken(userData)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresIn, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
		User:                  user.ToResponse(userData),
	}, nil
}

func randomCode(length int) (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[n.Int64()])
	}
	return sb.String(), nil
}
