package user

import (
	"context"
	"fmt"

	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepository      user.Repository
	notificationService notification.Service
}

func NewUserService(userRepository user.Repository, notificationService notification.Service) user.Service {
	return &UserServiceImpl{
		userRepository:      userRepository,
		notificationService: notificationService,
	}
}

// ApproveForSetup implements user.Service.
func (s *UserServiceImpl) ApproveForSetup(ctx context.Context, userID string) (user.User, error) {
	userData, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if userData.Status != user.StatusPendingApproval {
		return user.User{}, user.ErrInvalidStatusTransition
	}

	userData.Status = user.StatusWaitingSetup
	return s.userRepository.Update(ctx, userData)
}

// SetStatus implements user.Service.
func (s *UserServiceImpl) SetStatus(ctx context.Context, userID string, status user.Status) (user.User, error) {
	userData, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	userData.Status = status
	return s.userRepository.Update(ctx, userData)
}

// SetPermissions implements user.Service.
func (s *UserServiceImpl) SetPermissions(ctx context.Context, userID string, permissions []user.Permission) (user.User, error) {
	for _, p := range permissions {
		if !user.IsValidPermission(p) {
			return user.User{}, user.ErrInvalidPermission
		}
	}

	userData, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if permissions == nil {
		permissions = []user.Permission{}
	}
	userData.Permissions = permissions

	userData, err = s.userRepository.Update(ctx, userData)
	if err != nil {
		return user.User{}, err
	}

	if err := s.notificationService.Notify(ctx, userData.ID, notification.TypeSystem,
		"Permissions Updated",
		"Your access permissions have been updated by an administrator.", ""); err != nil {
		return user.User{}, fmt.Errorf("failed to notify user: %w", err)
	}
	return userData, nil
}

// UpdateProfile implements user.Service.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.User, error) {
	userData, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if req.Username != nil {
		userData.Username = *req.Username
	}
	if req.Password != nil {
		userData.Password = *req.Password
	}
	if req.Avatar != nil {
		userData.Avatar = *req.Avatar
	}

	return s.userRepository.Update(ctx, userData)
}

// Get implements user.Service.
func (s *UserServiceImpl) Get(ctx context.Context, userID string) (user.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	return s.userRepository.List(ctx)
}
