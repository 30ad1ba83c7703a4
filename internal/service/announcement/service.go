package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
)

type AnnouncementServiceImpl struct {
	announcementRepository announcement.Repository
	userRepository         user.Repository
	notificationService    notification.Service
}

func NewAnnouncementService(announcementRepository announcement.Repository, userRepository user.Repository, notificationService notification.Service) announcement.Service {
	return &AnnouncementServiceImpl{
		announcementRepository: announcementRepository,
		userRepository:         userRepository,
		notificationService:    notificationService,
	}
}

// Create implements announcement.Service.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, creatorID string, req announcement.CreateRequest) (announcement.Announcement, error) {
	targets := req.TargetUserIDs
	if targets == nil {
		targets = []string{}
	}

	a := announcement.Announcement{
		ID:            uuid.NewString(),
		CreatorID:     creatorID,
		Content:       req.Content,
		IsPublic:      req.IsPublic,
		TargetUserIDs: targets,
		ReadBy:        []string{},
		CreatedAt:     time.Now(),
	}

	a, err := s.announcementRepository.Create(ctx, a)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := s.fanOut(ctx, a); err != nil {
		return announcement.Announcement{}, err
	}
	return a, nil
}

// Acknowledge implements announcement.Service.
func (s *AnnouncementServiceImpl) Acknowledge(ctx context.Context, userID, announcementID string) (announcement.Announcement, error) {
	return s.announcementRepository.MarkRead(ctx, announcementID, userID)
}

// Delete implements announcement.Service.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, announcementID string) error {
	return s.announcementRepository.Delete(ctx, announcementID)
}

// ListVisible implements announcement.Service.
func (s *AnnouncementServiceImpl) ListVisible(ctx context.Context, userID string) ([]announcement.Announcement, error) {
	all, err := s.announcementRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := []announcement.Announcement{}
	for _, a := range all {
		if a.IsVisibleTo(userID) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// fanOut notifies every active user who can see the announcement, except
// its creator.
func (s *AnnouncementServiceImpl) fanOut(ctx context.Context, a announcement.Announcement) error {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		if u.ID == a.CreatorID || !u.IsActive() || !a.IsVisibleTo(u.ID) {
			continue
		}
		if err := s.notificationService.Notify(ctx, u.ID, notification.TypeAnnouncement,
			"New Announcement", a.Content, a.ID); err != nil {
			return err
		}
	}
	return nil
}
