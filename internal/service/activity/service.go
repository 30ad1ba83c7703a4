package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/activity"
	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
)

type ActivityServiceImpl struct {
	activityRepository  activity.Repository
	userRepository      user.Repository
	notificationService notification.Service
}

func NewActivityService(activityRepository activity.Repository, userRepository user.Repository, notificationService notification.Service) activity.Service {
	return &ActivityServiceImpl{
		activityRepository:  activityRepository,
		userRepository:      userRepository,
		notificationService: notificationService,
	}
}

// Create implements activity.Service.
func (s *ActivityServiceImpl) Create(ctx context.Context, creatorID string, req activity.CreateRequest) (activity.Activity, error) {
	start, _ := time.Parse(time.RFC3339, req.Start)
	end, _ := time.Parse(time.RFC3339, req.End)

	targets := req.TargetUserIDs
	if targets == nil {
		targets = []string{}
	}

	a := activity.Activity{
		ID:            uuid.NewString(),
		CreatorID:     creatorID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Start:         start,
		End:           end,
		TotalPrice:    req.TotalPrice,
		MaxPeople:     req.MaxPeople,
		Banner:        req.Banner,
		IsPublic:      req.IsPublic,
		TargetUserIDs: targets,
		Attendees:     []activity.Attendee{},
		CreatedAt:     time.Now(),
	}

	a, err := s.activityRepository.Create(ctx, a)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}

	if err := s.fanOut(ctx, a); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

// RSVP implements activity.Service. The repository applies the vote against
// the stored record, so the capacity check and the upsert are atomic.
func (s *ActivityServiceImpl) RSVP(ctx context.Context, userID, activityID string, status activity.AttendeeStatus) (activity.Activity, error) {
	return s.activityRepository.Vote(ctx, activityID, userID, status)
}

// ListVisible implements activity.Service.
func (s *ActivityServiceImpl) ListVisible(ctx context.Context, userID string) ([]activity.Activity, error) {
	all, err := s.activityRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := []activity.Activity{}
	for _, a := range all {
		if a.IsVisibleTo(userID) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// fanOut notifies every active user who can see the activity, except its
// creator.
func (s *ActivityServiceImpl) fanOut(ctx context.Context, a activity.Activity) error {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		if u.ID == a.CreatorID || !u.IsActive() || !a.IsVisibleTo(u.ID) {
			continue
		}
		if err := s.notificationService.Notify(ctx, u.ID, notification.TypeActivity,
			"New Activity", a.Title, a.ID); err != nil {
			return err
		}
	}
	return nil
}
