package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/leave"
	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
)

type LeaveServiceImpl struct {
	leaveRepository     leave.Repository
	notificationService notification.Service
}

func NewLeaveService(leaveRepository leave.Repository, notificationService notification.Service) leave.Service {
	return &LeaveServiceImpl{
		leaveRepository:     leaveRepository,
		notificationService: notificationService,
	}
}

// Submit implements leave.Service.
func (s *LeaveServiceImpl) Submit(ctx context.Context, userID string, req leave.CreateRequest) (leave.Request, error) {
	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	request := leave.Request{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Type:      req.Type,
		AllowedBy: req.AllowedBy,
		Comment:   req.Comment,
		Status:    leave.StatusPending,
		CreatedAt: time.Now(),
	}

	request, err := s.leaveRepository.Create(ctx, request)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if err := s.notificationService.NotifyAdmins(ctx,
		"New Leave Request",
		fmt.Sprintf("A new %s leave request is waiting for review.", request.Type)); err != nil {
		return leave.Request{}, err
	}
	return request, nil
}

// Decide implements leave.Service.
func (s *LeaveServiceImpl) Decide(ctx context.Context, requestID string, status leave.Status) (leave.Request, error) {
	if status != leave.StatusApproved && status != leave.StatusRejected {
		return leave.Request{}, leave.ErrInvalidDecision
	}

	// The repository checks the stored status and writes under one lock.
	request, err := s.leaveRepository.Decide(ctx, requestID, status)
	if err != nil {
		return leave.Request{}, err
	}

	outcome := "approved"
	if status == leave.StatusRejected {
		outcome = "rejected"
	}
	if err := s.notificationService.Notify(ctx, request.UserID, notification.TypeLeave,
		"Leave Request "+string(status),
		fmt.Sprintf("Your %s leave request has been %s.", request.Type, outcome),
		request.ID); err != nil {
		return leave.Request{}, err
	}
	return request, nil
}

// ListAll implements leave.Service.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.Request, error) {
	return s.leaveRepository.List(ctx)
}

// ListByUser implements leave.Service.
func (s *LeaveServiceImpl) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	return s.leaveRepository.ListByUser(ctx, userID)
}
