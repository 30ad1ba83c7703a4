package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
	"github.com/officedesk/officeops-backend-go/internal/domain/loan"
	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
)

type LoanServiceImpl struct {
	loanRepository      loan.Repository
	inventoryRepository inventory.Repository
	notificationService notification.Service
}

func NewLoanService(loanRepository loan.Repository, inventoryRepository inventory.Repository, notificationService notification.Service) loan.Service {
	return &LoanServiceImpl{
		loanRepository:      loanRepository,
		inventoryRepository: inventoryRepository,
		notificationService: notificationService,
	}
}

// Submit implements loan.Service.
func (s *LoanServiceImpl) Submit(ctx context.Context, userID string, req loan.CreateRequest) (loan.Request, error) {
	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	returnDate, _ := time.Parse(time.RFC3339, req.ReturnDate)

	request := loan.Request{
		ID:         uuid.NewString(),
		UserID:     userID,
		ItemName:   s.summarizeItems(ctx, req.ItemIDs),
		ItemIDs:    req.ItemIDs,
		StartDate:  startDate,
		ReturnDate: returnDate,
		Status:     loan.StatusPending,
		CreatedAt:  time.Now(),
	}

	// The repository runs the conflict scan and the insert atomically.
	request, err := s.loanRepository.CreateIfAvailable(ctx, request)
	if err != nil {
		var conflict *loan.ItemConflictError
		if errors.As(err, &conflict) {
			return loan.Request{}, err
		}
		return loan.Request{}, fmt.Errorf("failed to create loan request: %w", err)
	}

	if err := s.notificationService.NotifyAdmins(ctx,
		"New Borrow Request",
		fmt.Sprintf("A new borrow request for %s is waiting for review.", request.ItemName)); err != nil {
		return loan.Request{}, err
	}
	return request, nil
}

// Decide implements loan.Service.
func (s *LoanServiceImpl) Decide(ctx context.Context, requestID string, status loan.Status) (loan.Request, error) {
	if status != loan.StatusSuccess && status != loan.StatusRejected {
		return loan.Request{}, loan.ErrInvalidDecision
	}

	request, err := s.loanRepository.Decide(ctx, requestID, status)
	if err != nil {
		return loan.Request{}, err
	}

	outcome := "approved"
	if status == loan.StatusRejected {
		outcome = "rejected"
	}
	if err := s.notificationService.Notify(ctx, request.UserID, notification.TypeLoan,
		"Borrow Request "+string(status),
		fmt.Sprintf("Your borrow request for %s has been %s.", request.ItemName, outcome),
		request.ID); err != nil {
		return loan.Request{}, err
	}
	return request, nil
}

// ListAll implements loan.Service.
func (s *LoanServiceImpl) ListAll(ctx context.Context) ([]loan.Request, error) {
	return s.loanRepository.List(ctx)
}

// ListByUser implements loan.Service.
func (s *LoanServiceImpl) ListByUser(ctx context.Context, userID string) ([]loan.Request, error) {
	return s.loanRepository.ListByUser(ctx, userID)
}

func (s *LoanServiceImpl) itemName(ctx context.Context, itemID string) string {
	item, err := s.inventoryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		return itemID
	}
	return item.Name
}

func (s *LoanServiceImpl) summarizeItems(ctx context.Context, itemIDs []string) string {
	names := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		names = append(names, s.itemName(ctx, id))
	}
	return strings.Join(names, ", ")
}
