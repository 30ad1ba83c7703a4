package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
)

type InventoryServiceImpl struct {
	inventoryRepository inventory.Repository
}

func NewInventoryService(inventoryRepository inventory.Repository) inventory.Service {
	return &InventoryServiceImpl{inventoryRepository: inventoryRepository}
}

// AddCategory implements inventory.Service.
func (s *InventoryServiceImpl) AddCategory(ctx context.Context, req inventory.CreateCategoryRequest) (inventory.Category, error) {
	category := inventory.Category{
		ID:   uuid.NewString(),
		Name: req.Name,
	}
	return s.inventoryRepository.CreateCategory(ctx, category)
}

// DeleteCategory implements inventory.Service.
func (s *InventoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.inventoryRepository.DeleteCategory(ctx, categoryID)
}

// ListCategories implements inventory.Service.
func (s *InventoryServiceImpl) ListCategories(ctx context.Context) ([]inventory.Category, error) {
	return s.inventoryRepository.ListCategories(ctx)
}

// AddItem implements inventory.Service.
func (s *InventoryServiceImpl) AddItem(ctx context.Context, req inventory.CreateItemRequest) (inventory.Item, error) {
	if _, err := s.inventoryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return inventory.Item{}, fmt.Errorf("failed to resolve category: %w", err)
	}

	item := inventory.Item{
		ID:         uuid.NewString(),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		ImageURL:   req.ImageURL,
		Note:       req.Note,
	}
	return s.inventoryRepository.CreateItem(ctx, item)
}

// DeleteItem implements inventory.Service.
func (s *InventoryServiceImpl) DeleteItem(ctx context.Context, itemID string) error {
	return s.inventoryRepository.DeleteItem(ctx, itemID)
}

// ListItems implements inventory.Service.
func (s *InventoryServiceImpl) ListItems(ctx context.Context) ([]inventory.Item, error) {
	return s.inventoryRepository.ListItems(ctx)
}
