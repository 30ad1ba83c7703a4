package memstore

import (
	"context"

	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
)

type inventoryRepository struct {
	s *Store
}

func NewInventoryRepository(s *Store) inventory.Repository {
	return &inventoryRepository{s: s}
}

// CreateCategory implements inventory.Repository.
func (r *inventoryRepository) CreateCategory(ctx context.Context, c inventory.Category) (inventory.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.categories = append(r.s.categories, c)
	r.s.saveLocked(ctx, keyCategories, r.s.categories)
	return c, nil
}

// GetCategoryByID implements inventory.Repository.
func (r *inventoryRepository) GetCategoryByID(ctx context.Context, id string) (inventory.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return inventory.Category{}, inventory.ErrCategoryNotFound
}

// DeleteCategory implements inventory.Repository. Items that belong to
// the category are removed in the same operation.
func (r *inventoryRepository) DeleteCategory(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.categories[:0:0]
	for _, c := range r.s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(r.s.categories) {
		return nil
	}
	r.s.categories = kept

	items := r.s.items[:0:0]
	for _, item := range r.s.items {
		if item.CategoryID != id {
			items = append(items, item)
		}
	}
	r.s.items = items

	r.s.saveLocked(ctx, keyCategories, r.s.categories)
	r.s.saveLocked(ctx, keyInventory, r.s.items)
	return nil
}

// ListCategories implements inventory.Repository.
func (r *inventoryRepository) ListCategories(ctx context.Context) ([]inventory.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]inventory.Category, len(r.s.categories))
	copy(out, r.s.categories)
	return out, nil
}

// CreateItem implements inventory.Repository.
func (r *inventoryRepository) CreateItem(ctx context.Context, item inventory.Item) (inventory.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.items = append(r.s.items, item)
	r.s.saveLocked(ctx, keyInventory, r.s.items)
	return item, nil
}

// GetItemByID implements inventory.Repository.
func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (inventory.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, item := range r.s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return inventory.Item{}, inventory.ErrItemNotFound
}

// DeleteItem implements inventory.Repository.
func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, item := range r.s.items {
		if item.ID == id {
			r.s.items = append(r.s.items[:i], r.s.items[i+1:]...)
			r.s.saveLocked(ctx, keyInventory, r.s.items)
			return nil
		}
	}
	return inventory.ErrItemNotFound
}

// ListItems implements inventory.Repository.
func (r *inventoryRepository) ListItems(ctx context.Context) ([]inventory.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]inventory.Item, len(r.s.items))
	copy(out, r.s.items)
	return out, nil
}
