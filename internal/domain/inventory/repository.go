package inventory

import "context"

type Repository interface {
	CreateCategory(ctx context.Context, c Category) (Category, error)
	GetCategoryByID(ctx context.Context, id string) (Category, error)
	// DeleteCategory removes the category and cascades to its items.
	// Deleting an absent category is a no-op.
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)

	CreateItem(ctx context.Context, item Item) (Item, error)
	GetItemByID(ctx context.Context, id string) (Item, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context) ([]Item, error)
}
