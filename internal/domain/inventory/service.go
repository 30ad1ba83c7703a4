package inventory

import "context"

type Service interface {
	AddCategory(ctx context.Context, req CreateCategoryRequest) (Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	ListCategories(ctx context.Context) ([]Category, error)

	AddItem(ctx context.Context, req CreateItemRequest) (Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	ListItems(ctx context.Context) ([]Item, error)
}
