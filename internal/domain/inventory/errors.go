package inventory

import "errors"

var (
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrCategoryNotFound = errors.New("category not found")
)
