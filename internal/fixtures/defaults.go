// Package fixtures holds the built-in dataset the store seeds itself from
// when a collection has no persisted snapshot yet.
package fixtures

import (
	"time"

	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
)

const (
	AdminID = "admin-001"

	// DefaultAvatarURL is assigned to accounts created without an avatar
	DefaultAvatarURL = "https://picsum.photos/200"
)

// DefaultAdmin builds the single implicit admin account. Credentials come
// from configuration so a deployment never ships with a hardcoded password.
func DefaultAdmin(username, password, email string) user.User {
	return user.User{
		ID:          AdminID,
		Username:    username,
		Password:    password,
		Email:       email,
		Avatar:      DefaultAvatarURL,
		Role:        user.RoleAdmin,
		Permissions: user.AllPermissions(),
		Status:      user.StatusActive,
		JoinedAt:    time.Now(),
	}
}

// DefaultCategories returns the three starter equipment categories
func DefaultCategories() []inventory.Category {
	return []inventory.Category{
		{ID: "cat-1", Name: "Electronics"},
		{ID: "cat-2", Name: "Stationery"},
		{ID: "cat-3", Name: "Furniture"},
	}
}

// DefaultInventory returns the five sample items referencing the starter
// categories
func DefaultInventory() []inventory.Item {
	return []inventory.Item{
		{ID: "item-1", Name: `MacBook Pro 16"`, CategoryID: "cat-1", ImageURL: "https://images.unsplash.com/photo-1517336714731-489689fd1ca4?w=600&q=80"},
		{ID: "item-2", Name: "Canon 4K Projector", CategoryID: "cat-1", ImageURL: "https://images.unsplash.com/photo-1517430529647-90c851885834?w=600&q=80"},
		{ID: "item-3", Name: "Herman Miller Chair", CategoryID: "cat-3", ImageURL: "https://images.unsplash.com/photo-1505843490538-5133c6c7d0e1?w=600&q=80"},
		{ID: "item-4", Name: "Whiteboard Marker Set", CategoryID: "cat-2", ImageURL: "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?w=600&q=80"},
		{ID: "item-5", Name: "Sony Alpha Camera", CategoryID: "cat-1", ImageURL: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=600&q=80"},
	}
}
