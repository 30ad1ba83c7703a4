package memstore

import (
	"context"
	"strings"

	"github.com/officedesk/officeops-backend-go/internal/domain/user"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) user.Repository {
	return &userRepository{s: s}
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// GetByUsername implements user.Repository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// GetByEmail implements user.Repository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	target := strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.s.users {
		if strings.ToLower(u.Email) == target {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// ExistsByEmail implements user.Repository.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	target := strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.s.users {
		if strings.ToLower(u.Email) == target {
			return true, nil
		}
	}
	return false, nil
}

// List implements user.Repository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]user.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}

// ListByRole implements user.Repository.
func (r *userRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []user.User
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if newUser.Permissions == nil {
		newUser.Permissions = []user.Permission{}
	}
	r.s.users = append(r.s.users, newUser)
	r.s.saveLocked(ctx, keyUsers, r.s.users)
	return newUser, nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, updated user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, u := range r.s.users {
		if u.ID == updated.ID {
			r.s.users[i] = updated
			r.s.saveLocked(ctx, keyUsers, r.s.users)
			return updated, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
