package memstore

import (
	"context"
	"time"

	"github.com/officedesk/officeops-backend-go/internal/domain/registration"
)

type registrationRepository struct {
	s *Store
}

func NewRegistrationRepository(s *Store) registration.Repository {
	return &registrationRepository{s: s}
}

// Create implements registration.Repository.
func (r *registrationRepository) Create(ctx context.Context, code registration.Code) (registration.Code, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.codes = append(r.s.codes, code)
	r.s.saveLocked(ctx, keyCodes, r.s.codes)
	return code, nil
}

// FindValid implements registration.Repository.
func (r *registrationRepository) FindValid(ctx context.Context, code string, now time.Time) (registration.Code, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.codes {
		if c.Code == code && c.IsValid(now) {
			return c, true, nil
		}
	}
	return registration.Code{}, false, nil
}

// List implements registration.Repository.
func (r *registrationRepository) List(ctx context.Context) ([]registration.Code, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]registration.Code, len(r.s.codes))
	copy(out, r.s.codes)
	return out, nil
}
