// Package memstore is the single source of truth for every entity
// collection. State lives in memory behind one lock; after each mutation
// the touched collection is serialized and handed to the snapshot store so
// the durable copy always reflects the latest committed state before the
// operation returns.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/officedesk/officeops-backend-go/internal/domain/activity"
	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
	"github.com/officedesk/officeops-backend-go/internal/domain/leave"
	"github.com/officedesk/officeops-backend-go/internal/domain/loan"
	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/registration"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/fixtures"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
)

// Snapshot keys, one per collection. The set matches what the frontend's
// local cache historically used, minus the session (sessions are tokens
// now, not stored state).
const (
	keyUsers         = "users"
	keyCodes         = "codes"
	keyLeaves        = "leaves"
	keyLoans         = "loans"
	keyAnnouncements = "announcements"
	keyActivities    = "activities"
	keyNotifications = "notifications"
	keyInventory     = "inventory"
	keyCategories    = "categories"
)

// SeedConfig carries the credentials for the default admin created when no
// user snapshot exists yet.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

type Store struct {
	mu   sync.RWMutex
	snap snapshot.Store

	users         []user.User
	codes         []registration.Code
	leaves        []leave.Request
	loans         []loan.Request
	announcements []announcement.Announcement
	activities    []activity.Activity
	notifications []notification.Notification
	categories    []inventory.Category
	items         []inventory.Item
}

// New seeds every collection from the snapshot store, repairing records
// written by older schema versions, and falls back to the built-in default
// dataset for collections that were never persisted.
func New(ctx context.Context, snap snapshot.Store, seed SeedConfig) (*Store, error) {
	s := &Store{snap: snap}

	if err := loadCollection(ctx, snap, keyUsers, &s.users, func() []user.User {
		return []user.User{fixtures.DefaultAdmin(seed.AdminUsername, seed.AdminPassword, seed.AdminEmail)}
	}); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyCodes, &s.codes, empty[registration.Code]); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyLeaves, &s.leaves, empty[leave.Request]); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyLoans, &s.loans, empty[loan.Request]); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyAnnouncements, &s.announcements, empty[announcement.Announcement]); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyActivities, &s.activities, empty[activity.Activity]); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyNotifications, &s.notifications, empty[notification.Notification]); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyCategories, &s.categories, fixtures.DefaultCategories); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, snap, keyInventory, &s.items, fixtures.DefaultInventory); err != nil {
		return nil, err
	}

	s.repair()
	return s, nil
}

func empty[T any]() []T {
	return []T{}
}

// loadCollection reads one collection blob. A missing key seeds the
// defaults; a blob that no longer parses is treated the same way rather
// than failing startup.
func loadCollection[T any](ctx context.Context, snap snapshot.Store, key string, dst *[]T, def func() []T) error {
	data, ok, err := snap.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load collection %q: %w", key, err)
	}
	if !ok {
		*dst = def()
		return nil
	}

	var loaded []T
	if err := json.Unmarshal(data, &loaded); err != nil {
		slog.Warn("discarding malformed snapshot", "collection", key, "error", err)
		*dst = def()
		return nil
	}
	if loaded == nil {
		loaded = def()
	}
	*dst = loaded
	return nil
}

// repair normalizes records persisted by older schema versions: absent
// permission sets and read-sets become empty sets, absent avatars get the
// default.
func (s *Store) repair() {
	for i := range s.users {
		if s.users[i].Permissions == nil {
			s.users[i].Permissions = []user.Permission{}
		}
		if s.users[i].Avatar == "" {
			s.users[i].Avatar = fixtures.DefaultAvatarURL
		}
	}
	for i := range s.announcements {
		if s.announcements[i].ReadBy == nil {
			s.announcements[i].ReadBy = []string{}
		}
		if s.announcements[i].TargetUserIDs == nil {
			s.announcements[i].TargetUserIDs = []string{}
		}
	}
	for i := range s.activities {
		if s.activities[i].Attendees == nil {
			s.activities[i].Attendees = []activity.Attendee{}
		}
		if s.activities[i].TargetUserIDs == nil {
			s.activities[i].TargetUserIDs = []string{}
		}
	}
	for i := range s.loans {
		if s.loans[i].ItemIDs == nil {
			s.loans[i].ItemIDs = []string{}
		}
	}
}

// saveLocked snapshots one collection. Callers hold the write lock. A
// failed write is logged and the mutation stands; the snapshot is a best
// effort cache, not a transaction log.
func (s *Store) saveLocked(ctx context.Context, key string, collection interface{}) {
	data, err := json.Marshal(collection)
	if err != nil {
		slog.Error("failed to serialize collection", "collection", key, "error", err)
		return
	}
	if err := s.snap.Save(ctx, key, data); err != nil {
		slog.Error("failed to persist collection snapshot", "collection", key, "error", err)
	}
}
