package memstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
	"github.com/officedesk/officeops-backend-go/internal/domain/inventory"
	"github.com/officedesk/officeops-backend-go/internal/domain/leave"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/fixtures"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
)

var testSeed = SeedConfig{
	AdminUsername: "admin",
	AdminPassword: "admin-pass",
	AdminEmail:    "admin@office.local",
}

func newTestStore(t *testing.T) (*Store, *snapshot.MemoryStore) {
	t.Helper()
	snap := snapshot.NewMemoryStore()
	s, err := New(context.Background(), snap, testSeed)
	require.NoError(t, err)
	return s, snap
}

func TestNewSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	users, err := NewUserRepository(s).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, fixtures.AdminID, users[0].ID)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, user.RoleAdmin, users[0].Role)
	assert.Equal(t, user.StatusActive, users[0].Status)

	categories, err := NewInventoryRepository(s).ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	items, err := NewInventoryRepository(s).ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestMutationsReachSnapshot(t *testing.T) {
	ctx := context.Background()
	s, snap := newTestStore(t)

	repo := NewLeaveRepository(s)
	_, err := repo.Create(ctx, leave.Request{
		ID:        "leave-1",
		UserID:    "u1",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(24 * time.Hour),
		Type:      leave.TypeAnnual,
		Status:    leave.StatusPending,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	data, ok, err := snap.Load(ctx, keyLeaves)
	require.NoError(t, err)
	require.True(t, ok)

	var persisted []leave.Request
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "leave-1", persisted[0].ID)
}

func TestReloadSeesEarlierWrites(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()

	s1, err := New(ctx, snap, testSeed)
	require.NoError(t, err)
	_, err = NewUserRepository(s1).Create(ctx, user.User{
		ID:       "u2",
		Username: "jordan",
		Email:    "jordan@office.local",
		Role:     user.RoleUser,
		Status:   user.StatusActive,
	})
	require.NoError(t, err)

	s2, err := New(ctx, snap, testSeed)
	require.NoError(t, err)
	got, err := NewUserRepository(s2).GetByUsername(ctx, "jordan")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
}

func TestRepairNormalizesLegacyRecords(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()

	legacyUsers, _ := json.Marshal([]user.User{{
		ID:       "legacy-1",
		Username: "old",
		Email:    "old@office.local",
		Role:     user.RoleUser,
		Status:   user.StatusActive,
	}})
	require.NoError(t, snap.Save(ctx, keyUsers, legacyUsers))

	legacyAnnouncements, _ := json.Marshal([]announcement.Announcement{{
		ID:        "a-1",
		CreatorID: "legacy-1",
		Content:   "hello",
		IsPublic:  true,
	}})
	require.NoError(t, snap.Save(ctx, keyAnnouncements, legacyAnnouncements))

	s, err := New(ctx, snap, testSeed)
	require.NoError(t, err)

	got, err := NewUserRepository(s).GetByID(ctx, "legacy-1")
	require.NoError(t, err)
	assert.NotNil(t, got.Permissions)
	assert.Equal(t, fixtures.DefaultAvatarURL, got.Avatar)

	a, err := NewAnnouncementRepository(s).GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.NotNil(t, a.ReadBy)
	assert.NotNil(t, a.TargetUserIDs)
}

func TestMalformedSnapshotFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()
	require.NoError(t, snap.Save(ctx, keyUsers, []byte("{not json")))

	s, err := New(ctx, snap, testSeed)
	require.NoError(t, err)

	users, err := NewUserRepository(s).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, fixtures.AdminID, users[0].ID)
}

func TestDeleteCategoryCascadesToItems(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewInventoryRepository(s)

	require.NoError(t, repo.DeleteCategory(ctx, "cat-1"))

	_, err := repo.GetCategoryByID(ctx, "cat-1")
	assert.ErrorIs(t, err, inventory.ErrCategoryNotFound)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	for _, item := range items {
		assert.NotEqual(t, "cat-1", item.CategoryID)
	}
	// cat-1 held three of the five defaults
	assert.Len(t, items, 2)
}

func TestDeleteAbsentCategoryIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewInventoryRepository(s)

	require.NoError(t, repo.DeleteCategory(ctx, "no-such-category"))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)
}

func TestLeaveListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := NewLeaveRepository(s)

	for _, id := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, leave.Request{ID: id, UserID: "u1", Status: leave.StatusPending})
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].ID)
	assert.Equal(t, "first", all[2].ID)
}
