package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/fixtures"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
	"github.com/officedesk/officeops-backend-go/internal/repository/memstore"
)

func newNotificationTestEnv(t *testing.T) (notification.Service, *memstore.Store) {
	t.Helper()
	store, err := memstore.New(context.Background(), snapshot.NewMemoryStore(), memstore.SeedConfig{
		AdminUsername: "admin",
		AdminPassword: "admin-pass",
		AdminEmail:    "admin@office.local",
	})
	require.NoError(t, err)

	users := memstore.NewUserRepository(store)
	notifications := memstore.NewNotificationRepository(store)
	return NewNotificationService(notifications, users), store
}

func TestNotifyCreatesUnreadNotification(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationTestEnv(t)

	err := svc.Notify(ctx, "u1", notification.TypeLeave, "Title", "Message", "related-1")
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].IsRead)
	assert.Equal(t, "related-1", mine[0].RelatedID)
	assert.NotEmpty(t, mine[0].ID)
}

func TestNotifyAdminsReachesEveryAdmin(t *testing.T) {
	ctx := context.Background()
	svc, store := newNotificationTestEnv(t)

	_, err := memstore.NewUserRepository(store).Create(ctx, user.User{
		ID: "admin-2", Username: "second", Role: user.RoleAdmin, Status: user.StatusActive,
	})
	require.NoError(t, err)
	_, err = memstore.NewUserRepository(store).Create(ctx, user.User{
		ID: "u1", Username: "regular", Role: user.RoleUser, Status: user.StatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, svc.NotifyAdmins(ctx, "Heads up", "Something happened"))

	for _, adminID := range []string{fixtures.AdminID, "admin-2"} {
		got, err := svc.ListByUser(ctx, adminID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}

	regular, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, regular)
}

func TestMarkAllReadIsScopedToUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationTestEnv(t)

	require.NoError(t, svc.Notify(ctx, "u1", notification.TypeSystem, "A", "a", ""))
	require.NoError(t, svc.Notify(ctx, "u1", notification.TypeSystem, "B", "b", ""))
	require.NoError(t, svc.Notify(ctx, "u2", notification.TypeSystem, "C", "c", ""))

	require.NoError(t, svc.MarkAllRead(ctx, "u1"))

	mine, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	for _, n := range mine {
		assert.True(t, n.IsRead)
	}

	other, err := svc.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.False(t, other[0].IsRead)
}

func TestListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationTestEnv(t)

	require.NoError(t, svc.Notify(ctx, "u1", notification.TypeSystem, "first", "", ""))
	require.NoError(t, svc.Notify(ctx, "u1", notification.TypeSystem, "second", "", ""))

	mine, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "second", mine[0].Title)
}
