package announcement

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officedesk/officeops-backend-go/internal/domain/announcement"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/fixtures"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
	"github.com/officedesk/officeops-backend-go/internal/repository/memstore"
	notificationService "github.com/officedesk/officeops-backend-go/internal/service/notification"
)

func newAnnouncementTestEnv(t *testing.T) (announcement.Service, *memstore.Store) {
	t.Helper()
	store, err := memstore.New(context.Background(), snapshot.NewMemoryStore(), memstore.SeedConfig{
		AdminUsername: "admin",
		AdminPassword: "admin-pass",
		AdminEmail:    "admin@office.local",
	})
	require.NoError(t, err)

	announcements := memstore.NewAnnouncementRepository(store)
	users := memstore.NewUserRepository(store)
	notifications := memstore.NewNotificationRepository(store)
	notifSvc := notificationService.NewNotificationService(notifications, users)

	return NewAnnouncementService(announcements, users, notifSvc), store
}

func addActiveUser(t *testing.T, store *memstore.Store, id string) {
	t.Helper()
	_, err := memstore.NewUserRepository(store).Create(context.Background(), user.User{
		ID:       id,
		Username: id,
		Role:     user.RoleUser,
		Status:   user.StatusActive,
	})
	require.NoError(t, err)
}

func TestCreatePublicNotifiesActiveUsers(t *testing.T) {
	ctx := context.Background()
	svc, store := newAnnouncementTestEnv(t)
	addActiveUser(t, store, "u1")
	addActiveUser(t, store, "u2")

	a, err := svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content:  "Office closed on Friday",
		IsPublic: true,
	})
	require.NoError(t, err)
	assert.NotNil(t, a.ReadBy)
	assert.Empty(t, a.ReadBy)

	notifications := memstore.NewNotificationRepository(store)
	for _, id := range []string{"u1", "u2"} {
		got, err := notifications.ListByUser(ctx, id)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}

	// creator gets no notification
	creator, err := notifications.ListByUser(ctx, fixtures.AdminID)
	require.NoError(t, err)
	assert.Empty(t, creator)
}

func TestCreateTargetedNotifiesOnlyTargets(t *testing.T) {
	ctx := context.Background()
	svc, store := newAnnouncementTestEnv(t)
	addActiveUser(t, store, "u1")
	addActiveUser(t, store, "u2")

	_, err := svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content:       "1:1 reminder",
		IsPublic:      false,
		TargetUserIDs: []string{"u1"},
	})
	require.NoError(t, err)

	notifications := memstore.NewNotificationRepository(store)
	targeted, err := notifications.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, targeted, 1)

	other, err := notifications.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newAnnouncementTestEnv(t)
	addActiveUser(t, store, "u1")

	a, err := svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content:  "read me",
		IsPublic: true,
	})
	require.NoError(t, err)

	a, err = svc.Acknowledge(ctx, "u1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, a.ReadBy)

	a, err = svc.Acknowledge(ctx, "u1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, a.ReadBy)
}

func TestAcknowledgeUnknownAnnouncement(t *testing.T) {
	svc, _ := newAnnouncementTestEnv(t)

	_, err := svc.Acknowledge(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)
}

func TestListVisible(t *testing.T) {
	ctx := context.Background()
	svc, store := newAnnouncementTestEnv(t)
	addActiveUser(t, store, "u1")
	addActiveUser(t, store, "u2")

	_, err := svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content: "everyone", IsPublic: true,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content: "just u1", IsPublic: false, TargetUserIDs: []string{"u1"},
	})
	require.NoError(t, err)

	u1Visible, err := svc.ListVisible(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, u1Visible, 2)

	u2Visible, err := svc.ListVisible(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, u2Visible, 1)

	adminVisible, err := svc.ListVisible(ctx, fixtures.AdminID)
	require.NoError(t, err)
	assert.Len(t, adminVisible, 2)
}

func TestDeleteRemovesAnnouncement(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnnouncementTestEnv(t)

	a, err := svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content: "short lived", IsPublic: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	visible, err := svc.ListVisible(ctx, fixtures.AdminID)
	require.NoError(t, err)
	assert.Empty(t, visible)

	assert.ErrorIs(t, svc.Delete(ctx, a.ID), announcement.ErrAnnouncementNotFound)
}

func TestConcurrentAcknowledgesKeepAllReaders(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnnouncementTestEnv(t)

	a, err := svc.Create(ctx, fixtures.AdminID, announcement.CreateRequest{
		Content: "all hands", IsPublic: true,
	})
	require.NoError(t, err)

	const readers = 6
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := svc.Acknowledge(ctx, fmt.Sprintf("u%d", i), a.ID)
			assert.NoError(t, err)
		}(i)
	}
	close(start)
	wg.Wait()

	visible, err := svc.ListVisible(ctx, fixtures.AdminID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Len(t, visible[0].ReadBy, readers)
}
