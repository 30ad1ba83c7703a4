package activity

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officedesk/officeops-backend-go/internal/domain/activity"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
	"github.com/officedesk/officeops-backend-go/internal/fixtures"
	"github.com/officedesk/officeops-backend-go/internal/pkg/snapshot"
	"github.com/officedesk/officeops-backend-go/internal/repository/memstore"
	notificationService "github.com/officedesk/officeops-backend-go/internal/service/notification"
)

func newActivityTestEnv(t *testing.T) (activity.Service, *memstore.Store) {
	t.Helper()
	store, err := memstore.New(context.Background(), snapshot.NewMemoryStore(), memstore.SeedConfig{
		AdminUsername: "admin",
		AdminPassword: "admin-pass",
		AdminEmail:    "admin@office.local",
	})
	require.NoError(t, err)

	activities := memstore.NewActivityRepository(store)
	users := memstore.NewUserRepository(store)
	notifications := memstore.NewNotificationRepository(store)
	notifSvc := notificationService.NewNotificationService(notifications, users)

	return NewActivityService(activities, users, notifSvc), store
}

func createActivity(t *testing.T, svc activity.Service, maxPeople int) activity.Activity {
	t.Helper()
	a, err := svc.Create(context.Background(), fixtures.AdminID, activity.CreateRequest{
		Title:     "Team Dinner",
		Location:  "Rooftop",
		Start:     "2024-03-01T18:00:00Z",
		End:       "2024-03-01T21:00:00Z",
		MaxPeople: maxPeople,
		IsPublic:  true,
	})
	require.NoError(t, err)
	return a
}

func TestCreateStartsWithNoAttendees(t *testing.T) {
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 10)

	assert.NotNil(t, a.Attendees)
	assert.Empty(t, a.Attendees)
	assert.Equal(t, 0, a.AcceptedCount())
}

func TestRSVPAcceptAndReject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 2)

	a, err := svc.RSVP(ctx, "u1", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)
	assert.Equal(t, 1, a.AcceptedCount())

	a, err = svc.RSVP(ctx, "u2", a.ID, activity.AttendeeRejected)
	require.NoError(t, err)
	assert.Equal(t, 1, a.AcceptedCount())
	assert.Len(t, a.Attendees, 2)
}

func TestRSVPReVoteReplacesPrior(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 2)

	a, err := svc.RSVP(ctx, "u1", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)

	a, err = svc.RSVP(ctx, "u1", a.ID, activity.AttendeeRejected)
	require.NoError(t, err)
	assert.Len(t, a.Attendees, 1)
	assert.Equal(t, 0, a.AcceptedCount())
}

func TestRSVPRejectsWhenFull(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 2)

	_, err := svc.RSVP(ctx, "u1", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)
	_, err = svc.RSVP(ctx, "u2", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)

	_, err = svc.RSVP(ctx, "u3", a.ID, activity.AttendeeAccepted)
	assert.ErrorIs(t, err, activity.ErrActivityFull)

	// a REJECT still lands at a full activity
	got, err := svc.RSVP(ctx, "u3", a.ID, activity.AttendeeRejected)
	require.NoError(t, err)
	assert.Len(t, got.Attendees, 3)
}

func TestRSVPReAcceptAtCapacity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 2)

	_, err := svc.RSVP(ctx, "u1", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)
	_, err = svc.RSVP(ctx, "u2", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)

	// an accepted attendee can re-accept without tripping the capacity check
	got, err := svc.RSVP(ctx, "u1", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AcceptedCount())
}

func TestRSVPFlipAtCapacityFreesASlot(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 2)

	_, err := svc.RSVP(ctx, "u1", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)
	_, err = svc.RSVP(ctx, "u2", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)

	_, err = svc.RSVP(ctx, "u1", a.ID, activity.AttendeeRejected)
	require.NoError(t, err)

	got, err := svc.RSVP(ctx, "u3", a.ID, activity.AttendeeAccepted)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AcceptedCount())
}

func TestRSVPUnknownActivity(t *testing.T) {
	svc, _ := newActivityTestEnv(t)

	_, err := svc.RSVP(context.Background(), "u1", "missing", activity.AttendeeAccepted)
	assert.ErrorIs(t, err, activity.ErrActivityNotFound)
}

func TestListVisibleFiltersTargets(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)

	_, err := svc.Create(ctx, fixtures.AdminID, activity.CreateRequest{
		Title:         "Private Workshop",
		Start:         "2024-03-01T09:00:00Z",
		End:           "2024-03-01T12:00:00Z",
		MaxPeople:     5,
		IsPublic:      false,
		TargetUserIDs: []string{"u1"},
	})
	require.NoError(t, err)

	mine, err := svc.ListVisible(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := svc.ListVisible(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, others)

	// the creator always sees their own activity
	creators, err := svc.ListVisible(ctx, fixtures.AdminID)
	require.NoError(t, err)
	assert.Len(t, creators, 1)
}

func TestCreateNotifiesVisibleActiveUsers(t *testing.T) {
	ctx := context.Background()
	svc, store := newActivityTestEnv(t)
	users := memstore.NewUserRepository(store)
	notifications := memstore.NewNotificationRepository(store)

	_, err := users.Create(ctx, user.User{
		ID: "u-active", Username: "active", Role: user.RoleUser, Status: user.StatusActive,
	})
	require.NoError(t, err)
	_, err = users.Create(ctx, user.User{
		ID: "u-waiting", Username: "waiting", Role: user.RoleUser, Status: user.StatusWaitingSetup,
	})
	require.NoError(t, err)

	createActivity(t, svc, 10)

	active, err := notifications.ListByUser(ctx, "u-active")
	require.NoError(t, err)
	assert.Len(t, active, 1)

	waiting, err := notifications.ListByUser(ctx, "u-waiting")
	require.NoError(t, err)
	assert.Empty(t, waiting)

	// the creator is not notified about their own activity
	creator, err := notifications.ListByUser(ctx, fixtures.AdminID)
	require.NoError(t, err)
	assert.Empty(t, creator)
}

func TestConcurrentAcceptsRespectCapacity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 1)

	const voters = 6
	start := make(chan struct{})
	errs := make([]error, voters)
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.RSVP(ctx, fmt.Sprintf("u%d", i), a.ID, activity.AttendeeAccepted)
		}(i)
	}
	close(start)
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.ErrorIs(t, err, activity.ErrActivityFull)
	}
	assert.Equal(t, 1, accepted)
}

func TestConcurrentVotesAllRecorded(t *testing.T) {
	ctx := context.Background()
	svc, _ := newActivityTestEnv(t)
	a := createActivity(t, svc, 6)

	const voters = 6
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := svc.RSVP(ctx, fmt.Sprintf("u%d", i), a.ID, activity.AttendeeAccepted)
			assert.NoError(t, err)
		}(i)
	}
	close(start)
	wg.Wait()

	visible, err := svc.ListVisible(ctx, "u0")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Len(t, visible[0].Attendees, voters)
	assert.Equal(t, voters, visible[0].AcceptedCount())
}
