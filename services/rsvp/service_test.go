package rsvp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-rewards/pkg/errutil"
	"campus-rewards/services/catalog"
	"campus-rewards/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := testutil.NewTestDB(t, &catalog.Event{})
	return NewService(ServiceParams{DB: db}), db
}

func createEvent(t *testing.T, db *gorm.DB, rsvpCount, capacity int64) *catalog.Event {
	t.Helper()
	event := &catalog.Event{
		Title:       "Test Event",
		Category:    catalog.Sports,
		RSVPCount:   rsvpCount,
		MaxCapacity: capacity,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func TestAttemptRSVPSuccess(t *testing.T) {
	svc, db := newTestService(t)
	event := createEvent(t, db, 45, 100)

	result, err := svc.AttemptRSVP(context.Background(), event.ID)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Equal(t, int64(46), result.NewCount)
	require.Equal(t, int64(100), result.Capacity)

	var stored catalog.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	require.Equal(t, int64(46), stored.RSVPCount)
}

func TestAttemptRSVPLastSlotThenFull(t *testing.T) {
	svc, db := newTestService(t)
	event := createEvent(t, db, 99, 100)

	result, err := svc.AttemptRSVP(context.Background(), event.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), result.NewCount)

	_, err = svc.AttemptRSVP(context.Background(), event.ID)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusConflict, be.Status())

	// counter must not move past capacity
	var stored catalog.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	require.Equal(t, int64(100), stored.RSVPCount)
}

func TestAttemptRSVPFullDoesNotIncrement(t *testing.T) {
	svc, db := newTestService(t)
	event := createEvent(t, db, 50, 50)

	_, err := svc.AttemptRSVP(context.Background(), event.ID)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusConflict, be.Status())

	var stored catalog.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	require.Equal(t, int64(50), stored.RSVPCount)
}

func TestAttemptRSVPNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AttemptRSVP(context.Background(), 999)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusNotFound, be.Status())
}

func TestAttemptRSVPRejectsNonPositiveID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AttemptRSVP(context.Background(), -3)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusBadRequest, be.Status())
}

// With K slots remaining and N > K concurrent attempts, exactly K must
// succeed and the counter must land exactly on capacity.
func TestAttemptRSVPConcurrentNoOverbooking(t *testing.T) {
	svc, db := newTestService(t)
	const (
		remaining = 5
		attempts  = 20
	)
	event := createEvent(t, db, 95, 95+remaining)

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.AttemptRSVP(context.Background(), event.ID)
		}(i)
	}
	wg.Wait()

	var accepted, full int
	for _, err := range results {
		if err == nil {
			accepted++
			continue
		}
		var be errutil.BaseError
		require.True(t, errors.As(err, &be))
		require.Equal(t, errutil.StatusConflict, be.Status())
		full++
	}

	require.Equal(t, remaining, accepted)
	require.Equal(t, attempts-remaining, full)

	var stored catalog.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	require.Equal(t, stored.MaxCapacity, stored.RSVPCount)
}
