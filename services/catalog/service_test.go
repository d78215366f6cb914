package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-rewards/pkg/errutil"
	"campus-rewards/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestService(t *testing.T) *Service {
	db := testutil.NewTestDB(t, &Event{}, &Prize{})
	return NewService(ServiceParams{DB: db})
}

func TestListEventsInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.db.Create(DefaultEvents()).Error)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "LMU Basketball Game vs USC", events[0].Title)
	require.Equal(t, "Spring Concert in the Sunken Garden", events[1].Title)
	require.Equal(t, "Study Night at the Library", events[2].Title)
	require.Equal(t, "lmu-basketball-game-vs-usc", events[0].Slug)
}

func TestGetEvent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.db.Create(DefaultEvents()).Error)

	event, err := svc.GetEvent(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, Music, event.Category)
	require.Equal(t, int64(150), event.MaxCapacity)
}

func TestGetEventNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetEvent(context.Background(), 999)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusNotFound, be.Status())
}

func TestGetEventRejectsNonPositiveID(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []int64{0, -1} {
		_, err := svc.GetEvent(context.Background(), id)
		require.Error(t, err)
		var be errutil.BaseError
		require.True(t, errors.As(err, &be))
		require.Equal(t, errutil.StatusBadRequest, be.Status())
	}
}

func TestListPrizesInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.db.Create(DefaultPrizes()).Error)

	prizes, err := svc.ListPrizes(ctx)
	require.NoError(t, err)
	require.Len(t, prizes, 3)
	require.Equal(t, int64(500), prizes[0].PointsRequired)
	require.Equal(t, int64(300), prizes[1].PointsRequired)
	require.Equal(t, int64(750), prizes[2].PointsRequired)
}

func TestGetPrizeNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetPrize(context.Background(), 42)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusNotFound, be.Status())
}
