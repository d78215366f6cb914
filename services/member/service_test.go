package member

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
	db := testutil.NewTestDB(t, &Member{}, &Badge{})
	return NewService(ServiceParams{DB: db})
}

func seed(t *testing.T, svc *Service) {
	t.Helper()
	require.NoError(t, svc.db.Create(DefaultMembers()).Error)
	require.NoError(t, svc.db.Create(DefaultBadges()).Error)
}

func TestListInsertionOrderWithBadges(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc)

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, "Alex Johnson", members[0].Name)
	require.Equal(t, []string{"First Event", "Sports Fan", "Social Butterfly"}, members[0].Badges)
	require.Equal(t, "Sarah Chen", members[1].Name)
	require.Equal(t, []string{"First Event", "Music Lover"}, members[1].Badges)
}

func TestGet(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc)

	m, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(980), m.Points)
	require.Equal(t, []string{"First Event", "Music Lover"}, m.Badges)
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusNotFound, be.Status())
}

func TestGetRejectsNonPositiveID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 0)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusBadRequest, be.Status())
}

func TestBadgeSetUniqueConstraint(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc)

	err := svc.db.Create(&Badge{MemberID: 1, Name: "First Event"}).Error
	require.Error(t, err)
}
