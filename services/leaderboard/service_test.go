package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-rewards/pkg/config"
	"campus-rewards/services/member"
	"campus-rewards/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestService(t *testing.T, members ...*member.Member) *Service {
	t.Helper()
	db := testutil.NewTestDB(t, &member.Member{}, &member.Badge{})
	for _, m := range members {
		require.NoError(t, db.Create(m).Error)
	}

	return NewService(ServiceParams{
		Members: member.NewService(member.ServiceParams{DB: db}),
		Config:  &config.Config{},
	})
}

func TestRankPointsDescending(t *testing.T) {
	svc := newTestService(t,
		&member.Member{Name: "Low", Email: "low@lmu.edu", Points: 100},
		&member.Member{Name: "High", Email: "high@lmu.edu", Points: 900},
		&member.Member{Name: "Mid", Email: "mid@lmu.edu", Points: 400},
	)

	ranked, err := svc.Rank(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	require.Equal(t, "High", ranked[0].Name)
	require.Equal(t, "Mid", ranked[1].Name)
	require.Equal(t, "Low", ranked[2].Name)
}

// Equal-point members must keep their insertion order.
func TestRankStableOnTies(t *testing.T) {
	svc := newTestService(t,
		&member.Member{Name: "First", Email: "first@lmu.edu", Points: 500},
		&member.Member{Name: "Second", Email: "second@lmu.edu", Points: 500},
		&member.Member{Name: "Top", Email: "top@lmu.edu", Points: 600},
		&member.Member{Name: "Third", Email: "third@lmu.edu", Points: 500},
	)

	ranked, err := svc.Rank(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Top", ranked[0].Name)
	require.Equal(t, "First", ranked[1].Name)
	require.Equal(t, "Second", ranked[2].Name)
	require.Equal(t, "Third", ranked[3].Name)
}

func TestRankEmpty(t *testing.T) {
	svc := newTestService(t)

	ranked, err := svc.Rank(context.Background())
	require.NoError(t, err)
	require.Empty(t, ranked)
}

func TestRankDoesNotMutate(t *testing.T) {
	svc := newTestService(t,
		&member.Member{Name: "A", Email: "a@lmu.edu", Points: 10},
		&member.Member{Name: "B", Email: "b@lmu.edu", Points: 20},
	)

	_, err := svc.Rank(context.Background())
	require.NoError(t, err)

	// the underlying listing keeps insertion order
	members, err := svc.members.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A", members[0].Name)
	require.Equal(t, "B", members[1].Name)
}
