package rewards

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/randsource"
	"campus-rewards/services/member"
	"campus-rewards/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestService(t *testing.T, rnd randsource.Source) (*Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t, &member.Member{}, &member.Badge{}, &PointEntry{})
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewService(ServiceParams{DB: db, Node: node, Rnd: rnd}), db
}

func createMember(t *testing.T, db *gorm.DB, points int64) *member.Member {
	t.Helper()
	m := &member.Member{Name: "Test Member", Email: "test@lmu.edu", Points: points}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestCheckInAwardAndBalance(t *testing.T) {
	// Intn(41) == 17 -> award 27
	svc, db := newTestService(t, randsource.NewSequence(17))
	m := createMember(t, db, 100)

	result, err := svc.CheckIn(context.Background(), m.ID, 1)
	require.NoError(t, err)
	require.True(t, result.Awarded)
	require.Equal(t, int64(27), result.PointsEarned)
	require.Equal(t, int64(127), result.NewBalance)

	var stored member.Member
	require.NoError(t, db.First(&stored, m.ID).Error)
	require.Equal(t, int64(127), stored.Points)
}

func TestCheckInAwardBounds(t *testing.T) {
	// Sequence draws pin the uniform draw to both ends of [10, 50].
	for name, tc := range map[string]struct {
		draw int
		want int64
	}{
		"min": {draw: 0, want: 10},
		"max": {draw: 40, want: 50},
	} {
		t.Run(name, func(t *testing.T) {
			svc, db := newTestService(t, randsource.NewSequence(tc.draw))
			m := createMember(t, db, 0)

			result, err := svc.CheckIn(context.Background(), m.ID, 1)
			require.NoError(t, err)
			require.Equal(t, tc.want, result.PointsEarned)
		})
	}
}

func TestCheckInWritesPointEntry(t *testing.T) {
	svc, db := newTestService(t, randsource.NewSequence(5))
	m := createMember(t, db, 0)

	result, err := svc.CheckIn(context.Background(), m.ID, 7)
	require.NoError(t, err)
	require.NotEmpty(t, result.ReferenceID)

	var entries []PointEntry
	require.NoError(t, db.Where("member_id = ?", m.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, int64(7), entries[0].EventID)
	require.Equal(t, result.PointsEarned, entries[0].Points)
	require.Equal(t, result.ReferenceID, entries[0].ReferenceID)
}

func TestCheckInNotFoundMutatesNothing(t *testing.T) {
	svc, db := newTestService(t, randsource.NewSequence(0))

	_, err := svc.CheckIn(context.Background(), 999, 1)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusNotFound, be.Status())

	var count int64
	require.NoError(t, db.Model(&PointEntry{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCheckInRejectsNonPositiveID(t *testing.T) {
	svc, _ := newTestService(t, randsource.NewSequence(0))

	_, err := svc.CheckIn(context.Background(), 0, 1)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusBadRequest, be.Status())
}

func TestFirstCheckInGrantsFirstEvent(t *testing.T) {
	svc, db := newTestService(t, randsource.NewSequence(0))
	m := createMember(t, db, 0)

	result, err := svc.CheckIn(context.Background(), m.ID, 1)
	require.NoError(t, err)
	require.Contains(t, result.BadgesGranted, "First Event")

	// second check-in must not grant it again
	result, err = svc.CheckIn(context.Background(), m.ID, 1)
	require.NoError(t, err)
	require.NotContains(t, result.BadgesGranted, "First Event")

	var badges []member.Badge
	require.NoError(t, db.Where("member_id = ? AND name = ?", m.ID, "First Event").Find(&badges).Error)
	require.Len(t, badges, 1)
}

func TestBalanceBadgesGrantOnThreshold(t *testing.T) {
	// 490 + 10 crosses the Point Collector threshold exactly
	svc, db := newTestService(t, randsource.NewSequence(0))
	m := createMember(t, db, 490)

	result, err := svc.CheckIn(context.Background(), m.ID, 1)
	require.NoError(t, err)
	require.Equal(t, int64(500), result.NewBalance)
	require.Contains(t, result.BadgesGranted, "Point Collector")
	require.NotContains(t, result.BadgesGranted, "Campus Legend")
}

func TestSocialButterflyAfterFifthCheckIn(t *testing.T) {
	svc, db := newTestService(t, randsource.NewSequence(0))
	m := createMember(t, db, 0)

	var granted []string
	for i := 0; i < 5; i++ {
		result, err := svc.CheckIn(context.Background(), m.ID, 1)
		require.NoError(t, err)
		granted = append(granted, result.BadgesGranted...)
	}

	require.Contains(t, granted, "Social Butterfly")

	var badges []member.Badge
	require.NoError(t, db.Where("member_id = ? AND name = ?", m.ID, "Social Butterfly").Find(&badges).Error)
	require.Len(t, badges, 1)
}

// Racing check-ins for one member must serialize: the stored balance has
// to equal the sum of every awarded amount, and no badge may be granted
// twice.
func TestCheckInConcurrentNoLostUpdate(t *testing.T) {
	const attempts = 10

	svc, db := newTestService(t, randsource.NewSequence(0))
	m := createMember(t, db, 0)

	var wg sync.WaitGroup
	earned := make([]int64, attempts)
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.CheckIn(context.Background(), m.ID, 1)
			if err != nil {
				errs[i] = err
				return
			}
			earned[i] = result.PointsEarned
		}(i)
	}
	wg.Wait()

	var total int64
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		total += earned[i]
	}

	var stored member.Member
	require.NoError(t, db.First(&stored, m.ID).Error)
	require.Equal(t, total, stored.Points)

	var entries int64
	require.NoError(t, db.Model(&PointEntry{}).Where("member_id = ?", m.ID).Count(&entries).Error)
	require.Equal(t, int64(attempts), entries)

	var badges []member.Badge
	require.NoError(t, db.Where("member_id = ?", m.ID).Find(&badges).Error)
	seen := make(map[string]bool, len(badges))
	for _, b := range badges {
		require.False(t, seen[b.Name])
		seen[b.Name] = true
	}
	require.True(t, seen["First Event"])
	require.True(t, seen["Social Butterfly"])
}

func TestHistoryNewestFirst(t *testing.T) {
	svc, db := newTestService(t, randsource.NewSequence(0))
	m := createMember(t, db, 0)

	for i := 0; i < 3; i++ {
		_, err := svc.CheckIn(context.Background(), m.ID, int64(i+1))
		require.NoError(t, err)
	}

	entries, err := svc.History(context.Background(), m.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestHistoryNotFound(t *testing.T) {
	svc, _ := newTestService(t, randsource.NewSequence(0))

	_, err := svc.History(context.Background(), 999)
	require.Error(t, err)
	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusNotFound, be.Status())
}
