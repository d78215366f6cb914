package buddy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/randsource"
)

func TestRespondPicksFromReplyList(t *testing.T) {
	svc := NewService(ServiceParams{Rnd: randsource.NewSequence(0, 2, 7)})

	replies := defaultReplies()
	for _, want := range []string{replies[0], replies[2], replies[7]} {
		got, err := svc.Respond("hey bestie")
		require.NoError(t, err)
		require.Equal(t, want, got.Response)
	}
}

func TestRespondSetsTimestamp(t *testing.T) {
	svc := NewService(ServiceParams{Rnd: randsource.NewSequence(0)})

	before := time.Now()
	got, err := svc.Respond("what's up")
	require.NoError(t, err)
	require.False(t, got.Timestamp.Before(before))
	require.False(t, got.Timestamp.After(time.Now()))
}

func TestRespondRejectsEmptyPrompt(t *testing.T) {
	svc := NewService(ServiceParams{Rnd: randsource.NewSequence(0)})

	_, err := svc.Respond("")
	require.Error(t, err)

	var be errutil.BaseError
	require.True(t, errors.As(err, &be))
	require.Equal(t, errutil.StatusBadRequest, be.Status())
}
