package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
)

func TestChannelPublisherDelivery(t *testing.T) {
	ch := make(chan core.SolveEvent, 10)
	svc := core.NewService(core.WithPublisher(NewChannelPublisher(ch)))

	r, err := svc.Solve(context.Background(), rc.Start(), rc.Goal())
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, r.ID, ev.ReportID)
		assert.True(t, ev.Solvable)
		assert.Equal(t, 23, ev.Steps)
		assert.Empty(t, ev.Err)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("no event delivered")
	}
}

func TestChannelPublisherBackpressureDrop(t *testing.T) {
	ch := make(chan core.SolveEvent, 1)
	p := NewChannelPublisher(ch)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, core.SolveEvent{ReportID: "a"}))
	require.NoError(t, p.Publish(ctx, core.SolveEvent{ReportID: "b"}))
	assert.EqualValues(t, 1, p.Dropped())
	assert.Equal(t, "a", (<-ch).ReportID)
}

func TestChannelPublisherClose(t *testing.T) {
	ch := make(chan core.SolveEvent, 1)
	p := NewChannelPublisher(ch)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, open := <-ch
	assert.False(t, open)
	assert.NoError(t, p.Publish(context.Background(), core.SolveEvent{}))
}

func TestChannelPublisherCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewChannelPublisher(make(chan core.SolveEvent, 1))
	assert.ErrorIs(t, p.Publish(ctx, core.SolveEvent{}), context.Canceled)
}
