package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/comalice/rivercrossing"
)

func reachableKeys(t *testing.T, n int) []Key {
	t.Helper()
	g, err := rc.Explore(rc.Start())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(g.States), n)
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = Key{Start: g.States[i], Goal: rc.Goal()}
	}
	return keys
}

func TestMemoryRegistryLookup(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(4)
	key := Key{Start: rc.Start(), Goal: rc.Goal()}

	_, err := r.Lookup(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Register(ctx, key, Report{ID: "a", Start: key.Start, Goal: key.Goal}))
	got, err := r.Lookup(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	byID, err := r.ByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, key.Start, byID.Start)

	stats := r.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)
}

func TestMemoryRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(2)
	keys := reachableKeys(t, 3)

	for i, k := range keys[:2] {
		require.NoError(t, r.Register(ctx, k, Report{ID: fmt.Sprint(i)}))
	}
	// Touch keys[0] so keys[1] becomes the oldest.
	_, err := r.Lookup(ctx, keys[0])
	require.NoError(t, err)

	require.NoError(t, r.Register(ctx, keys[2], Report{ID: "2"}))
	assert.Equal(t, 2, r.Len())

	_, err = r.Lookup(ctx, keys[1])
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.ByID(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Lookup(ctx, keys[0])
	assert.NoError(t, err)
	assert.EqualValues(t, 1, r.Stats().Evictions)
}

func TestMemoryRegistryReplace(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(2)
	key := reachableKeys(t, 1)[0]

	require.NoError(t, r.Register(ctx, key, Report{ID: "old"}))
	require.NoError(t, r.Register(ctx, key, Report{ID: "new"}))
	assert.Equal(t, 1, r.Len())

	_, err := r.ByID(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := r.ByID(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestMemoryRegistryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(0)
	sol, err := rc.FindSolution(rc.Start(), rc.Goal())
	require.NoError(t, err)
	key := Key{Start: rc.Start(), Goal: rc.Goal()}
	require.NoError(t, r.Register(ctx, key, Report{ID: "x", Solution: sol}))

	got, err := r.Lookup(ctx, key)
	require.NoError(t, err)
	got.Solution.Path[0] = rc.Goal()
	got.Solution.Moves[0] = rc.Move{}

	again, err := r.Lookup(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, rc.Start(), again.Solution.Path[0])
	assert.Equal(t, rc.Board, again.Solution.Moves[0].Kind)
}

func TestMemoryRegistryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewMemoryRegistry(1)
	err := r.Register(ctx, Key{}, Report{})
	assert.True(t, errors.Is(err, context.Canceled))
	_, err = r.Lookup(ctx, Key{})
	assert.True(t, errors.Is(err, context.Canceled))
}
