// Package testutil holds fixtures and assertions shared by the test suites.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	rc "github.com/comalice/rivercrossing"
)

// CanonicalMoves is the shortest solution from Start to Goal under the
// fixed successor order: 23 atomic actions with 7 crossings.
var CanonicalMoves = []rc.Move{
	{Kind: rc.Board, Character: rc.Sheep, Side: rc.Left},
	{Kind: rc.Board, Character: rc.Farmer, Side: rc.Left},
	{Kind: rc.Cross, Side: rc.Left},
	{Kind: rc.Disembark, Character: rc.Sheep, Side: rc.Right},
	{Kind: rc.Cross, Side: rc.Right},
	{Kind: rc.Board, Character: rc.Wolf, Side: rc.Left},
	{Kind: rc.Cross, Side: rc.Left},
	{Kind: rc.Disembark, Character: rc.Farmer, Side: rc.Right},
	{Kind: rc.Board, Character: rc.Sheep, Side: rc.Right},
	{Kind: rc.Disembark, Character: rc.Wolf, Side: rc.Right},
	{Kind: rc.Board, Character: rc.Farmer, Side: rc.Right},
	{Kind: rc.Cross, Side: rc.Right},
	{Kind: rc.Disembark, Character: rc.Farmer, Side: rc.Left},
	{Kind: rc.Board, Character: rc.Cabbage, Side: rc.Left},
	{Kind: rc.Disembark, Character: rc.Sheep, Side: rc.Left},
	{Kind: rc.Board, Character: rc.Farmer, Side: rc.Left},
	{Kind: rc.Cross, Side: rc.Left},
	{Kind: rc.Disembark, Character: rc.Cabbage, Side: rc.Right},
	{Kind: rc.Cross, Side: rc.Right},
	{Kind: rc.Board, Character: rc.Sheep, Side: rc.Left},
	{Kind: rc.Cross, Side: rc.Left},
	{Kind: rc.Disembark, Character: rc.Farmer, Side: rc.Right},
	{Kind: rc.Disembark, Character: rc.Sheep, Side: rc.Right},
}

// Stranded returns a legal state from which the goal is unreachable: the
// Farmer waits on the right bank while the empty boat sits on the left.
func Stranded() rc.State {
	return rc.NewStateBuilder().
		OnLeft(rc.Wolf, rc.Cabbage).
		OnRight(rc.Farmer, rc.Sheep).
		BoatAt(rc.Left).
		MustBuild()
}

// Unsupervised returns an illegal state: Wolf and Sheep alone on the left.
func Unsupervised() rc.State {
	return rc.State{
		Left:  rc.NewSet(rc.Wolf, rc.Sheep),
		Right: rc.NewSet(rc.Farmer, rc.Cabbage),
		Boat:  rc.Right,
	}
}

// Replay applies moves to start and returns every visited state, start
// included.
func Replay(t testing.TB, start rc.State, moves []rc.Move) []rc.State {
	t.Helper()
	path := []rc.State{start}
	cur := start
	for i, m := range moves {
		next, err := cur.Apply(m)
		require.NoErrorf(t, err, "move %d (%s)", i+1, m)
		path = append(path, next)
		cur = next
	}
	return path
}

// RequireValidPath checks that path starts at start, ends at goal, visits
// only legal states and advances by exactly one atomic action per step.
func RequireValidPath(t testing.TB, path []rc.State, start, goal rc.State) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")
	for i, s := range path {
		require.NoErrorf(t, s.Validate(), "state %d", i)
		if i == 0 {
			continue
		}
		_, err := rc.Diff(path[i-1], s)
		require.NoErrorf(t, err, "step %d", i)
	}
}
