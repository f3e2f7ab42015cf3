package hints

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/comalice/rivercrossing"
)

func canonical(t *testing.T) rc.Solution {
	t.Helper()
	sol, err := rc.FindSolution(rc.Start(), rc.Goal())
	require.NoError(t, err)
	return sol
}

func TestRenderPlain(t *testing.T) {
	hs, err := Render(canonical(t), PlainFormatter{})
	require.NoError(t, err)
	require.Len(t, hs, 24)

	assert.Equal(t, KindHeader, hs[0].Kind)
	assert.Equal(t, "23 steps in total", hs[0].Text)

	first := hs[1]
	assert.Equal(t, KindStep, first.Kind)
	assert.Equal(t, 1, first.Step)
	assert.Equal(t, "Sheep boards the boat", first.Action)
	assert.Equal(t, "left: Farmer, Wolf, Cabbage", first.LeftBank)
	assert.Equal(t, "right: empty", first.RightBank)
	assert.Equal(t, "boat: Sheep", first.Boat)

	assert.Equal(t, "row to the right bank", hs[3].Action)
	assert.Equal(t, "Sheep lands on the right bank", hs[4].Action)
	assert.Equal(t, "3. row to the right bank | left: Wolf, Cabbage | right: empty | boat: Farmer, Sheep", hs[3].String())

	last := hs[len(hs)-1]
	assert.Equal(t, 23, last.Step)
	assert.Equal(t, "right: Farmer, Wolf, Sheep, Cabbage", last.RightBank)
}

func TestRenderIcons(t *testing.T) {
	hs, err := Render(canonical(t), IconFormatter{})
	require.NoError(t, err)

	assert.Equal(t, "🚣 23", hs[0].Text)
	assert.Equal(t, "🐑 ➜ 🚣", hs[1].Action)
	assert.Equal(t, "🚣 ➡️", hs[3].Action)
	assert.Equal(t, "🐑 ➜ 🏝️", hs[4].Action)
	assert.Equal(t, "🚣 ⬅️", hs[5].Action)
	assert.Equal(t, "🏖️ 👨‍🌾🐺🥬", hs[1].LeftBank)
	assert.Equal(t, "🏝️ ∅", hs[1].RightBank)
}

func TestRenderNoSolution(t *testing.T) {
	hs, err := Render(rc.Solution{}, PlainFormatter{})
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, KindNoSolution, hs[0].Kind)
	assert.Equal(t, "no solution found", hs[0].String())
}

func TestRenderAlreadyAtGoal(t *testing.T) {
	sol, err := rc.FindSolution(rc.Goal(), rc.Goal())
	require.NoError(t, err)
	hs, err := Render(sol, PlainFormatter{})
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, "0 steps in total", hs[0].Text)
}

func TestRenderInconsistent(t *testing.T) {
	sol := canonical(t)
	sol.Moves = sol.Moves[:3]
	_, err := Render(sol, PlainFormatter{})
	assert.True(t, errors.Is(err, ErrInconsistent))
}

func TestLines(t *testing.T) {
	lines, err := Lines(canonical(t), PlainFormatter{})
	require.NoError(t, err)
	assert.Len(t, lines, 24)
	assert.Equal(t, "23 steps in total", lines[0])
}

func TestByName(t *testing.T) {
	f, err := ByName("icons")
	require.NoError(t, err)
	assert.IsType(t, IconFormatter{}, f)

	f, err = ByName("")
	require.NoError(t, err)
	assert.IsType(t, PlainFormatter{}, f)

	_, err = ByName("morse")
	assert.Error(t, err)
}
