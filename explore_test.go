package rivercrossing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/testutil"
)

func TestExploreFromStart(t *testing.T) {
	g, err := Explore(Start())
	require.NoError(t, err)

	assert.Len(t, g.States, 62)
	assert.Len(t, g.Depth, 62)
	assert.Equal(t, Start(), g.States[0])
	assert.Equal(t, 0, g.Depth[Start()])
	assert.True(t, g.Contains(Goal()))
	assert.Equal(t, 23, g.Depth[Goal()])
	assert.False(t, g.Contains(testutil.Stranded()))

	for _, s := range g.States {
		assert.NoError(t, s.Validate())
	}
	for _, e := range g.Edges {
		assert.True(t, g.Contains(e.From))
		assert.True(t, g.Contains(e.To))
		assert.LessOrEqual(t, g.Depth[e.To], g.Depth[e.From]+1)
	}
	assert.GreaterOrEqual(t, g.Diameter(), 23)
}

func TestExploreStranded(t *testing.T) {
	g, err := Explore(testutil.Stranded())
	require.NoError(t, err)
	assert.Len(t, g.States, 4)
	assert.False(t, g.Contains(Goal()))
}

func TestExploreRejectsIllegalRoot(t *testing.T) {
	_, err := Explore(testutil.Unsupervised())
	assert.ErrorIs(t, err, ErrInvalidState)
}
