package socialgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votesim/socialgraph"
)

func TestNew_TooFewVoters(t *testing.T) {
	g, err := socialgraph.New(0)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, socialgraph.ErrTooFewVoters)
}

func TestNew_Edgeless(t *testing.T) {
	g, err := socialgraph.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Voters())
	assert.Equal(t, 0, g.EdgeCount())
	for i := 0; i < 4; i++ {
		assert.Empty(t, g.Neighbors(i))
	}
}

func TestFromMatrix_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   [][]bool
		want error
	}{
		{"empty", nil, socialgraph.ErrTooFewVoters},
		{"ragged", [][]bool{{false, true}, {true}}, socialgraph.ErrNotSquare},
		{"wide", [][]bool{{false, true, false}, {true, false, false}}, socialgraph.ErrNotSquare},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := socialgraph.FromMatrix(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromMatrix_CopiesInput(t *testing.T) {
	in := [][]bool{{false, true}, {false, false}}
	g, err := socialgraph.FromMatrix(in)
	require.NoError(t, err)

	in[0][1] = false
	in[1][0] = true
	assert.True(t, g.Observes(0, 1), "graph must not alias caller slices")
	assert.False(t, g.Observes(1, 0))
}

func TestFromBinary(t *testing.T) {
	g, err := socialgraph.FromBinary([][]int{
		{0, 1, 1},
		{0, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(1))
	assert.Equal(t, []int{0}, g.Neighbors(2))
	assert.Equal(t, 3, g.EdgeCount())

	_, err = socialgraph.FromBinary([][]int{{0, 2}, {0, 0}})
	assert.ErrorIs(t, err, socialgraph.ErrBadCell)
}

func TestSelfLoopsAreIgnored(t *testing.T) {
	g, err := socialgraph.FromBinary([][]int{
		{1, 1},
		{0, 1},
	})
	require.NoError(t, err)

	assert.False(t, g.Observes(0, 0))
	assert.False(t, g.Observes(1, 1))
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, 0, g.OutDegree(1))
	assert.Equal(t, 1, g.EdgeCount())
	// Matrix reports what was stored, diagonal included.
	assert.Equal(t, [][]int{{1, 1}, {0, 1}}, g.Matrix())
}

func TestConnect(t *testing.T) {
	g, err := socialgraph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.Connect(0, 2))
	require.NoError(t, g.Connect(0, 2))
	assert.Equal(t, 1, g.EdgeCount(), "repeat Connect is idempotent")
	assert.True(t, g.Observes(0, 2))
	assert.False(t, g.Observes(2, 0), "edges are directed")

	assert.ErrorIs(t, g.Connect(-1, 0), socialgraph.ErrVoterOutOfRange)
	assert.ErrorIs(t, g.Connect(0, 3), socialgraph.ErrVoterOutOfRange)
}

func TestOutOfRangeQueries(t *testing.T) {
	g, err := socialgraph.New(2)
	require.NoError(t, err)
	assert.False(t, g.Observes(5, 0))
	assert.Nil(t, g.Neighbors(-1))
	assert.Equal(t, 0, g.OutDegree(9))
}

func TestClone_Independent(t *testing.T) {
	g, err := socialgraph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1))

	c := g.Clone()
	require.NoError(t, c.Connect(1, 0))
	assert.False(t, g.Observes(1, 0))
	assert.True(t, c.Observes(0, 1))
}
