package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnet/graph"
)

func pathGraph() *graph.Graph {
	return graph.New(
		[]int{0, 1, 2, 3},
		[]int{0, 3},
		[]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}},
		[]float64{0.5, 0.5, 0.5},
	)
}

func TestUnreliabilityTwoTerminals(t *testing.T) {
	c := Unreliability(pathGraph())

	assert.Equal(t, 7, c.N)
	assert.Equal(t, 8, c.M)
	assert.Equal(t, []int{1, 2, 3}, c.Ind)

	expect := [][]int{
		{4},
		{-7},
		{-4, -1, 5}, {4, -1, -5},
		{-5, -2, 6}, {5, -2, -6},
		{-6, -3, 7}, {6, -3, -7},
	}
	assert.Equal(t, expect, c.Clauses)
}

func TestUnreliabilityManyTerminals(t *testing.T) {
	g := graph.New(
		[]int{0, 1, 2},
		[]int{0, 1, 2},
		[]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}},
		[]float64{0.5, 0.5, 0.5},
	)
	c := Unreliability(g)
	// Weaker "not all marks equal" form: one positive and one negative
	// clause over the terminal marks.
	assert.Equal(t, []int{4, 5, 6}, c.Clauses[0])
	assert.Equal(t, []int{-4, -5, -6}, c.Clauses[1])
	assert.Equal(t, 8, c.M)
	assert.Equal(t, []int{1, 2, 3}, c.Ind)
}

func TestFromWeighted(t *testing.T) {
	c, err := FromWeighted(pathGraph())
	require.NoError(t, err)
	assert.Equal(t, 7, c.N)
	assert.Equal(t, 8, c.M)
	assert.Equal(t, []int{1, 2, 3}, c.Ind)
}

func TestFromWeightedPropagatesReductionError(t *testing.T) {
	g := graph.New([]int{0, 1}, []int{0, 1}, []graph.Edge{{U: 0, V: 1}}, []float64{0})
	_, err := FromWeighted(g)
	assert.Error(t, err)
}
