package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnet/cnf"
	"relnet/encode"
	"relnet/graph"
)

func pathInstance(t *testing.T) *cnf.CNF {
	g := graph.New(
		[]int{0, 1, 2, 3},
		[]int{0, 3},
		[]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}},
		[]float64{0.5, 0.5, 0.5},
	)
	c, err := encode.FromWeighted(g)
	require.NoError(t, err)
	return c
}

func TestExactPathUnreliability(t *testing.T) {
	// The three-edge path connects its endpoints only when all edges are
	// up, so the disconnection mass is 7/8.
	c := pathInstance(t)
	assert.InDelta(t, 0.875, c.BruteForce(), 1e-12)
	assert.InDelta(t, 0.875, Exact(c, NewGini), 1e-12)
	assert.InDelta(t, 0.875, Exact(c, NewGophersat), 1e-12)
}

func TestExactParallelEdges(t *testing.T) {
	// Two parallel edges between the terminals fail together with
	// probability 1/4.
	g := graph.New(
		[]int{0, 1},
		[]int{0, 1},
		[]graph.Edge{{U: 0, V: 1}, {U: 0, V: 1}},
		[]float64{0.5, 0.5},
	)
	c, err := encode.FromWeighted(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, c.BruteForce(), 1e-12)
	assert.InDelta(t, 0.25, Exact(c, NewGini), 1e-12)
	assert.InDelta(t, 0.25, Exact(c, NewGophersat), 1e-12)
}

func TestExactWithoutSupport(t *testing.T) {
	c := cnf.New([][]int{{1, -2}, {-1, 2}}, nil)
	assert.InDelta(t, c.BruteForce(), Exact(c, NewGini), 1e-12)
}

func TestBackendsAgree(t *testing.T) {
	c := pathInstance(t)
	assert.InDelta(t, Exact(c, NewGini), Exact(c, NewGophersat), 1e-12)
}
