// Package encode turns an unweighted reliability instance into a CNF whose
// satisfying assignments are exactly the edge-presence patterns that leave
// the terminals disconnected. Counting those models therefore measures
// unreliability, not reliability.
package encode

import (
	"relnet/cnf"
	"relnet/graph"
	"relnet/reduce"
)

// Unreliability encodes an unweighted graph (every edge present with
// probability ½). Variables 1..m are edge states, m+1..m+n vertex marks; a
// mark is true when the vertex is reachable from the connectivity root
// through present edges. The declared independent support is the m edge
// variables. The caller must supply at least two terminals; with fewer the
// emitted clauses are meaningless. With more than two terminals the
// constraint is the weaker "not all marks equal", a known fidelity gap
// versus true K-terminal semantics.
func Unreliability(g *graph.Graph) *cnf.CNF {
	m := g.M()
	mark := func(v int) int { return v + 1 + m }

	var clauses [][]int
	if len(g.K) == 2 {
		clauses = append(clauses, []int{mark(g.K[0])})
		clauses = append(clauses, []int{-mark(g.K[1])})
	} else {
		pos := make([]int, len(g.K))
		neg := make([]int, len(g.K))
		for i, t := range g.K {
			pos[i] = mark(t)
			neg[i] = -mark(t)
		}
		clauses = append(clauses, pos, neg)
	}

	// A present edge forces its endpoint marks to agree.
	for i, e := range g.E {
		uv := i + 1
		clauses = append(clauses,
			[]int{-mark(e.U), -uv, mark(e.V)},
			[]int{mark(e.U), -uv, -mark(e.V)},
		)
	}

	ind := make([]int, m)
	for i := range ind {
		ind[i] = i + 1
	}
	return cnf.New(clauses, ind)
}

// FromWeighted reduces a weighted instance to the unweighted form and
// encodes it.
func FromWeighted(g *graph.Graph) (*cnf.CNF, error) {
	ug, err := reduce.ToUnweighted(g)
	if err != nil {
		return nil, err
	}
	return Unreliability(ug), nil
}
