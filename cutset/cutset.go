// Package cutset enumerates the minimal tie sets and minimal cutsets of a
// reliability instance: the inclusion-minimal edge sets that keep the
// terminals mutually connected, and the inclusion-minimal edge sets whose
// removal disconnects them. The two families are found together by a
// grow/shrink loop over unexplored edge subsets proposed by a MaxSAT
// engine: a maximal disconnected subset's complement is a minimal cutset,
// and a shrunk connected subset is a minimal tie set.
package cutset

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"relnet/graph"
)

// EdgeSet holds 1-based edge numbers, matching the edge variables of the
// CNF encoding.
type EdgeSet = mapset.Set[int]

// NewEdgeSet builds an EdgeSet from edge numbers.
func NewEdgeSet(vals ...int) EdgeSet {
	return mapset.NewSet[int](vals...)
}

// Enumerator drives the enumeration over one instance. Ties and Cuts are
// populated by Run; MaxLoop caps the number of seed rounds.
type Enumerator struct {
	Ties    []EdgeSet
	Cuts    []EdgeSet
	MaxLoop int

	g     *graph.Graph
	edges EdgeSet
	seeds *seedSolver
}

// New prepares an enumerator for g.
func New(g *graph.Graph) *Enumerator {
	ids := make([]int, g.M())
	for i := range ids {
		ids[i] = i + 1
	}
	return &Enumerator{
		MaxLoop: 10000,
		g:       g,
		edges:   NewEdgeSet(ids...),
		seeds:   newSeedSolver(ids),
	}
}

// connected reports whether the terminals stay mutually connected using
// only the edges in s.
func (e *Enumerator) connected(s EdgeSet) bool {
	sub := make([]graph.Edge, 0, s.Cardinality())
	for id := range s.Iter() {
		sub = append(sub, e.g.E[id-1])
	}
	return graph.Connected(e.g.N(), sub, e.g.K)
}

// grow extends seed with every edge that keeps the terminals disconnected,
// yielding a maximal disconnected subset.
func (e *Enumerator) grow(seed EdgeSet) EdgeSet {
	for elem := range e.edges.Difference(seed).Iter() {
		trial := seed.Clone()
		trial.Add(elem)
		if !e.connected(trial) {
			seed.Add(elem)
		}
	}
	return seed
}

// shrink removes from seed every edge the connection can do without,
// yielding a minimal connected subset.
func (e *Enumerator) shrink(seed EdgeSet) EdgeSet {
	for elem := range seed.Clone().Iter() {
		trial := seed.Difference(NewEdgeSet(elem))
		if e.connected(trial) {
			seed.Remove(elem)
		}
	}
	return seed
}

// Run enumerates until every edge subset is covered by a found tie or cut.
func (e *Enumerator) Run() error {
	if !e.connected(e.edges) {
		// Terminals are disconnected even with every edge present; the
		// empty set is the only minimal cutset and no tie exists.
		e.Cuts = append(e.Cuts, NewEdgeSet())
		return nil
	}

	loops := 0
	for e.seeds.Solve() {
		if loops >= e.MaxLoop {
			return errors.Errorf("enumeration did not converge after %d rounds", e.MaxLoop)
		}
		seed := e.seeds.Model()
		if e.connected(seed) {
			tie := e.shrink(seed)
			e.Ties = append(e.Ties, tie)
			block := NewEdgeSet()
			for v := range tie.Iter() {
				block.Add(-v)
			}
			e.seeds.AddClause(block)
		} else {
			mss := e.grow(seed)
			cut := e.edges.Difference(mss)
			e.Cuts = append(e.Cuts, cut)
			e.seeds.AddClause(cut)
		}
		loops++
	}
	return nil
}

// Enumerate is the one-shot form of New + Run.
func Enumerate(g *graph.Graph) (ties, cuts []EdgeSet, err error) {
	e := New(g)
	if err := e.Run(); err != nil {
		return nil, nil, err
	}
	return e.Ties, e.Cuts, nil
}
