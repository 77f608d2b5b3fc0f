package cutset

import (
	"strconv"

	"github.com/crillab/gophersat/maxsat"
)

// seedSolver proposes unexplored edge subsets, one soft clause per edge so
// proposals are maximal under the blocking clauses added so far. Clause
// sets use signed edge numbers, negative meaning "edge absent".
type seedSolver struct {
	clauses []maxsat.Constr
	vars    []int
	model   map[string]bool
}

func newSeedSolver(vars []int) *seedSolver {
	soft := make([]maxsat.Constr, len(vars))
	for i, v := range vars {
		soft[i] = maxsat.SoftClause(maxsat.Var(strconv.Itoa(v)))
	}
	return &seedSolver{
		clauses: soft,
		vars:    vars,
		model:   make(map[string]bool),
	}
}

func (s *seedSolver) Solve() bool {
	pb := maxsat.New(s.clauses...)
	model, _ := pb.Solve()
	s.model = model
	return model != nil
}

func (s *seedSolver) Model() EdgeSet {
	result := NewEdgeSet()
	for _, v := range s.vars {
		if s.model[strconv.Itoa(v)] {
			result.Add(v)
		}
	}
	return result
}

func (s *seedSolver) AddClause(lits EdgeSet) {
	hard := make([]maxsat.Lit, 0, lits.Cardinality())
	for v := range lits.Iter() {
		if v > 0 {
			hard = append(hard, maxsat.Var(strconv.Itoa(v)))
		} else {
			hard = append(hard, maxsat.Var(strconv.Itoa(-v)).Negation())
		}
	}
	s.clauses = append(s.clauses, maxsat.HardClause(hard...))
}
