package count

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

type giniSolver struct {
	solver *gini.Gini
}

// NewGini returns a fresh gini-backed solver.
func NewGini() Solver {
	return &giniSolver{solver: gini.New()}
}

func (s *giniSolver) AddClause(lits []int) {
	for _, v := range lits {
		if v < 0 {
			s.solver.Add(z.Var(-v).Neg())
		} else if v > 0 {
			s.solver.Add(z.Var(v).Pos())
		} else {
			panic("propositional variable cannot be zero")
		}
	}
	s.solver.Add(0)
}

func (s *giniSolver) Solve() bool {
	return s.solver.Solve() == 1
}
