package count

import "github.com/crillab/gophersat/solver"

type gophersatSolver struct {
	clauses [][]int
}

// NewGophersat returns a fresh gophersat-backed solver.
func NewGophersat() Solver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) AddClause(lits []int) {
	clause := append([]int(nil), lits...)
	s.clauses = append(s.clauses, clause)
}

func (s *gophersatSolver) Solve() bool {
	pb := solver.ParseSlice(s.clauses)
	return solver.New(pb).Solve() == solver.Sat
}
