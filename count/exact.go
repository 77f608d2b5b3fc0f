package count

import "relnet/cnf"

// Exact computes the satisfying probability mass of c over its independent
// support: for every support assignment, a SAT backend decides whether some
// extension of the remaining variables satisfies the clauses, and the
// uniform mass of the accepted assignments is summed. Exponential in the
// support size; a reference for small instances only. With an empty support
// it falls back to exhaustive brute force.
func Exact(c *cnf.CNF, newSolver func() Solver) float64 {
	if len(c.Ind) == 0 {
		return c.BruteForce()
	}
	total := 0.0
	it := c.Assignments()
	for it.Next() {
		x := it.Assignment()
		s := newSolver()
		for _, clause := range c.Clauses {
			s.AddClause(clause)
		}
		for i, v := range c.Ind {
			if x[i] {
				s.AddClause([]int{v})
			} else {
				s.AddClause([]int{-v})
			}
		}
		if s.Solve() {
			total += c.Prob()
		}
	}
	return total
}
