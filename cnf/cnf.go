// Package cnf stores propositional formulas in conjunctive normal form
// together with an optional independent support, the variable subset an
// approximate model counter should project the count onto.
package cnf

import "math"

// CNF is a clause list in DIMACS conventions: a literal is a 1-based
// variable index, negative for a negated occurrence. N is the largest
// variable index seen at construction, M the clause count and Ind the
// declared independent support (empty means every variable is independent).
// The only mutation is AddClause, which is not safe for concurrent use.
type CNF struct {
	Clauses [][]int
	N       int
	M       int
	Ind     []int
}

// New builds a CNF from clauses and an independent support. ind may be nil;
// callers sharing a support slice across formulas should copy it first.
func New(clauses [][]int, ind []int) *CNF {
	c := &CNF{Clauses: clauses, M: len(clauses), Ind: ind}
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit < 0 {
				lit = -lit
			}
			if lit > c.N {
				c.N = lit
			}
		}
	}
	return c
}

// AddClause appends one clause and bumps M. Literal ranges are not
// validated and N is left untouched.
func (c *CNF) AddClause(clause []int) {
	c.Clauses = append(c.Clauses, clause)
	c.M++
}

// Evaluate reports whether the full assignment x (x[i] is the value of
// variable i+1) satisfies every clause.
func (c *CNF) Evaluate(x []bool) bool {
	for _, clause := range c.Clauses {
		ok := false
		for _, lit := range clause {
			if lit > 0 && x[lit-1] {
				ok = true
				break
			}
			if lit < 0 && !x[-lit-1] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Phi is the projected satisfaction test. With an empty support it is
// Evaluate on a full assignment. Otherwise x assigns exactly the support
// variables, in support order, and Phi holds iff some extension over the
// remaining N-|Ind| variables satisfies the formula. The extension space is
// enumerated exhaustively; this is a correctness reference, not a counting
// method.
func (c *CNF) Phi(x []bool) bool {
	if len(c.Ind) == 0 {
		return c.Evaluate(x)
	}

	inSupport := make([]bool, c.N+1)
	for _, v := range c.Ind {
		inSupport[v] = true
	}
	free := make([]int, 0, c.N-len(c.Ind))
	for v := 1; v <= c.N; v++ {
		if !inSupport[v] {
			free = append(free, v)
		}
	}

	full := make([]bool, c.N)
	for i, v := range c.Ind {
		full[v-1] = x[i]
	}
	it := newAssignmentIter(len(free))
	for it.Next() {
		ext := it.Assignment()
		for i, v := range free {
			full[v-1] = ext[i]
		}
		if c.Evaluate(full) {
			return true
		}
	}
	return false
}

// Prob is the probability mass of a single assignment under the uniform
// model over the effectively free variables: 0.5^N with an empty support,
// 0.5^|Ind| otherwise.
func (c *CNF) Prob() float64 {
	if len(c.Ind) == 0 {
		return math.Pow(0.5, float64(c.N))
	}
	return math.Pow(0.5, float64(len(c.Ind)))
}

// BruteForce sums Prob over every assignment accepted by Phi. Exponential
// in the support size (and in the extension space inside Phi); use only on
// small instances.
func (c *CNF) BruteForce() float64 {
	total := 0.0
	it := c.Assignments()
	for it.Next() {
		if c.Phi(it.Assignment()) {
			total += c.Prob()
		}
	}
	return total
}
