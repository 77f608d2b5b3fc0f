// Package count computes reference counts for encoded instances: an
// exhaustive brute force, an exact projected count backed by an in-process
// SAT engine, and a wrapper around the external ApproxMC binary for
// instances the first two cannot touch.
package count

// Solver is the minimal SAT facade shared by the gini and gophersat
// backends. Clauses use DIMACS literal conventions; zero literals are
// invalid.
type Solver interface {
	AddClause(lits []int)
	Solve() bool
}
