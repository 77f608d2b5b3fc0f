package cnf

// AssignmentIter enumerates Boolean tuples of a fixed width in binary
// counting order, the leftmost position being most significant. A zero
// width yields exactly one empty tuple.
type AssignmentIter struct {
	cur     []bool
	started bool
	done    bool
}

func newAssignmentIter(width int) *AssignmentIter {
	return &AssignmentIter{cur: make([]bool, width)}
}

// Next advances to the following tuple and reports whether one exists.
func (it *AssignmentIter) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}
	for i := len(it.cur) - 1; i >= 0; i-- {
		if !it.cur[i] {
			it.cur[i] = true
			return true
		}
		it.cur[i] = false
	}
	it.done = true
	return false
}

// Assignment is the current tuple. The slice is reused across Next calls;
// copy it if it must outlive the iteration step.
func (it *AssignmentIter) Assignment() []bool {
	return it.cur
}

// Assignments returns a fresh iterator over all assignments of the
// effectively free variables: 2^|Ind| tuples when a support is declared,
// 2^N otherwise. Each call restarts from the all-false tuple.
func (c *CNF) Assignments() *AssignmentIter {
	if len(c.Ind) > 0 {
		return newAssignmentIter(len(c.Ind))
	}
	return newAssignmentIter(c.N)
}
