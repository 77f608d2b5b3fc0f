package reduce

import "relnet/graph"

// Gadget realizes a binary fraction as a chain of probability-½ edges
// between head and tail. Milestone z0 is head; a 1-bit reuses the previous
// milestone and shortcuts it straight to tail, a 0-bit advances the chain
// through a fresh vertex. Fresh ids are taken from counter (skipping the
// tail id) and the advanced counter is returned so callers can thread it
// across edges. With every emitted edge independently present with
// probability ½, head reaches tail with probability exactly BinToFloat(bits).
func Gadget(bits []bool, head, tail, counter int) ([]graph.Edge, int) {
	z := make([]int, 1, len(bits)+1)
	z[0] = head
	for _, bit := range bits {
		if bit {
			z = append(z, z[len(z)-1])
		} else {
			if counter == tail {
				counter++
			}
			z = append(z, counter)
			counter++
		}
	}

	edges := make([]graph.Edge, len(bits))
	for k := 1; k <= len(bits); k++ {
		if bits[k-1] {
			edges[k-1] = graph.Edge{U: z[k-1], V: tail}
		} else {
			edges[k-1] = graph.Edge{U: z[k-1], V: z[k]}
		}
	}
	return edges, counter
}
