package reduce

import (
	"github.com/pkg/errors"

	"relnet/graph"
)

// ToUnweighted replaces every edge of g with a gadget of probability-½
// edges whose end-to-end connection probability matches the edge's survival
// probability up to binary truncation. Edges that can never survive are
// dropped. Edges with survival probability exactly 1 are not special-cased
// and fail binarization; the error is returned to the caller. The result
// has vertex set 0..counter-1, the same terminal set as g, and a uniform ½
// failure probability on every edge. g itself is never modified.
func ToUnweighted(g *graph.Graph) (*graph.Graph, error) {
	counter := g.N()
	var E []graph.Edge
	for i, e := range g.E {
		survival := 1 - g.P[i]
		if survival == 0 {
			continue
		}
		bits, err := FloatToBin(survival, DefaultMinBits, DefaultMaxBits, DefaultRelTol)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d (%d, %d)", i, e.U, e.V)
		}
		gadget, next := Gadget(bits, e.U, e.V, counter)
		E = append(E, gadget...)
		counter = next
	}

	V := make([]int, counter)
	for i := range V {
		V[i] = i
	}
	P := make([]float64, len(E))
	for i := range P {
		P[i] = 0.5
	}
	K := append([]int(nil), g.K...)
	return graph.New(V, K, E, P), nil
}
