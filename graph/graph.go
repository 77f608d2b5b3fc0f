// Package graph holds instances of the K-terminal network reliability
// problem: an undirected graph with a terminal set and independent edge
// failure probabilities, plus the line-oriented text format they are
// exchanged in.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Edge is an undirected edge between two vertex ids.
type Edge struct {
	U int
	V int
}

// Graph is an instance of the K-terminal reliability problem. V is the
// vertex set (dense ids from 0), K the terminal set (subset of V, at least
// two entries expected), E the edge list and P the per-edge failure
// probabilities, parallel to E. A Graph is built whole and never mutated;
// transformations produce a new Graph.
type Graph struct {
	V []int
	K []int
	E []Edge
	P []float64
}

// New builds a Graph from its four components. No validation is performed.
func New(V, K []int, E []Edge, P []float64) *Graph {
	return &Graph{V: V, K: K, E: E, P: P}
}

// N is the number of vertices.
func (g *Graph) N() int { return len(g.V) }

// M is the number of edges.
func (g *Graph) M() int { return len(g.E) }

// Write serializes g in the instance text format. External ids are 1-based
// and edges carry the survival probability, not the failure probability.
func (g *Graph) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "p g")
	fmt.Fprint(bw, "T")
	for _, t := range g.K {
		fmt.Fprintf(bw, " %d", t+1)
	}
	fmt.Fprintln(bw)
	for i, e := range g.E {
		fmt.Fprintf(bw, "e %d %d %.12f\n", e.U+1, e.V+1, 1-g.P[i])
	}
	return bw.Flush()
}

// WriteFile writes g to path, creating or truncating the file.
func (g *Graph) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}
	if err := g.Write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write %q", path)
	}
	return errors.Wrapf(f.Close(), "cannot close %q", path)
}
