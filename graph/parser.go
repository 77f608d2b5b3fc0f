package graph

import (
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// The instance format is line oriented: a "p g" problem line, one or more
// "T" terminal lines and one "e" line per edge, in order. Lines starting
// with "c" are comments.

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `c[^\n]*`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

type graphFile struct {
	Lines []graphLine `parser:"(@@ | EOL)*"`
}

type graphLine struct {
	Problem   bool      `parser:"  @'p' 'g' EOL"`
	Terminals []int     `parser:"| 'T' @Int+ EOL"`
	Edge      *edgeLine `parser:"| @@"`
	Comment   bool      `parser:"| @Comment EOL"`
}

type edgeLine struct {
	U        int     `parser:"'e' @Int"`
	V        int     `parser:"@Int"`
	Survival float64 `parser:"@(Float | Int) EOL"`
}

var graphParser = participle.MustBuild[graphFile](
	participle.Lexer(graphLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a reliability instance from its text representation.
// External ids are 1-based; edges carry survival probabilities. The vertex
// set is derived from the edge endpoints and the order of "e" lines fixes
// the edge order.
func Parse(src string) (*Graph, error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	file, err := graphParser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse graph")
	}
	var (
		K []int
		E []Edge
		P []float64
	)
	verts := mapset.NewSet[int]()
	for _, line := range file.Lines {
		switch {
		case line.Edge != nil:
			u, v := line.Edge.U-1, line.Edge.V-1
			E = append(E, Edge{U: u, V: v})
			P = append(P, 1-line.Edge.Survival)
			verts.Add(u)
			verts.Add(v)
		case len(line.Terminals) > 0:
			for _, t := range line.Terminals {
				K = append(K, t-1)
			}
		}
	}
	V := verts.ToSlice()
	sort.Ints(V)
	return New(V, K, E, P), nil
}

// ParseFile reads and parses the instance file at path.
func ParseFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q", path)
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "file %q", path)
	}
	return g, nil
}
