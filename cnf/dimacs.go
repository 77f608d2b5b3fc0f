package cnf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Independent-support variables are declared in "c ind" comment lines of at
// most ten variables each, the convention ApproxMC reads.
const indChunk = 10

// Write serializes c in DIMACS: the "p cnf" header, the "c ind" lines when
// a support is declared, then one line per clause with a trailing 0.
func (c *CNF) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", c.N, c.M)
	for start := 0; start < len(c.Ind); start += indChunk {
		end := start + indChunk
		if end > len(c.Ind) {
			end = len(c.Ind)
		}
		bw.WriteString("c ind")
		for _, v := range c.Ind[start:end] {
			fmt.Fprintf(bw, " %d", v)
		}
		bw.WriteString(" 0\n")
	}
	for _, clause := range c.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(bw, "%d ", lit)
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}

// WriteFile writes c to path, creating or truncating the file.
func (c *CNF) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write %q", path)
	}
	return errors.Wrapf(f.Close(), "cannot close %q", path)
}

// Parse reads a DIMACS formula. The "p cnf" keyword is checked, "c ind"
// lines accumulate the independent support, any other "c" line is a comment
// and every remaining non-blank line is a clause terminated by 0.
func Parse(r io.Reader) (*CNF, error) {
	var (
		clauses [][]int
		ind     []int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "p"):
			fields := strings.Fields(line)
			if len(fields) < 2 || fields[1] != "cnf" {
				return nil, errors.Errorf("not a cnf problem line: %q", line)
			}
		case strings.HasPrefix(line, "c ind "):
			vars, err := intFields(dropSentinel(strings.Fields(line)[2:]))
			if err != nil {
				return nil, errors.Wrapf(err, "bad ind line %q", line)
			}
			ind = append(ind, vars...)
		case strings.HasPrefix(line, "c"):
		default:
			lits, err := intFields(dropSentinel(strings.Fields(line)))
			if err != nil {
				return nil, errors.Wrapf(err, "bad clause line %q", line)
			}
			clauses = append(clauses, lits)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read cnf")
	}
	return New(clauses, ind), nil
}

// ParseFile reads and parses the DIMACS file at path.
func ParseFile(path string) (*CNF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q", path)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "file %q", path)
	}
	return c, nil
}

// dropSentinel strips the trailing "0" terminator.
func dropSentinel(fields []string) []string {
	if len(fields) > 0 && fields[len(fields)-1] == "0" {
		return fields[:len(fields)-1]
	}
	return fields
}

func intFields(fields []string) ([]int, error) {
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bad literal %q", f)
		}
		vals[i] = v
	}
	return vals, nil
}
