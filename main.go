package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"relnet/count"
	"relnet/cutset"
	"relnet/encode"
	"relnet/graph"
)

type options struct {
	runCounter bool
	counter    count.ApproxMC
	exact      bool
	backend    string
	cutsets    bool
}

func newRootCmd() *cobra.Command {
	opts := options{counter: count.DefaultApproxMC()}
	cmd := &cobra.Command{
		Use:   "relnet <graph-file> <output-cnf>",
		Short: "Encode K-terminal network reliability as projected model counting",
		Long: "relnet reduces a K-terminal network reliability instance to an\n" +
			"unweighted CNF model-counting problem with a declared independent\n" +
			"support, ready for an approximate model counter such as ApproxMC.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], args[1])
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.runCounter, "count", false, "run the approximate counter on the encoded file")
	flags.StringVar(&opts.counter.Path, "approxmc", opts.counter.Path, "approximate counter binary")
	flags.Float64Var(&opts.counter.Epsilon, "epsilon", opts.counter.Epsilon, "counter tolerance epsilon")
	flags.Float64Var(&opts.counter.Delta, "delta", opts.counter.Delta, "counter confidence delta")
	flags.BoolVar(&opts.exact, "exact", false, "also compute the exact unreliability by enumeration (small instances only)")
	flags.StringVar(&opts.backend, "backend", "gini", "SAT backend for --exact (gini or gophersat)")
	flags.BoolVar(&opts.cutsets, "cutsets", false, "list the minimal cutsets and tie sets of the instance")
	return cmd
}

func run(opts options, graphPath, cnfPath string) error {
	g, err := graph.ParseFile(graphPath)
	if err != nil {
		return err
	}
	c, err := encode.FromWeighted(g)
	if err != nil {
		return err
	}
	if err := c.WriteFile(cnfPath); err != nil {
		return err
	}
	log.Infof("CNF file %q saved", cnfPath)
	log.Infof("number of sampling variables is %d", len(c.Ind))

	if opts.cutsets {
		ties, cuts, err := cutset.Enumerate(g)
		if err != nil {
			return err
		}
		printEdgeSets("tie set", ties)
		printEdgeSets("cutset", cuts)
	}

	if opts.exact {
		var backend func() count.Solver
		switch opts.backend {
		case "gini":
			backend = count.NewGini
		case "gophersat":
			backend = count.NewGophersat
		default:
			return fmt.Errorf("unknown backend %q", opts.backend)
		}
		fmt.Printf("exact unreliability: %.12f\n", count.Exact(c, backend))
	}

	if opts.runCounter {
		out, err := opts.counter.Count(cnfPath)
		if err != nil {
			return err
		}
		fmt.Print(tail(out, 2))
		return nil
	}
	log.Infof("for counting issue: approxmc %s", cnfPath)
	return nil
}

func printEdgeSets(kind string, sets []cutset.EdgeSet) {
	for _, s := range sets {
		edges := s.ToSlice()
		sort.Ints(edges)
		fmt.Printf("%s: %v\n", kind, edges)
	}
}

// tail keeps the last n non-empty lines of s.
func tail(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
