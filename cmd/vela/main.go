// Command vela reads a DIMACS CNF instance and reports SATISFIABLE or
// UNSATISFIABLE.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gosat/vela/dimacs"
	"github.com/gosat/vela/internal/xo"
	"github.com/gosat/vela/z"
)

var (
	verbose = flag.Bool("v", false, "trace decisions, propagations, conflicts, learned clauses, restarts and reductions to stderr")
	stats   = flag.Bool("stats", false, "print solver statistics to stderr after solving")
	model   = flag.Bool("model", false, "print a satisfying assignment when SAT")
)

func main() {
	flag.Usage = func() {
		p := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file.cnf]\n\n"+
			"Reads a DIMACS CNF instance from file.cnf, or from stdin if no\n"+
			"file is given, and reports SATISFIABLE or UNSATISFIABLE.\n\n", p)
		flag.PrintDefaults()
	}
	flag.Parse()

	r, closer, err := openInput()
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	s := xo.NewSolver()
	if *verbose {
		s.SetLogger(log.New(os.Stderr, "c ", log.Ltime))
	}

	start := time.Now()
	numVars, numClauses, err := dimacs.ReadCNF(r, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sat := s.Solve()
	dur := time.Since(start)

	if *stats {
		printStats(s, numVars, numClauses, dur)
	}

	if sat {
		fmt.Println("SATISFIABLE")
		if *model {
			printModel(s, z.Var(numVars))
		}
	} else {
		fmt.Println("UNSATISFIABLE")
	}
	os.Exit(0)
}

func openInput() (io.Reader, io.Closer, error) {
	if flag.NArg() == 0 || flag.Arg(0) == "-" {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func printModel(s *xo.Solver, maxVar z.Var) {
	for v := z.Var(1); v <= maxVar; v++ {
		l := v.Pos()
		if s.Value(v) == z.False {
			l = v.Neg()
		}
		fmt.Printf("%s ", l)
	}
	fmt.Println("0")
}

func printStats(s *xo.Solver, numVars, numClauses int, dur time.Duration) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "time:         %s\n", dur)
	fmt.Fprintf(os.Stderr, "variables:    %d\n", numVars)
	fmt.Fprintf(os.Stderr, "clauses:      %d\n", numClauses)
	fmt.Fprintf(os.Stderr, "decisions:    %d\n", s.Decisions)
	fmt.Fprintf(os.Stderr, "propagations: %d\n", s.Propagations)
	fmt.Fprintf(os.Stderr, "conflicts:    %d\n", s.NumConflicts)
	fmt.Fprintf(os.Stderr, "restarts:     %d\n", s.Restarts)
	fmt.Fprintf(os.Stderr, "reductions:   %d\n", s.Reductions)
	fmt.Fprintf(os.Stderr, "learned lits: %d\n", s.LearnedLiterals)
}
