// Package dimacs reads the DIMACS CNF format into a solver.
package dimacs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/gosat/vela/internal/xo"
	"github.com/gosat/vela/z"
)

// ReadCNF reads a DIMACS CNF file from r and feeds every clause to s.
// It returns the variable and clause counts declared by the "p cnf N
// M" header. Comment lines ("c ...") are skipped; a clause line is
// deduplicated within itself, and a clause containing a literal and
// its negation is a tautology and is dropped rather than added.
//
// Grounded on EricR-saturday/encoding/dimacs.go's bufio.Scanner +
// bytes.Fields + strconv.Atoi shape; header parsing and per-clause
// dedup/tautology handling are new, since saturday's reader does
// neither (it hands raw int sentences back to its caller).
func ReadCNF(r io.Reader, s *xo.Solver) (numVars, numClauses int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	headerSeen := false
	line := 0

	for scanner.Scan() {
		line++
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}
		switch string(fields[0]) {
		case "c":
			continue
		case "p":
			n, m, perr := parseHeader(fields, line)
			if perr != nil {
				return 0, 0, perr
			}
			numVars, numClauses = n, m
			headerSeen = true
			if n > 0 {
				s.Grow(z.Var(n))
			}
		default:
			if !headerSeen {
				return 0, 0, fmt.Errorf("dimacs: line %d: clause before header", line)
			}
			lits, tautology, perr := parseClause(fields, line)
			if perr != nil {
				return 0, 0, perr
			}
			if tautology {
				continue
			}
			s.AddClause(lits)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("dimacs: %w", err)
	}
	if !headerSeen {
		return 0, 0, fmt.Errorf("dimacs: missing \"p cnf\" header")
	}
	return numVars, numClauses, nil
}

func parseHeader(fields [][]byte, line int) (numVars, numClauses int, err error) {
	if len(fields) < 4 || string(fields[1]) != "cnf" {
		return 0, 0, fmt.Errorf("dimacs: line %d: malformed header %q", line, bytes.Join(fields, []byte(" ")))
	}
	numVars, err = strconv.Atoi(string(fields[2]))
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: bad variable count: %w", line, err)
	}
	numClauses, err = strconv.Atoi(string(fields[3]))
	if err != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: bad clause count: %w", line, err)
	}
	return numVars, numClauses, nil
}

func parseClause(fields [][]byte, line int) (lits []z.Lit, tautology bool, err error) {
	seen := make(map[z.Lit]bool, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(string(f))
		if err != nil {
			return nil, false, fmt.Errorf("dimacs: line %d: malformed literal %q: %w", line, f, err)
		}
		if n == 0 {
			return lits, false, nil
		}
		l := z.DimacsToLit(n)
		if seen[l.Not()] {
			return nil, true, nil
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		lits = append(lits, l)
	}
	return nil, false, fmt.Errorf("dimacs: line %d: clause not terminated by 0", line)
}
