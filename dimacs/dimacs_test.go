package dimacs

import (
	"strings"
	"testing"

	"github.com/gosat/vela/internal/xo"
	"github.com/gosat/vela/z"
)

func TestReadCNFParsesHeaderAndClauses(t *testing.T) {
	src := `c a comment
p cnf 3 2
1 -2 0
c another comment
2 3 0
`
	s := xo.NewSolver()
	nv, nc, err := ReadCNF(strings.NewReader(src), s)
	if err != nil {
		t.Fatalf("ReadCNF error: %s", err)
	}
	if nv != 3 || nc != 2 {
		t.Fatalf("header = %d %d, want 3 2", nv, nc)
	}
	if !s.Solve() {
		t.Fatalf("expected SAT")
	}
}

func TestReadCNFDropsTautologies(t *testing.T) {
	src := "p cnf 2 1\n1 -1 2 0\n"
	s := xo.NewSolver()
	if _, _, err := ReadCNF(strings.NewReader(src), s); err != nil {
		t.Fatalf("ReadCNF error: %s", err)
	}
	// the sole clause is a tautology and must be dropped, leaving an
	// empty (trivially satisfiable) formula.
	if !s.Solve() {
		t.Fatalf("expected SAT (tautology dropped)")
	}
}

func TestReadCNFDedupsWithinClause(t *testing.T) {
	src := "p cnf 1 1\n1 1 1 0\n"
	s := xo.NewSolver()
	if _, _, err := ReadCNF(strings.NewReader(src), s); err != nil {
		t.Fatalf("ReadCNF error: %s", err)
	}
	if !s.Solve() {
		t.Fatalf("expected SAT")
	}
	if s.Value(z.Var(1)) != z.True {
		t.Errorf("var 1 = %v, want True", s.Value(z.Var(1)))
	}
}

func TestReadCNFEmptyClauseIsUnsat(t *testing.T) {
	src := "p cnf 1 1\n0\n"
	s := xo.NewSolver()
	if _, _, err := ReadCNF(strings.NewReader(src), s); err != nil {
		t.Fatalf("ReadCNF error: %s", err)
	}
	if s.Solve() {
		t.Fatalf("expected UNSAT")
	}
}

func TestReadCNFMalformedLiteral(t *testing.T) {
	src := "p cnf 1 1\n1 x 0\n"
	s := xo.NewSolver()
	if _, _, err := ReadCNF(strings.NewReader(src), s); err == nil {
		t.Fatalf("expected an error for a malformed literal")
	}
}

func TestReadCNFMissingHeader(t *testing.T) {
	src := "1 2 0\n"
	s := xo.NewSolver()
	if _, _, err := ReadCNF(strings.NewReader(src), s); err == nil {
		t.Fatalf("expected an error for a clause before the header")
	}
}

func TestReadCNFDeclaredVarsWithNoClauses(t *testing.T) {
	src := "p cnf 4 1\n1 2 0\n"
	s := xo.NewSolver()
	nv, _, err := ReadCNF(strings.NewReader(src), s)
	if err != nil {
		t.Fatalf("ReadCNF error: %s", err)
	}
	if nv != 4 {
		t.Fatalf("numVars = %d, want 4", nv)
	}
	if s.MaxVar != 4 {
		t.Errorf("solver MaxVar = %d, want 4 (from the header, even though vars 3,4 never appear)", s.MaxVar)
	}
}
