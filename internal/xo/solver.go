package xo

import (
	"log"

	"github.com/gosat/vela/z"
)

// Solver holds every piece of engine state: the clause arena, watch
// index, trail, activity tables, and the ambient counters and trace
// logger threaded through the search driver's state machine.
//
// Grounded on go-air-gini/s.go's Solver (the "one struct owns
// everything, methods are the state transitions" shape) and
// EricR-saturday/solver/solver.go's field grouping; the incremental-
// solving machinery both teachers carry (assumption stacks, mutexes,
// push/pop) is not part of this shape, since incremental solving is
// out of scope here.
type Solver struct {
	MaxVar z.Var

	Cdb      *Cdb
	Watches  *Watches
	Trail    *Trail
	Activity *Activity

	seenBuf []bool // indexed by packed literal, size 2*MaxVar

	ok bool // false once an empty or falsified unit clause is seen

	MaxConflicts       int
	ReductionThreshold int
	NumConflicts       int

	Decisions       int
	Propagations    int
	Restarts        int
	Reductions      int
	LearnedLiterals int

	Logger *log.Logger
}

// NewSolver returns an empty solver ready to accept clauses over
// variables 1..N, growing its tables lazily as AddClause sees larger
// variable indices.
func NewSolver() *Solver {
	return &Solver{
		Cdb:                NewCdb(),
		Watches:            NewWatches(0),
		Trail:              NewTrail(0),
		Activity:           NewActivity(0),
		ok:                 true,
		MaxConflicts:       100,
		ReductionThreshold: 3000,
	}
}

// SetLogger attaches a trace logger; nil (the default) disables
// tracing entirely.
func (s *Solver) SetLogger(l *log.Logger) {
	s.Logger = l
}

func (s *Solver) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// growTo extends every per-variable and per-literal table to cover v.
func (s *Solver) growTo(v z.Var) {
	if v <= s.MaxVar {
		return
	}
	s.MaxVar = v
	s.Watches.grow(v)
	s.Trail.grow(v)
	s.Activity.grow(v)

	need := litCap(v)
	if need > len(s.seenBuf) {
		buf := make([]bool, need)
		copy(buf, s.seenBuf)
		s.seenBuf = buf
	}
}

// Grow ensures the solver's tables cover variables up to and including
// v, even if v never appears in a clause. The dimacs reader calls this
// with the variable count from the "p cnf N M" header, since a
// declared variable that never appears in any clause is still part of
// the model.
func (s *Solver) Grow(v z.Var) {
	s.growTo(v)
}

// AddClause ingests one clause. lits is assumed already deduplicated
// and tautology-free (the dimacs reader's job); AddClause only grows
// tables, installs watches for clauses of two or more literals, and
// handles unit and empty clauses directly.
//
// A conflicting unit clause (one whose literal is already False at
// level 0) or an empty clause both mark the solver permanently
// unsatisfiable: Solve will report UNSAT without ever searching.
func (s *Solver) AddClause(lits []z.Lit) {
	if !s.ok {
		return
	}
	for _, l := range lits {
		if l.Var() > s.MaxVar {
			s.growTo(l.Var())
		}
	}

	switch len(lits) {
	case 0:
		s.ok = false
	case 1:
		l := lits[0]
		switch s.Trail.ValueOf(l) {
		case z.False:
			s.ok = false
		case z.Unassigned:
			s.Trail.Assign(l, 0, CNull)
		}
	default:
		loc := s.Cdb.AddOriginal(lits)
		c := s.Cdb.Get(loc)
		c.Watch1, c.Watch2 = 0, 1
		s.Watches.Add(lits[0], loc)
		s.Watches.Add(lits[1], loc)
	}
}

// Value reports v's current assignment.
func (s *Solver) Value(v z.Var) z.Value {
	return s.Trail.Vals[v]
}

// Solve runs the CDCL search loop to completion: propagate to a fixed
// point; on conflict, analyze and backjump (or report UNSAT if the
// conflict survives to level 0); otherwise decide, or report SAT once
// every variable is assigned.
func (s *Solver) Solve() bool {
	if !s.ok {
		s.logf("state=done result=UNSAT reason=trivial")
		return false
	}

	for {
		confl := s.Propagate()
		if confl != CNull {
			s.NumConflicts++
			s.logf("state=conflict clause=%d level=%d", confl, s.Trail.DecisionLevel())
			if s.Trail.DecisionLevel() == 0 {
				s.logf("state=done result=UNSAT")
				return false
			}
			r := s.Analyze(confl)
			s.logf("state=learn width=%d conflicts=%d", len(r), s.NumConflicts)
			s.Backjump(r)
			s.logf("state=backjump level=%d", s.Trail.DecisionLevel())
			continue
		}

		if s.Trail.Assigned == int(s.MaxVar) {
			s.logf("state=done result=SAT")
			return true
		}

		s.Decide()
		s.logf("state=decide level=%d lit=%s", s.Trail.DecisionLevel(), s.Trail.Lits[len(s.Trail.Lits)-1])
	}
}
