package xo

import (
	"math"

	"github.com/gosat/vela/z"
)

// Decide picks the Unassigned variable with maximum activity, ties
// broken by smallest variable index, opens a new decision level, and
// assigns it to its last-saved polarity (phase saving). The caller
// must already know an Unassigned variable exists.
//
// The incumbent starts at -Inf (not 0), per spec §9's safety note:
// activities can in principle be non-positive, so seeding at 0 could
// leave the choice undefined.
func (s *Solver) Decide() {
	best := z.VarUndef
	bestActivity := math.Inf(-1)

	for v := z.Var(1); v <= s.MaxVar; v++ {
		if s.Trail.Vals[v] != z.Unassigned {
			continue
		}
		if a := s.Activity.Var[v]; a > bestActivity {
			bestActivity = a
			best = v
		}
	}

	s.Trail.NewDecisionLevel()
	var l z.Lit
	if s.Trail.LastPolarity[best] {
		l = best.Pos()
	} else {
		l = best.Neg()
	}
	s.Trail.Assign(l, s.Trail.DecisionLevel(), CNull)
	s.Decisions++
}
