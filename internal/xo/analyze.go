package xo

import "github.com/gosat/vela/z"

// Analyze performs first-UIP resolution starting from the conflict
// clause at confl, which sits at the current decision level L (L >= 1).
// It returns the resulting asserting clause R, with exactly one literal
// at level L (the UIP), and bumps variable/clause activities along the
// way.
//
// Grounded on EricR-saturday/solver/solver_analysis.go's analyze for
// the general "walk the trail backward, resolve on seen variables"
// shape; the exact seen-table indexing (by packed literal, not by
// variable) and termination condition (current_level_count == 1) follow
// spec §4.4 literally, since it differs from saturday's variable-keyed
// seen table and level-0-cutoff counter.
func (s *Solver) Analyze(confl CLoc) []z.Lit {
	trail := s.Trail
	activity := s.Activity
	level := trail.DecisionLevel()

	seen := s.seenBuf
	for i := range seen {
		seen[i] = false
	}

	c := s.Cdb.Get(confl)
	activity.BumpClause(c)

	var r []z.Lit
	currentLevelCount := 0
	for _, m := range c.Lits {
		if seen[m] {
			continue
		}
		seen[m] = true
		activity.BumpVar(m.Var())
		r = append(r, m)
		if trail.Level[m.Var()] == level {
			currentLevelCount++
		}
	}

	for i := len(trail.Lits) - 1; ; i-- {
		if currentLevelCount == 1 {
			break
		}
		t := trail.Lits[i]
		if !seen[t.Not()] {
			continue
		}
		reason := trail.Reason[t.Var()]
		if reason == CNull {
			// t is a decision variable: its negation stays in R.
			continue
		}
		d := s.Cdb.Get(reason)
		activity.BumpClause(d)
		for _, m := range d.Lits {
			if m == t || seen[m] {
				continue
			}
			seen[m] = true
			activity.BumpVar(m.Var())
			r = append(r, m)
			if trail.Level[m.Var()] == level {
				currentLevelCount++
			}
		}
		if trail.Level[t.Var()] == level {
			currentLevelCount--
		}
		seen[t.Not()] = false
		r = removeLit(r, t.Not())
	}

	activity.DecayVars()
	activity.DecayClauses(s.Cdb)

	return r
}

func removeLit(lits []z.Lit, l z.Lit) []z.Lit {
	for i, m := range lits {
		if m == l {
			last := len(lits) - 1
			lits[i] = lits[last]
			return lits[:last]
		}
	}
	return lits
}
