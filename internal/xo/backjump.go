package xo

import "github.com/gosat/vela/z"

// Backjump takes the asserting clause R produced by Analyze, installs
// it in the clause database, truncates the trail to the second-highest
// level in R, and enqueues the UIP literal as an implication of the
// newly-installed clause. It then runs the post-conflict maintenance
// hooks spec §4.5 ties to backjumping: periodic reduce-DB, and restart
// once the conflict budget is exhausted.
//
// Grounded on EricR-saturday/solver/solver.go's record (clause install
// + watch registration) and gini/s.go's Driver.Derive (backjump-then-
// enqueue idiom); the specific truncation arithmetic and post-hook
// triggers follow spec §4.5/§4.6/§4.7 literally.
func (s *Solver) Backjump(r []z.Lit) {
	trail := s.Trail
	level := trail.DecisionLevel()

	uipPos := -1
	secondLevel := 0
	for i, l := range r {
		lv := trail.Level[l.Var()]
		if lv == level {
			uipPos = i
			continue
		}
		if lv > secondLevel {
			secondLevel = lv
		}
	}
	uip := r[uipPos]

	var truncIdx int
	if secondLevel+1 < trail.NumLevels() {
		truncIdx = trail.LevelStart(secondLevel + 1)
	} else {
		truncIdx = len(trail.Lits)
	}
	trail.TruncateTo(truncIdx)
	trail.TruncateLevelsTo(secondLevel + 1)

	if len(r) >= 2 {
		r[0], r[uipPos] = r[uipPos], r[0]
	}
	loc := s.Cdb.AddLearnt(r)
	if len(r) >= 2 {
		c := s.Cdb.Get(loc)
		c.Watch1, c.Watch2 = 0, 1
		s.Watches.Add(r[0], loc)
		s.Watches.Add(r[1], loc)
	} else {
		s.Watches.Add(r[0], loc)
	}
	s.LearnedLiterals += len(r)

	trail.Assign(uip, trail.DecisionLevel(), loc)
	trail.Head = len(trail.Lits) - 1

	if s.NumConflicts != 0 && s.NumConflicts%s.ReductionThreshold == 0 {
		s.ReduceDB()
	}
	if s.NumConflicts >= s.MaxConflicts {
		s.Restart()
	}
}
