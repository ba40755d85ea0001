package xo

// ReduceDB discards the bottom half (by activity) of learned clauses,
// skipping any clause currently locked as the reason for its own
// first literal. Grounded on EricR-saturday/solver/solver_db.go's
// reduceDB; the extra Len()>2 / activity-below-limit conditions
// saturday applies are not carried over, since spec §4.6 states the
// rule with no such thresholds.
func (s *Solver) ReduceDB() {
	cdb := s.Cdb
	cdb.sortLearntsByActivity()

	half := len(cdb.Learnts) / 2
	kept := make([]CLoc, 0, len(cdb.Learnts))
	for i, loc := range cdb.Learnts {
		c := cdb.Get(loc)
		locked := s.Trail.Reason[c.Lits[0].Var()] == loc
		if i < half && !locked {
			s.unwatch(c, loc)
			cdb.free(loc)
			continue
		}
		kept = append(kept, loc)
	}
	dropped := len(cdb.Learnts) - len(kept)
	cdb.Learnts = kept
	s.Reductions++
	s.logf("state=reduce kept=%d dropped=%d", len(kept), dropped)
}

func (s *Solver) unwatch(c *Clause, loc CLoc) {
	if len(c.Lits) >= 2 {
		s.Watches.Remove(c.Lits[c.Watch1], loc)
		s.Watches.Remove(c.Lits[c.Watch2], loc)
		return
	}
	s.Watches.Remove(c.Lits[0], loc)
}
