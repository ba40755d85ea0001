package xo

// Restart unassigns every variable, resets the trail to decision level
// 0, and grows the conflict budget geometrically by 1.5x (integer
// arithmetic: x + x/2, floor-equivalent to floor(1.5x) for all
// non-negative x). Activities, learned clauses and phase-saved
// polarities all survive a restart.
//
// Neither teacher's actual restart schedule is reused here (gini uses
// Luby, saturday uses math.Pow-based exponential growth); spec §4.7
// prescribes this specific geometric rule instead. See DESIGN.md's
// Open Question resolutions.
func (s *Solver) Restart() {
	s.Trail.TruncateTo(0)
	s.Trail.TruncateLevelsTo(1)
	s.MaxConflicts = s.MaxConflicts + s.MaxConflicts/2
	s.Restarts++
	s.logf("state=restart next_max_conflicts=%d", s.MaxConflicts)
}
