package xo

import "github.com/gosat/vela/z"

// Propagate runs BCP to a fixed point. It returns CNull once
// trail_head has caught up to the end of the trail with no conflict,
// or the handle of a conflicting clause (all of whose literals are
// False) the moment one is found.
//
// Grounded on EricR-saturday/solver/clause.go's propagate and
// solver_propagation.go's propagate/enqueue loop, restructured around
// an explicit two-index watch list (spec §4.2) instead of a map keyed
// by literal.
func (s *Solver) Propagate() CLoc {
	trail := s.Trail
	watches := s.Watches
	cdb := s.Cdb

	for trail.Head < len(trail.Lits) {
		l := trail.Lits[trail.Head]
		negL := l.Not()

		i := 0
		for i < len(watches.lists[negL]) {
			loc := watches.lists[negL][i]
			c := cdb.Get(loc)

			var negLPos int
			if c.Lits[c.Watch1] == negL {
				negLPos = c.Watch1
			} else {
				negLPos = c.Watch2
			}
			otherPos := c.Watch1 + c.Watch2 - negLPos
			w := c.Lits[otherPos]

			if trail.ValueOf(w) == z.True {
				i++
				continue
			}

			moved := false
			for k := 0; k < len(c.Lits); k++ {
				if k == c.Watch1 || k == c.Watch2 {
					continue
				}
				x := c.Lits[k]
				if trail.ValueOf(x) != z.False {
					if negLPos == c.Watch1 {
						c.Watch1 = k
					} else {
						c.Watch2 = k
					}
					watches.Add(x, loc)
					watches.RemoveAt(negL, i)
					moved = true
					break
				}
			}
			if moved {
				continue // slot i now holds the swapped-in entry
			}

			if trail.ValueOf(w) == z.False {
				return loc
			}

			// w is Unassigned: propagate it.
			trail.Assign(w, trail.DecisionLevel(), loc)
			s.Propagations++
			s.logf("state=propagate lit=%s reason=%d", w, loc)
			i++
		}
		trail.Head++
	}
	return CNull
}
