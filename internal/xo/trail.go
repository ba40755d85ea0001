package xo

import "github.com/gosat/vela/z"

// Trail is the chronological assignment stack plus the decision-level
// index and the per-variable side tables (§3: decision_level, reason,
// last_polarity). All three are resized together and never reallocated
// after NewTrail, aside from growing when the engine learns of new
// variables during ingestion.
type Trail struct {
	Lits []z.Lit // assigned literals, in assignment order
	Head int     // trail_head: index of next literal to propagate from

	// levelStarts[k] is the trail index at which decision level k
	// begins; level 0 begins at index 0.
	levelStarts []int

	Vals         []z.Value // per-variable assignment, indexed by Var
	Level        []int     // per-variable decision level, -1 if unassigned
	Reason       []CLoc    // per-variable reason clause, CNull if none
	LastPolarity []bool    // per-variable last-assigned polarity (true = positive)

	Assigned int // assigned_vars
}

// NewTrail returns a Trail with tables sized for variables 1..maxVar.
func NewTrail(maxVar z.Var) *Trail {
	n := int(maxVar) + 1
	t := &Trail{
		levelStarts:  []int{0},
		Vals:         make([]z.Value, n),
		Level:        make([]int, n),
		Reason:       make([]CLoc, n),
		LastPolarity: make([]bool, n),
	}
	for v := 1; v < n; v++ {
		t.Level[v] = -1
	}
	return t
}

// grow extends the per-variable tables to cover variables up to and
// including maxVar.
func (t *Trail) grow(maxVar z.Var) {
	n := int(maxVar) + 1
	if n <= len(t.Vals) {
		return
	}
	vals := make([]z.Value, n)
	copy(vals, t.Vals)
	levels := make([]int, n)
	copy(levels, t.Level)
	for v := len(t.Level); v < n; v++ {
		levels[v] = -1
	}
	reasons := make([]CLoc, n)
	copy(reasons, t.Reason)
	pol := make([]bool, n)
	copy(pol, t.LastPolarity)

	t.Vals, t.Level, t.Reason, t.LastPolarity = vals, levels, reasons, pol
}

// DecisionLevel returns the current decision level: len(levelStarts)-1.
func (t *Trail) DecisionLevel() int {
	return len(t.levelStarts) - 1
}

// NewDecisionLevel opens a new decision level starting at the current
// trail length.
func (t *Trail) NewDecisionLevel() {
	t.levelStarts = append(t.levelStarts, len(t.Lits))
}

// LevelStart returns the trail index at which decision level k begins.
func (t *Trail) LevelStart(k int) int {
	return t.levelStarts[k]
}

// NumLevels returns len(levelStarts) (the number of recorded decision
// levels, including level 0).
func (t *Trail) NumLevels() int {
	return len(t.levelStarts)
}

// ValueOf evaluates literal l under the current assignment.
func (t *Trail) ValueOf(l z.Lit) z.Value {
	return z.ValueOf(l, t.Vals)
}

// Assign pushes l onto the trail, assigning its variable at the given
// decision level with the given reason (CNull for decisions and
// top-level units).
func (t *Trail) Assign(l z.Lit, level int, reason CLoc) {
	v := l.Var()
	if l.IsPos() {
		t.Vals[v] = z.True
	} else {
		t.Vals[v] = z.False
	}
	t.Level[v] = level
	t.Reason[v] = reason
	t.LastPolarity[v] = l.IsPos()
	t.Lits = append(t.Lits, l)
	t.Assigned++
}

// TruncateTo shrinks the trail to length n, unassigning every variable
// whose literal is removed. last_polarity is deliberately left intact
// (phase saving survives backjump and restart).
func (t *Trail) TruncateTo(n int) {
	for i := len(t.Lits) - 1; i >= n; i-- {
		v := t.Lits[i].Var()
		t.Vals[v] = z.Unassigned
		t.Level[v] = -1
		t.Reason[v] = CNull
		t.Assigned--
	}
	t.Lits = t.Lits[:n]
	if t.Head > n {
		t.Head = n
	}
}

// TruncateLevelsTo shrinks the decision-level index to n entries.
func (t *Trail) TruncateLevelsTo(n int) {
	t.levelStarts = t.levelStarts[:n]
}
