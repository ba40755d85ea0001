package xo

import "github.com/gosat/vela/z"

// Activity holds the per-variable and per-learned-clause VSIDS-style
// activity tables and their bump/decay constants (spec §4.4).
//
// Decay here is the direct multiplicative rescale spec.md prescribes
// (every live activity value is scaled on every conflict), not the
// incremental "grow the increment instead of touching every entry"
// optimisation common in production solvers. See DESIGN.md's Open
// Question resolutions.
type Activity struct {
	Var      []float64 // indexed by Var; Var[0] unused
	VarInc   float64
	VarDecay float64

	ClauseInc   float64
	ClauseDecay float64

	maxVar z.Var
}

// NewActivity returns activity tables for variables 1..maxVar, all
// initialised to 1, with the spec-prescribed increments and decays.
func NewActivity(maxVar z.Var) *Activity {
	a := &Activity{
		VarInc:      1.0,
		VarDecay:    0.95,
		ClauseInc:   1.0,
		ClauseDecay: 0.95,
	}
	a.grow(maxVar)
	return a
}

func (a *Activity) grow(maxVar z.Var) {
	if maxVar <= a.maxVar {
		return
	}
	n := int(maxVar) + 1
	vals := make([]float64, n)
	copy(vals, a.Var)
	for v := int(a.maxVar) + 1; v < n; v++ {
		vals[v] = 1
	}
	a.Var = vals
	a.maxVar = maxVar
}

// BumpVar bumps v's activity by the fixed increment.
func (a *Activity) BumpVar(v z.Var) {
	a.Var[v] += a.VarInc
}

// DecayVars scales every variable's activity by the decay factor.
func (a *Activity) DecayVars() {
	for v := z.Var(1); v <= a.maxVar; v++ {
		a.Var[v] *= a.VarDecay
	}
}

// BumpClause bumps a learned clause's activity by the fixed increment.
func (a *Activity) BumpClause(c *Clause) {
	c.Active += a.ClauseInc
}

// DecayClauses scales every live learned clause's activity by the
// decay factor.
func (a *Activity) DecayClauses(db *Cdb) {
	for _, loc := range db.Learnts {
		db.Get(loc).Active *= a.ClauseDecay
	}
}
