package xo

import (
	"testing"

	"github.com/gosat/vela/z"
)

func TestActivityBumpVar(t *testing.T) {
	a := NewActivity(3)
	a.BumpVar(z.Var(1))
	a.BumpVar(z.Var(1))
	if a.Var[1] != 1+2*a.VarInc {
		t.Errorf("Var[1] = %v, want %v", a.Var[1], 1+2*a.VarInc)
	}
}

func TestActivityDecayVars(t *testing.T) {
	a := NewActivity(2)
	a.Var[1] = 10
	a.Var[2] = 20
	a.DecayVars()
	if a.Var[1] != 10*a.VarDecay || a.Var[2] != 20*a.VarDecay {
		t.Errorf("DecayVars = %v %v, want %v %v", a.Var[1], a.Var[2], 10*a.VarDecay, 20*a.VarDecay)
	}
}

func TestActivityBumpAndDecayClause(t *testing.T) {
	a := NewActivity(1)
	c := &Clause{Lits: []z.Lit{z.Var(1).Pos()}, Learnt: true}
	a.BumpClause(c)
	if c.Active != a.ClauseInc {
		t.Errorf("Active after bump = %v, want %v", c.Active, a.ClauseInc)
	}

	db := NewCdb()
	loc := db.AddLearnt([]z.Lit{z.Var(1).Pos()})
	db.Get(loc).Active = 10
	a.DecayClauses(db)
	if db.Get(loc).Active != 10*a.ClauseDecay {
		t.Errorf("Active after decay = %v, want %v", db.Get(loc).Active, 10*a.ClauseDecay)
	}
}

func TestActivityGrowPreservesValues(t *testing.T) {
	a := NewActivity(2)
	a.Var[1] = 42
	a.grow(4)
	if a.Var[1] != 42 {
		t.Errorf("grow lost existing activity: %v", a.Var[1])
	}
	if a.Var[4] != 1 {
		t.Errorf("grow did not initialise new slot to 1: %v", a.Var[4])
	}
}
