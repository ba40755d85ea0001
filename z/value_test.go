package z

import "testing"

func TestValueNot(t *testing.T) {
	if True.Not() != False {
		t.Errorf("True.Not() != False")
	}
	if False.Not() != True {
		t.Errorf("False.Not() != True")
	}
	if Unassigned.Not() != Unassigned {
		t.Errorf("Unassigned.Not() != Unassigned")
	}
}

func TestValueOf(t *testing.T) {
	vals := []Value{Unassigned, True, False}
	v1, v2 := Var(1), Var(2)

	if ValueOf(v1.Pos(), vals) != True {
		t.Errorf("value_of(+1) with var true should be True")
	}
	if ValueOf(v1.Neg(), vals) != False {
		t.Errorf("value_of(-1) with var true should be False")
	}
	if ValueOf(v2.Pos(), vals) != False {
		t.Errorf("value_of(+2) with var false should be False")
	}
	if ValueOf(v2.Neg(), vals) != True {
		t.Errorf("value_of(-2) with var false should be True")
	}

	vals3 := []Value{Unassigned, Unassigned}
	v0 := Var(1)
	if ValueOf(v0.Pos(), vals3) != Unassigned {
		t.Errorf("value_of unassigned var should be Unassigned")
	}
	if ValueOf(v0.Neg(), vals3) != Unassigned {
		t.Errorf("value_of unassigned var should be Unassigned")
	}
}
