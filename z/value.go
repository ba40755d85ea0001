package z

// Value is a tri-state truth value. Grounded on the same three-state
// shape as a boolean-with-undefined type, renamed to spec vocabulary.
type Value int8

const (
	Unassigned Value = iota
	True
	False
)

// Not negates a Value, leaving Unassigned fixed.
func (v Value) Not() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Unassigned
	}
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// ValueOf evaluates literal l given per-variable truth values vals
// (indexed by Var, where vals[v] records whether v's *positive*
// literal is true). Constant time.
func ValueOf(l Lit, vals []Value) Value {
	v := vals[l.Var()]
	if v == Unassigned {
		return Unassigned
	}
	if l.IsPos() {
		return v
	}
	return v.Not()
}
