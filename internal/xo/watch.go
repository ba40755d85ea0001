package xo

import "github.com/gosat/vela/z"

// Watches maps a literal's packed index to the clauses currently
// watching that literal.
type Watches struct {
	lists [][]CLoc
}

// NewWatches returns a watch index sized for literals of variables up
// to and including maxVar.
func NewWatches(maxVar z.Var) *Watches {
	return &Watches{lists: make([][]CLoc, litCap(maxVar))}
}

// litCap is the number of packed literal indices needed for variables
// 1..maxVar (idx ranges over [0, 2*maxVar-1]).
func litCap(maxVar z.Var) int {
	return 2 * int(maxVar)
}

// grow extends the index to cover variables up to and including maxVar.
func (w *Watches) grow(maxVar z.Var) {
	n := litCap(maxVar)
	if n <= len(w.lists) {
		return
	}
	grown := make([][]CLoc, n)
	copy(grown, w.lists)
	w.lists = grown
}

// Of returns the watcher list for literal l.
func (w *Watches) Of(l z.Lit) []CLoc {
	return w.lists[l]
}

// Add registers loc as a watcher of l.
func (w *Watches) Add(l z.Lit, loc CLoc) {
	w.lists[l] = append(w.lists[l], loc)
}

// Remove removes loc from l's watcher list by swap-with-last-then-pop.
// Order within the list is not meaningful, so this is safe.
func (w *Watches) Remove(l z.Lit, loc CLoc) {
	lst := w.lists[l]
	for i, c := range lst {
		if c == loc {
			w.RemoveAt(l, i)
			return
		}
	}
}

// RemoveAt removes the entry at position i in l's watcher list by
// swap-with-last-then-pop. Callers iterating the list with an explicit
// index must not advance that index afterwards: the swapped-in entry
// now occupies position i and still needs to be visited.
func (w *Watches) RemoveAt(l z.Lit, i int) {
	lst := w.lists[l]
	last := len(lst) - 1
	lst[i] = lst[last]
	w.lists[l] = lst[:last]
}

// Len returns the number of clauses currently watching l.
func (w *Watches) Len(l z.Lit) int {
	return len(w.lists[l])
}
