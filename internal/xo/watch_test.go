package xo

import (
	"testing"

	"github.com/gosat/vela/z"
)

func TestWatchesAddOf(t *testing.T) {
	w := NewWatches(2)
	l := z.Var(1).Pos()
	w.Add(l, CLoc(7))
	w.Add(l, CLoc(9))
	got := w.Of(l)
	if len(got) != 2 || got[0] != 7 || got[1] != 9 {
		t.Errorf("Of(%s) = %v, want [7 9]", l, got)
	}
}

func TestWatchesRemoveSwapWithLast(t *testing.T) {
	w := NewWatches(2)
	l := z.Var(1).Pos()
	w.Add(l, CLoc(1))
	w.Add(l, CLoc(2))
	w.Add(l, CLoc(3))

	w.Remove(l, CLoc(1))

	got := w.Of(l)
	if len(got) != 2 {
		t.Fatalf("Len after remove = %d, want 2", len(got))
	}
	// swap-with-last-then-pop: position 0 now holds what was last (3).
	if got[0] != 3 || got[1] != 2 {
		t.Errorf("Of(%s) after remove = %v, want [3 2]", l, got)
	}
}

func TestWatchesRemoveAtDoesNotAdvance(t *testing.T) {
	w := NewWatches(2)
	l := z.Var(1).Pos()
	w.Add(l, CLoc(1))
	w.Add(l, CLoc(2))
	w.Add(l, CLoc(3))

	// Remove position 0 (CLoc 1); the swapped-in entry (CLoc 3) must
	// still be visible at position 0 for the caller's next iteration.
	w.RemoveAt(l, 0)
	if w.Len(l) != 2 {
		t.Fatalf("Len after RemoveAt = %d, want 2", w.Len(l))
	}
	if w.Of(l)[0] != 3 {
		t.Errorf("Of(%s)[0] = %d, want 3", l, w.Of(l)[0])
	}
}

func TestWatchesGrow(t *testing.T) {
	w := NewWatches(1)
	w.grow(5)
	l := z.Var(5).Pos()
	w.Add(l, CLoc(1))
	if len(w.Of(l)) != 1 {
		t.Errorf("Add after grow failed")
	}
}
