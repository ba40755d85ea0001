// Package xo is the CDCL engine: clause store, watch index, trail,
// propagator, conflict analyzer, backjump/install, reduce-DB, restart,
// and the search driver that ties them together.
package xo

import (
	"sort"
	"strings"

	"github.com/gosat/vela/z"
)

// CLoc is a stable handle to a clause record held by the Cdb arena.
// Handles are never reused: deleted clauses are tombstoned in place, so
// an existing reference to a CLoc either still resolves to the live
// clause it named or is guaranteed (by the locked-clause rule) to never
// be dereferenced again.
type CLoc int32

// CNull is the handle for "no clause".
const CNull CLoc = 0

// Clause is a clause record: original or learned. Learned clauses carry
// an activity used by reduce-DB; original clauses never do.
type Clause struct {
	Lits    []z.Lit
	Watch1  int // index into Lits
	Watch2  int // index into Lits; equals Watch1 for unit clauses
	Learnt  bool
	Active  float64
	deleted bool
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.Lits) }

func (c *Clause) String() string {
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

// Cdb is the clause store: it owns every clause record for its full
// lifetime. Watch lists and per-variable reasons hold non-owning
// CLoc/pointer references into it; reduce-DB is the only component
// that ever frees a record; deletion is a tombstone, so stale CLoc
// values are never handed back out and never dereferenced again once
// unlocked (see ReduceDB in reduce.go).
type Cdb struct {
	recs    []*Clause // recs[CNull] is nil, reserved
	Learnts []CLoc    // currently-alive learned clause locations
}

// NewCdb returns an empty clause store.
func NewCdb() *Cdb {
	return &Cdb{recs: make([]*Clause, 1)}
}

// Get resolves a handle to its clause record.
func (db *Cdb) Get(loc CLoc) *Clause {
	return db.recs[loc]
}

// add stores c and returns its handle.
func (db *Cdb) add(c *Clause) CLoc {
	db.recs = append(db.recs, c)
	return CLoc(len(db.recs) - 1)
}

// AddOriginal stores an original (non-learned) clause and returns its
// handle. The caller is responsible for literal dedup (the DIMACS
// ingester's job, per spec); watches are not installed here, the
// caller does that once it knows whether the clause is unit.
func (db *Cdb) AddOriginal(lits []z.Lit) CLoc {
	return db.add(&Clause{Lits: lits})
}

// AddLearnt stores a learned clause and registers it in Learnts.
func (db *Cdb) AddLearnt(lits []z.Lit) CLoc {
	c := &Clause{Lits: lits, Learnt: true}
	loc := db.add(c)
	db.Learnts = append(db.Learnts, loc)
	return loc
}

// sortLearntsByActivity sorts Learnts ascending by activity, the order
// reduce-DB requires to mark the lower half for deletion.
func (db *Cdb) sortLearntsByActivity() {
	sort.Slice(db.Learnts, func(i, j int) bool {
		return db.recs[db.Learnts[i]].Active < db.recs[db.Learnts[j]].Active
	})
}

// free tombstones the clause at loc. Only reduce-DB calls this.
func (db *Cdb) free(loc CLoc) {
	db.recs[loc].deleted = true
	db.recs[loc] = nil
}
