package searcher

import "adversary/game"

type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower-bound"
	case UpperBound:
		return "upper-bound"
	default:
		return "unknown"
	}
}

type entry struct {
	bound Bound
	depth int
	value float64
	move  game.Move
}

// covers reports whether the entry was computed with at least depth plies left.
func (e entry) covers(depth int) bool {
	return e.depth >= depth
}

// classify maps a node's final score onto a bound of the window it was called
// with.
func classify(score, alpha, beta float64) Bound {
	if score <= alpha {
		return UpperBound
	}
	if score >= beta {
		return LowerBound
	}
	return Exact
}

// table lives for a single top-level search and is never shared between
// goroutines.
type table struct {
	entries map[game.Key]entry
	lookups int
	hits    int
	stores  int
}

func newTable() *table {
	return &table{entries: make(map[game.Key]entry)}
}

// probe returns the entry for key whatever its depth. Callers may only use a
// shallow entry for move ordering.
func (t *table) probe(key game.Key) (entry, bool) {
	t.lookups++
	e, ok := t.entries[key]
	if ok {
		t.hits++
	}
	return e, ok
}

// lookup returns the entry for key only if it was computed at depth or deeper.
func (t *table) lookup(key game.Key, depth int) (entry, bool) {
	e, ok := t.probe(key)
	if !ok || !e.covers(depth) {
		return entry{}, false
	}
	return e, true
}

// store overwrites whatever is there for key.
func (t *table) store(key game.Key, e entry) {
	t.entries[key] = e
	t.stores++
}

type TableStats struct {
	Lookups int
	Hits    int
	Stores  int
	Size    int
}

// stats is safe to call on a nil table, which is how a search without
// transpositions is represented.
func (t *table) stats() TableStats {
	if t == nil {
		return TableStats{}
	}
	return TableStats{
		Lookups: t.lookups,
		Hits:    t.hits,
		Stores:  t.stores,
		Size:    len(t.entries),
	}
}
