package engine

import "github.com/nickprbs/muehlespiel/internal/boardpkg"

// defaultMoveOrderScore is the comparator used for a candidate turn with
// no transposition entry at the current depth (§4.J, "missing entries
// default to a mid-range constant").
const defaultMoveOrderScore = 1.7

// ttLoadFactor is the capacity fraction above which no further entries
// are inserted (§4.J, "80% of its capacity").
const ttLoadFactor = 0.8

// ttEntrySize approximates one map entry's footprint (a (depth, turn)
// key plus a float64 value and Go map bucket overhead), used only to
// turn a megabyte budget into an entry-count capacity.
const ttEntrySize = 48

// ttKey identifies an entry by (depth, turn), not by board: the table
// orders moves at a given remaining-depth, it is not a position cache.
type ttKey struct {
	depth int
	turn  boardpkg.Turn
}

// TranspositionTable maps (depth, turn) to the most recently observed
// score for that turn at that depth, used purely for move ordering.
// It is rebuilt from scratch on every root call and discarded when the
// worker exits (§4.J).
type TranspositionTable struct {
	entries  map[ttKey]float64
	capacity int
}

// NewTranspositionTable sizes a table to roughly sizeMB megabytes.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	capacity := sizeMB * 1024 * 1024 / ttEntrySize
	if capacity < 1 {
		capacity = 1
	}
	return &TranspositionTable{
		entries:  make(map[ttKey]float64),
		capacity: capacity,
	}
}

// MoveOrderScore returns turn's prior score at depth, or the default
// mid-range constant if none has been recorded.
func (tt *TranspositionTable) MoveOrderScore(depth int, turn boardpkg.Turn) float64 {
	if score, ok := tt.entries[ttKey{depth: depth, turn: turn}]; ok {
		return score
	}
	return defaultMoveOrderScore
}

// Store records turn's score at depth, unless the table is already at
// or above its 80% load-factor cutoff.
func (tt *TranspositionTable) Store(depth int, turn boardpkg.Turn, score float64) {
	if float64(len(tt.entries)) >= ttLoadFactor*float64(tt.capacity) {
		return
	}
	tt.entries[ttKey{depth: depth, turn: turn}] = score
}
