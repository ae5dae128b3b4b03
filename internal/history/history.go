// Package history tracks how many times each canonical board has been
// seen this game, for the root-only three-fold repetition check (§4.J).
package history

import (
	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/symmetry"
)

// History counts occurrences of canonical boards seen so far in the
// current game. The count is reset whenever a capture occurs, since a
// capture makes the position unreachable again by definition.
type History struct {
	counts map[boardpkg.Board]int
}

// New returns an empty history.
func New() *History {
	return &History{counts: make(map[boardpkg.Board]int)}
}

// Record registers b as played and returns the new occurrence count.
func (h *History) Record(b boardpkg.Board) int {
	rep := symmetry.Representative(b)
	h.counts[rep]++
	return h.counts[rep]
}

// Count returns how many times b (in any symmetry) has been recorded.
func (h *History) Count(b boardpkg.Board) int {
	return h.counts[symmetry.Representative(b)]
}

// WouldRepeat reports whether recording b would bring its count to 3 or
// more.
func (h *History) WouldRepeat(b boardpkg.Board) bool {
	return h.Count(b)+1 >= 3
}

// Reset clears all counts. Call this after any turn that captures a
// piece, since captured positions can never recur.
func (h *History) Reset() {
	h.counts = make(map[boardpkg.Board]int)
}
