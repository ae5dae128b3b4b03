package engine

import (
	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/eval"
)

// maxScore anchors the negamax identity child_score_for_parent =
// maxScore - child_score (§4.J). Every score produced by this package
// falls in [0, maxScore].
const maxScore = 3.0

// rootAlpha and rootBeta bound the root search window (§4.J).
const (
	rootAlpha = 1.1
	rootBeta  = 2.42
)

// windowNarrowStep shrinks the search window by a small constant per
// ply below the root, the "aggressive null-window style" narrowing
// §4.J calls for. minWindow floors the shrunk window so it never
// inverts.
const (
	windowNarrowStep = 0.01
	minWindow        = 0.02
)

// neutralScore is the forced value for a root move that would
// immediately repeat a position for the third time, when the oracle
// has no verdict for the resulting position (§4.J, §8).
const neutralScore = 1.0

// acceptableRepetitionScore is used instead of the exact neutral value
// when the oracle has decided the resulting position is a loss for
// whoever must move there (i.e. a win for the side repeating): taking
// the repetition is at least as good as continuing, so it is nudged
// fractionally above neutral rather than left exactly at it, keeping
// §8's "neutral score if and only if undecided" literal.
const acceptableRepetitionScore = neutralScore + 1e-6

// discouragedRepetitionScore is used when the oracle has decided the
// resulting position is a win for whoever must move there (a loss for
// the side repeating): repetition is actively penalised so the root
// search prefers any alternative that does not squander a known win.
const discouragedRepetitionScore = 0.0

// winScore is the forced-win score at ply plies from the root.
func winScore(ply int) float64 {
	return 2 + 1/float64(ply+1)
}

// lossScore is the forced-loss score at ply plies from the root.
func lossScore(ply int) float64 {
	return 1 - 1/float64(ply+1)
}

// leafScore is the non-terminal leaf score: 1 plus the bounded [0,1]
// heuristic.
func leafScore(b boardpkg.Board, team boardpkg.Team) float64 {
	return 1 + eval.Evaluate(b, team)
}

// narrowWindow applies §4.J's per-ply window narrowing to (alpha,
// beta), floored at minWindow so pruning never inverts the bounds.
func narrowWindow(alpha, beta float64, ply int) (float64, float64) {
	margin := windowNarrowStep * float64(ply)
	a, b := alpha+margin, beta-margin
	if b-a < minWindow {
		mid := (alpha + beta) / 2
		return mid - minWindow/2, mid + minWindow/2
	}
	return a, b
}
