package engine

import (
	"sort"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/history"
	"github.com/nickprbs/muehlespiel/internal/movegen"
	"github.com/nickprbs/muehlespiel/internal/oracle"
)

// orderChildren sorts turns by descending transposition move-order
// score at depth, highest first so alpha-beta prunes as much of the
// ply as possible (§4.J).
func orderChildren(turns []boardpkg.Turn, tt *TranspositionTable, depth int) {
	sort.SliceStable(turns, func(i, j int) bool {
		return tt.MoveOrderScore(depth, turns[i]) > tt.MoveOrderScore(depth, turns[j])
	})
}

// negamax searches b to depthRemaining plies, team to move, ply plies
// below the root. It returns the score from team's perspective and the
// best turn found (the zero Turn at a terminal or leaf node, where
// there is nothing left to play).
func negamax(b boardpkg.Board, team boardpkg.Team, budget PlacementBudget, ply, depthRemaining int, alpha, beta float64, tt *TranspositionTable) (float64, boardpkg.Turn) {
	phase := budget.PhaseFor(team)
	if movegen.IsGameOver(b, team, phase) {
		return lossScore(ply), boardpkg.Turn{}
	}
	if depthRemaining == 0 {
		return leafScore(b, team), boardpkg.Turn{}
	}

	alpha, beta = narrowWindow(alpha, beta, ply)

	children := movegen.ChildTurns(b, team, phase)
	orderChildren(children, tt, depthRemaining)

	var best boardpkg.Turn
	bestScore := -1.0 // below any real score, every score here is >= 0
	for _, turn := range children {
		childBoard := b.Apply(turn, team)
		childBudget := budget.After(team, turn)
		childScore, _ := negamax(childBoard, team.Opponent(), childBudget, ply+1, depthRemaining-1, maxScore-beta, maxScore-alpha, tt)
		score := maxScore - childScore

		tt.Store(depthRemaining, turn, score)

		if score > bestScore {
			bestScore = score
			best = turn
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore, best
}

// repetitionScore is the forced score for a root move whose resulting
// position would repeat for the third time (§4.J, §8). childTeam is
// the side that would be to move in the resulting position.
func repetitionScore(oc *oracle.Oracle, childBoard boardpkg.Board, childTeam boardpkg.Team) float64 {
	if oc == nil {
		return neutralScore
	}
	label, _, found, err := oc.Lookup(oracle.CanonicalKey(childBoard, childTeam))
	if err != nil || !found {
		return neutralScore
	}
	if label == oracle.Lost {
		// childTeam (the opponent) loses there: repeating is at worst
		// as good as continuing.
		return acceptableRepetitionScore
	}
	// childTeam wins there: repeating squanders it.
	return discouragedRepetitionScore
}

// rootSearch runs one depth-limited negamax pass from the root,
// applying the root-only repetition check before scoring each child
// (§4.J, §8). It returns the best score and turn at this depth, and
// whether any legal turn existed at all.
func rootSearch(b boardpkg.Board, team boardpkg.Team, budget PlacementBudget, hist *history.History, oc *oracle.Oracle, tt *TranspositionTable, depth int) (float64, boardpkg.Turn, bool) {
	phase := budget.PhaseFor(team)
	children := movegen.ChildTurns(b, team, phase)
	if len(children) == 0 {
		return 0, boardpkg.Turn{}, false
	}
	orderChildren(children, tt, depth)

	alpha, beta := rootAlpha, rootBeta
	var best boardpkg.Turn
	bestScore := -1.0

	for _, turn := range children {
		childBoard := b.Apply(turn, team)
		childBudget := budget.After(team, turn)

		var score float64
		if hist.WouldRepeat(childBoard) {
			score = repetitionScore(oc, childBoard, team.Opponent())
		} else {
			childScore, _ := negamax(childBoard, team.Opponent(), childBudget, 1, depth-1, maxScore-beta, maxScore-alpha, tt)
			score = maxScore - childScore
		}

		tt.Store(depth, turn, score)

		if score > bestScore {
			bestScore = score
			best = turn
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore, best, true
}

// oracleOutcome pairs a root child turn with its oracle-reported mate
// distance for the pre-search shortcut.
type oracleOutcome struct {
	turn     boardpkg.Turn
	distance int
}

// oracleShortcut implements §4.J's pre-search shortcut: if at least one
// root child is a forced loss for the opponent, skip iterative
// deepening and play the child with the smallest oracle distance,
// ties broken by enumeration order.
func oracleShortcut(oc *oracle.Oracle, b boardpkg.Board, team boardpkg.Team, budget PlacementBudget) (boardpkg.Turn, bool) {
	if oc == nil {
		return boardpkg.Turn{}, false
	}
	phase := budget.PhaseFor(team)
	children := movegen.ChildTurns(b, team, phase)

	var best *oracleOutcome
	for _, turn := range children {
		childBoard := b.Apply(turn, team)
		label, distance, found, err := oc.Lookup(oracle.CanonicalKey(childBoard, team.Opponent()))
		if err != nil || !found || label != oracle.Lost {
			continue
		}
		if best == nil || distance < best.distance {
			best = &oracleOutcome{turn: turn, distance: distance}
		}
	}
	if best == nil {
		return boardpkg.Turn{}, false
	}
	return best.turn, true
}
