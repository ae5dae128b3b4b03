// Package eval implements the non-terminal leaf heuristic used by the
// alpha-beta engine when no oracle or terminal result applies (§4.H).
package eval

import "github.com/nickprbs/muehlespiel/internal/boardpkg"

const (
	pieceWeight = 0.5
	moveWeight  = 0.49
	flightBonus = 0.01
)

// Evaluate returns a heuristic score in [0, 1] for team's position on b.
// Higher is better for team.
func Evaluate(b boardpkg.Board, team boardpkg.Team) float64 {
	own := b.NumPieces(team)
	opp := b.NumPieces(team.Opponent())

	pieceFraction := float64(own) / 9.0

	var moveBound int
	flying := own == 3
	if flying {
		moveBound = own * (boardpkg.NumLocations - own - opp)
	} else {
		moveBound = own * 4
	}
	moveFraction := 0.0
	if moveBound > 0 {
		moveFraction = float64(countMoves(b, team, flying)) / float64(moveBound)
		if moveFraction > 1 {
			moveFraction = 1
		}
	}

	bonus := 0.0
	if flying && opp <= 4 {
		bonus = flightBonus
	}

	return pieceWeight*pieceFraction + moveWeight*moveFraction*moveFraction + bonus
}

// countMoves counts the raw slide/fly targets available to team, ignoring
// mill/capture pairing (the evaluation only cares about mobility).
func countMoves(b boardpkg.Board, team boardpkg.Team, flying bool) int {
	n := 0
	for _, from := range b.PieceLocations(team) {
		if flying {
			for l := boardpkg.Location(1); l <= boardpkg.NumLocations; l++ {
				if !b.IsOccupied(l) {
					n++
				}
			}
			continue
		}
		n += len(b.FreeNeighbours(from))
	}
	return n
}
