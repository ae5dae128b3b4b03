// Package movegen generates legal successor turns and, for the
// retrograde solver, the legal predecessor boards of a given position
// (§4.E, §4.F). It lives outside boardpkg because the predecessor
// iterator needs the symmetry package's canonical representative, and
// boardpkg must not depend on symmetry.
package movegen

import (
	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/symmetry"
)

// CanFly reports whether team, with numPieces pieces on the board, may
// fly rather than slide.
func CanFly(numPieces int) bool {
	return numPieces == 3
}

// ChildTurns enumerates every legal turn available to team on b in the
// given phase. Turns that close a mill are paired with every capturable
// opponent location; turns that do not close a mill, or close one while
// the opponent has no piece on the board, carry no capture.
func ChildTurns(b boardpkg.Board, team boardpkg.Team, phase boardpkg.Phase) []boardpkg.Turn {
	var turns []boardpkg.Turn

	appendWithCaptures := func(make func(take boardpkg.Location) boardpkg.Turn, to boardpkg.Location, after boardpkg.Board) {
		var capturable []boardpkg.Location
		if boardpkg.IsInMill(after, to) {
			capturable = boardpkg.CapturableOpponents(after, team.Opponent())
		}
		if len(capturable) == 0 {
			turns = append(turns, make(0))
			return
		}
		for _, take := range capturable {
			turns = append(turns, make(take))
		}
	}

	if phase == boardpkg.Placing {
		for to := boardpkg.Location(1); to <= boardpkg.NumLocations; to++ {
			if b.IsOccupied(to) {
				continue
			}
			after := b.PlaceBitsAt(team, to)
			appendWithCaptures(func(take boardpkg.Location) boardpkg.Turn {
				if take == 0 {
					return boardpkg.NewPlace(to)
				}
				return boardpkg.NewPlaceCapture(to, take)
			}, to, after)
		}
		return turns
	}

	flying := CanFly(b.NumPieces(team))
	for _, from := range b.PieceLocations(team) {
		var targets []boardpkg.Location
		if flying {
			for to := boardpkg.Location(1); to <= boardpkg.NumLocations; to++ {
				if !b.IsOccupied(to) {
					targets = append(targets, to)
				}
			}
		} else {
			targets = b.FreeNeighbours(from)
		}
		for _, to := range targets {
			after := b.ClearAt(from).PlaceBitsAt(team, to)
			appendWithCaptures(func(take boardpkg.Location) boardpkg.Turn {
				if take == 0 {
					return boardpkg.NewMove(from, to)
				}
				return boardpkg.NewMoveCapture(from, to, take)
			}, to, after)
		}
	}
	return turns
}

// HasLegalTurn reports whether team has at least one legal turn on b in
// phase. It short-circuits before materialising the whole turn list.
func HasLegalTurn(b boardpkg.Board, team boardpkg.Team, phase boardpkg.Phase) bool {
	if phase == boardpkg.Placing {
		for l := boardpkg.Location(1); l <= boardpkg.NumLocations; l++ {
			if !b.IsOccupied(l) {
				return true
			}
		}
		return false
	}
	flying := CanFly(b.NumPieces(team))
	for _, from := range b.PieceLocations(team) {
		if flying {
			for l := boardpkg.Location(1); l <= boardpkg.NumLocations; l++ {
				if !b.IsOccupied(l) {
					return true
				}
			}
			return false
		}
		if len(b.FreeNeighbours(from)) > 0 {
			return true
		}
	}
	return false
}

// IsGameOver reports whether the side to move has already lost: fewer
// than 3 pieces after the placing phase, or no legal turn available.
func IsGameOver(b boardpkg.Board, team boardpkg.Team, phase boardpkg.Phase) bool {
	if phase == boardpkg.Moving && b.NumPieces(team) < 3 {
		return true
	}
	return !HasLegalTurn(b, team, phase)
}

// ParentBoards enumerates the canonical boards from which a single legal
// turn by mover produces post (§4.F). Results are deduplicated by
// canonical representative.
func ParentBoards(post boardpkg.Board, mover boardpkg.Team, phase boardpkg.Phase) []boardpkg.Board {
	seen := make(map[boardpkg.Board]struct{})
	var result []boardpkg.Board

	considerRecapture := func(pre boardpkg.Board) {
		rep := symmetry.Representative(pre)
		if _, ok := seen[rep]; ok {
			return
		}
		seen[rep] = struct{}{}
		result = append(result, rep)
	}

	opponent := mover.Opponent()

	for postPos := boardpkg.Location(1); postPos <= boardpkg.NumLocations; postPos++ {
		if post.TeamAt(postPos) != mover {
			continue
		}

		var prePositions []boardpkg.Location
		flying := phase == boardpkg.Moving && CanFly(post.NumPieces(mover))
		if phase == boardpkg.Placing {
			prePositions = []boardpkg.Location{0} // 0 marks "placed from off-board"
		} else if flying {
			for l := boardpkg.Location(1); l <= boardpkg.NumLocations; l++ {
				if l != postPos && !post.IsOccupied(l) {
					prePositions = append(prePositions, l)
				}
			}
		} else {
			for _, n := range postPos.Neighbours() {
				if !post.IsOccupied(n) {
					prePositions = append(prePositions, n)
				}
			}
		}

		closedMill := boardpkg.IsInMill(post, postPos)

		for _, prePos := range prePositions {
			base := post.ClearAt(postPos)
			if prePos != 0 {
				base = base.PlaceBitsAt(mover, prePos)
			}

			if !closedMill {
				considerRecapture(base)
				continue
			}

			for uncaptured := boardpkg.Location(1); uncaptured <= boardpkg.NumLocations; uncaptured++ {
				if uncaptured == prePos || base.IsOccupied(uncaptured) {
					continue
				}
				restored := base.PlaceBitsAt(opponent, uncaptured)
				if legalRecapture(restored, uncaptured, opponent) {
					considerRecapture(restored)
				}
			}
		}
	}

	return result
}

// legalRecapture reports whether placing the captured piece back at loc
// is consistent with the §4.E capture rule: either every opponent piece
// is in a mill (so any of them was a legal capture target), or the
// restored piece itself is not in a mill.
func legalRecapture(b boardpkg.Board, loc boardpkg.Location, opponent boardpkg.Team) bool {
	if !boardpkg.IsInMill(b, loc) {
		return true
	}
	for _, l := range b.PieceLocations(opponent) {
		if l != loc && !boardpkg.IsInMill(b, l) {
			return false
		}
	}
	return true
}
