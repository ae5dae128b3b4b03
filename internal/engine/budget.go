package engine

import "github.com/nickprbs/muehlespiel/internal/boardpkg"

// PlacementBudget tracks how many of each team's 9 placements remain.
// A team is in the placing phase for its own turn exactly while its
// budget is positive; boardpkg.Board never encodes this, so the search
// threads it explicitly alongside every board it visits.
type PlacementBudget struct {
	White int
	Black int
}

// NewPlacementBudget returns the budget at the start of a game: 9
// placements each.
func NewPlacementBudget() PlacementBudget {
	return PlacementBudget{White: 9, Black: 9}
}

// Remaining returns team's unplaced pieces.
func (p PlacementBudget) Remaining(team boardpkg.Team) int {
	if team == boardpkg.White {
		return p.White
	}
	return p.Black
}

// PhaseFor reports whether team is still placing.
func (p PlacementBudget) PhaseFor(team boardpkg.Team) boardpkg.Phase {
	if p.Remaining(team) > 0 {
		return boardpkg.Placing
	}
	return boardpkg.Moving
}

// DerivePlacementBudget estimates the placement budget for a position
// arriving cold over the wire (§6 gives only the current phase, not a
// placement count). When phase is Moving neither side has placements
// left. When phase is Placing, a team's remaining count is estimated as
// 9 minus its pieces on the board: exact unless that team has already
// lost a piece to capture during its own placing phase, in which case
// this over-counts its remaining placements by the number of pieces lost
// and the search treats that team as still placing for that many turns
// after it has in fact reached the moving phase.
func DerivePlacementBudget(b boardpkg.Board, phase boardpkg.Phase) PlacementBudget {
	if phase == boardpkg.Moving {
		return PlacementBudget{}
	}
	remaining := func(team boardpkg.Team) int {
		r := 9 - b.NumPieces(team)
		if r < 0 {
			r = 0
		}
		return r
	}
	return PlacementBudget{White: remaining(boardpkg.White), Black: remaining(boardpkg.Black)}
}

// After returns the budget following team playing turn t: a Place
// consumes one of team's remaining placements, a Move leaves the
// budget unchanged.
func (p PlacementBudget) After(team boardpkg.Team, t boardpkg.Turn) PlacementBudget {
	if t.IsMove {
		return p
	}
	if team == boardpkg.White {
		p.White--
	} else {
		p.Black--
	}
	return p
}
