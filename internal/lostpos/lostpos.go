// Package lostpos enumerates the canonical boards that seed the
// retrograde solver's frontier: positions where the side to move has
// already lost, either by being reduced to two pieces or by having no
// legal turn (§4.G). This is an offline, combinatorially heavy
// generator; it is meant to run once per solver invocation, not on the
// engine's clock.
package lostpos

import (
	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/movegen"
	"github.com/nickprbs/muehlespiel/internal/symmetry"
)

// MaxPiecesPerTeam bounds how many pieces either team may hold in a
// generated position: the game's full 9. The retrograde solver applies
// its own configurable bound (retrograde.Config.MaxPiecesPerTeam) to the
// generated set.
const MaxPiecesPerTeam = 9

// Generate returns every canonical board where loser (to move, in the
// moving phase) has already lost, with winner the opposing team. Results
// are deduplicated by canonical representative.
func Generate(loser boardpkg.Team) []boardpkg.Board {
	seen := make(map[boardpkg.Board]struct{})
	var out []boardpkg.Board
	add := func(b boardpkg.Board) {
		rep := symmetry.Representative(b)
		if _, ok := seen[rep]; ok {
			return
		}
		seen[rep] = struct{}{}
		out = append(out, rep)
	}

	for _, b := range piecesTaken(loser) {
		add(b)
	}
	for _, b := range cannotMove(loser) {
		add(b)
	}
	return out
}

// piecesTaken enumerates the family where loser has exactly 2 pieces
// left (§4.G, family 1).
func piecesTaken(loser boardpkg.Team) []boardpkg.Board {
	winner := loser.Opponent()
	var out []boardpkg.Board

	seenSkeleton := make(map[boardpkg.Board]struct{})
	all := allLocations()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			l1, l2 := all[i], all[j]
			skeleton := boardpkg.Board{}.PlaceBitsAt(loser, l1).PlaceBitsAt(loser, l2)
			rep := symmetry.Representative(skeleton)
			if _, ok := seenSkeleton[rep]; ok {
				continue
			}
			seenSkeleton[rep] = struct{}{}

			for _, line := range boardpkg.MillLines() {
				if line[0] == l1 || line[0] == l2 || line[1] == l1 || line[1] == l2 || line[2] == l1 || line[2] == l2 {
					continue
				}
				withMill := skeleton.PlaceBitsAt(winner, line[0]).PlaceBitsAt(winner, line[1]).PlaceBitsAt(winner, line[2])

				var remaining []boardpkg.Location
				for _, l := range all {
					if l != l1 && l != l2 && l != line[0] && l != line[1] && l != line[2] {
						remaining = append(remaining, l)
					}
				}

				for k := 1; k <= 6; k++ {
					for _, combo := range combinations(remaining, k) {
						final := withMill
						for _, l := range combo {
							final = final.PlaceBitsAt(winner, l)
						}
						out = append(out, final)
					}
				}
			}
		}
	}
	return out
}

// cannotMove enumerates the family where loser has 4-9 pieces and no
// legal turn, which requires every one of loser's pieces to have every
// neighbour occupied (§4.G, family 2). Flying positions (3 pieces) are
// excluded, since a flying side always has a legal turn unless the board
// is full, which the piece-count bound already rules out.
func cannotMove(loser boardpkg.Team) []boardpkg.Board {
	winner := loser.Opponent()
	var out []boardpkg.Board
	all := allLocations()

	for p := 4; p <= 9; p++ {
		seenSkeleton := make(map[boardpkg.Board]struct{})
		for _, loserLocs := range combinations(all, p) {
			skeleton := emptyBoard()
			for _, l := range loserLocs {
				skeleton = skeleton.PlaceBitsAt(loser, l)
			}
			rep := symmetry.Representative(skeleton)
			if _, ok := seenSkeleton[rep]; ok {
				continue
			}
			seenSkeleton[rep] = struct{}{}

			needed := neighbourCoverage(loserLocs)
			if len(needed) > MaxPiecesPerTeam {
				continue
			}

			var remaining []boardpkg.Location
			for _, l := range all {
				if !containsLocation(loserLocs, l) && !containsLocation(needed, l) {
					remaining = append(remaining, l)
				}
			}

			maxAux := MaxPiecesPerTeam - len(needed)
			for k := 0; k <= maxAux; k++ {
				for _, combo := range combinations(remaining, k) {
					final := skeleton
					for _, l := range needed {
						final = final.PlaceBitsAt(winner, l)
					}
					for _, l := range combo {
						final = final.PlaceBitsAt(winner, l)
					}
					if movegen.IsGameOver(final, loser, boardpkg.Moving) {
						out = append(out, final)
					}
				}
			}
		}
	}
	return out
}

// neighbourCoverage returns the union of neighbours of every location in
// locs, excluding locations already in locs (a losing piece occupying
// its own neighbour's square blocks movement without help).
func neighbourCoverage(locs []boardpkg.Location) []boardpkg.Location {
	seen := make(map[boardpkg.Location]struct{})
	var out []boardpkg.Location
	for _, l := range locs {
		for _, n := range l.Neighbours() {
			if containsLocation(locs, n) {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

func containsLocation(locs []boardpkg.Location, l boardpkg.Location) bool {
	for _, x := range locs {
		if x == l {
			return true
		}
	}
	return false
}

func emptyBoard() boardpkg.Board {
	return boardpkg.Board{}
}

func allLocations() []boardpkg.Location {
	locs := make([]boardpkg.Location, 0, boardpkg.NumLocations)
	for l := boardpkg.Location(1); l <= boardpkg.NumLocations; l++ {
		locs = append(locs, l)
	}
	return locs
}

// combinations returns every k-element subset of locs, in input order.
func combinations(locs []boardpkg.Location, k int) [][]boardpkg.Location {
	if k == 0 {
		return [][]boardpkg.Location{{}}
	}
	if k > len(locs) {
		return nil
	}
	var out [][]boardpkg.Location
	var pick func(start int, chosen []boardpkg.Location)
	pick = func(start int, chosen []boardpkg.Location) {
		if len(chosen) == k {
			combo := make([]boardpkg.Location, k)
			copy(combo, chosen)
			out = append(out, combo)
			return
		}
		remainingNeeded := k - len(chosen)
		for i := start; i <= len(locs)-remainingNeeded; i++ {
			pick(i+1, append(chosen, locs[i]))
		}
	}
	pick(0, make([]boardpkg.Location, 0, k))
	return out
}
