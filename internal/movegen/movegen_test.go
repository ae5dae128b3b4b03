package movegen

import (
	"testing"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/symmetry"
)

func mustDecode(t *testing.T, s string) boardpkg.Board {
	t.Helper()
	b, err := boardpkg.Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return b
}

func TestChildTurnsPlacingOnEmptyBoard(t *testing.T) {
	var b boardpkg.Board
	turns := ChildTurns(b, boardpkg.White, boardpkg.Placing)
	if len(turns) != boardpkg.NumLocations {
		t.Fatalf("len(turns) = %d, want %d", len(turns), boardpkg.NumLocations)
	}
	for _, tn := range turns {
		if tn.IsMove || tn.HasCapture {
			t.Errorf("turn %+v should be a plain place", tn)
		}
	}
}

func TestChildTurnsPlacingClosingMillYieldsCaptures(t *testing.T) {
	// White occupies locations 2 and 4 of the ring-0 mill line (2,3,4),
	// centred on midpoint 3; placing at 3 closes the mill. None of the
	// four Black pieces (6, 7, 10, 11) is in a mill, so all are capturable.
	b := mustDecode(t, "EWEWEBBEEBBEEEEEEEEEEEEE")
	turns := ChildTurns(b, boardpkg.White, boardpkg.Placing)
	var captures int
	for _, tn := range turns {
		if tn.To == 3 && tn.HasCapture {
			captures++
		}
	}
	black := b.PlaceBitsAt(boardpkg.White, 3).PieceLocations(boardpkg.Black)
	if captures != len(black) {
		t.Errorf("got %d capture options for the closing placement, want %d", captures, len(black))
	}
}

func TestChildTurnsMovingNonFlyingRestrictsToNeighbours(t *testing.T) {
	b := mustDecode(t, "WEEEEEEEBBBBWWWWEEEEEEEE")
	turns := ChildTurns(b, boardpkg.White, boardpkg.Moving)
	for _, tn := range turns {
		if !tn.IsMove {
			t.Fatalf("expected only Move turns in the moving phase, got %+v", tn)
		}
		found := false
		for _, n := range tn.From.Neighbours() {
			if n == tn.To {
				found = true
			}
		}
		if !found {
			t.Errorf("turn %+v: To is not a neighbour of From", tn)
		}
	}
}

func TestChildTurnsFlyingAllowsAnyTarget(t *testing.T) {
	// White has exactly 3 pieces, so it may fly to any empty location.
	b := mustDecode(t, "WEEEEEEEWEEEEEEEWEEEEEEE")
	turns := ChildTurns(b, boardpkg.White, boardpkg.Moving)
	wantTargets := boardpkg.NumLocations - b.NumPieces(boardpkg.White)
	wantTurns := len(b.PieceLocations(boardpkg.White)) * wantTargets
	if len(turns) != wantTurns {
		t.Errorf("len(turns) = %d, want %d (3 pieces x %d free targets)", len(turns), wantTurns, wantTargets)
	}
}

func TestIsGameOverFewerThanThreePieces(t *testing.T) {
	b := mustDecode(t, "WWEEEEEEEEEEEEEEEEEEEEEE")
	if !IsGameOver(b, boardpkg.White, boardpkg.Moving) {
		t.Errorf("IsGameOver should be true with 2 pieces in the moving phase")
	}
}

func TestIsGameOverNoLegalMove(t *testing.T) {
	// White's four pieces sit on the outer corners (2, 4, 6, 8), which
	// connect only along the ring, and Black holds every ring neighbour
	// (1, 3, 5, 7); four pieces are too many to fly.
	b := mustDecode(t, "BWBWBWBWEEEEEEEEEEEEEEEE")
	if !IsGameOver(b, boardpkg.White, boardpkg.Moving) {
		t.Errorf("IsGameOver should be true when the side to move has no legal turn")
	}
}

func TestParentBoardsRoundTripsThroughApply(t *testing.T) {
	pre := mustDecode(t, "WEEEEEEEBBBBEEEEEEEEEEEE")
	turn := boardpkg.NewMove(1, 2)
	post := pre.Apply(turn, boardpkg.White)

	wantRep := symmetry.Representative(pre)
	found := false
	for _, p := range ParentBoards(post, boardpkg.White, boardpkg.Moving) {
		if p == wantRep {
			found = true
		}
	}
	if !found {
		t.Errorf("ParentBoards(post) did not include the canonical form of pre")
	}
}
