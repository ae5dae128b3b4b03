package eval

import (
	"testing"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
)

func mustDecode(t *testing.T, s string) boardpkg.Board {
	t.Helper()
	b, err := boardpkg.Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return b
}

func TestEvaluateIsBoundedByZeroAndOne(t *testing.T) {
	b := mustDecode(t, "WWWWWWWWWBBBBBBBBBEEEEEE")
	for _, team := range []boardpkg.Team{boardpkg.White, boardpkg.Black} {
		v := Evaluate(b, team)
		if v < 0 || v > 1 {
			t.Errorf("Evaluate(%v) = %v, want in [0,1]", team, v)
		}
	}
}

func TestEvaluateFavoursMorePieces(t *testing.T) {
	many := mustDecode(t, "WWWWWEEEBBBEEEEEEEEEEEEE")
	few := mustDecode(t, "WEEEEEEEBBBEEEEEEEEEEEEE")
	if Evaluate(many, boardpkg.White) <= Evaluate(few, boardpkg.White) {
		t.Errorf("Evaluate should increase with own piece count")
	}
}

func TestEvaluateMatchesClosedFormOnThreePieceBoard(t *testing.T) {
	// 3 White pieces, no Black pieces on the board at all: own=3, opp=0,
	// flying active, opponent weak enough for the bonus.
	b := mustDecode(t, "WEEEEEEEWEEEEEEEWEEEEEEE")
	own, opp := 3, 0
	moveBound := own * (boardpkg.NumLocations - own - opp)
	moveFraction := float64(countMoves(b, boardpkg.White, true)) / float64(moveBound)
	want := pieceWeight*(float64(own)/9.0) + moveWeight*moveFraction*moveFraction + flightBonus

	got := Evaluate(b, boardpkg.White)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}
