package engine

import (
	"testing"
	"time"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/history"
	"github.com/nickprbs/muehlespiel/internal/movegen"
	"github.com/nickprbs/muehlespiel/internal/oracle"
)

func mustDecode(t *testing.T, s string) boardpkg.Board {
	t.Helper()
	b, err := boardpkg.Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return b
}

func TestNarrowWindowNeverInverts(t *testing.T) {
	for ply := 0; ply < 50; ply++ {
		a, b := narrowWindow(rootAlpha, rootBeta, ply)
		if b <= a {
			t.Errorf("ply %d: narrowWindow gave alpha=%v >= beta=%v", ply, a, b)
		}
	}
}

func TestWinAndLossScoresApproachBoundsAsPlyGrows(t *testing.T) {
	if winScore(0) != 3 {
		t.Errorf("winScore(0) = %v, want 3", winScore(0))
	}
	if lossScore(0) != 0 {
		t.Errorf("lossScore(0) = %v, want 0", lossScore(0))
	}
	far := winScore(1000)
	if far <= 2 || far >= 2.01 {
		t.Errorf("winScore(1000) = %v, want close to 2", far)
	}
}

func TestNegamaxIdentityKeepsScoresNonNegative(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	budget := NewPlacementBudget().After(boardpkg.White, boardpkg.NewPlace(1)).After(boardpkg.Black, boardpkg.NewPlace(2))
	tt := NewTranspositionTable(1)
	score, turn := negamax(b, boardpkg.White, budget, 0, 2, rootAlpha, rootBeta, tt)
	if score < 0 || score > maxScore {
		t.Errorf("negamax score %v out of [0, %v]", score, maxScore)
	}
	valid := false
	for _, c := range movegen.ChildTurns(b, boardpkg.White, budget.PhaseFor(boardpkg.White)) {
		if c == turn {
			valid = true
		}
	}
	if !valid {
		t.Errorf("negamax returned turn %+v not in ChildTurns", turn)
	}
}

func TestTranspositionTableMoveOrderScoreDefaultsWhenMissing(t *testing.T) {
	tt := NewTranspositionTable(1)
	got := tt.MoveOrderScore(3, boardpkg.NewPlace(1))
	if got != defaultMoveOrderScore {
		t.Errorf("MoveOrderScore on empty table = %v, want %v", got, defaultMoveOrderScore)
	}
}

func TestTranspositionTableStopsInsertingAboveLoadFactor(t *testing.T) {
	tt := &TranspositionTable{entries: make(map[ttKey]float64), capacity: 10}
	for i := boardpkg.Location(1); i <= 24; i++ {
		tt.Store(1, boardpkg.NewPlace(i), float64(i))
	}
	if got := len(tt.entries); got > 8 {
		t.Errorf("table holds %d entries, want at most 8 (80%% of capacity 10)", got)
	}
}

func TestPlacementBudgetTracksPhaseTransition(t *testing.T) {
	budget := PlacementBudget{White: 1, Black: 0}
	if budget.PhaseFor(boardpkg.White) != boardpkg.Placing {
		t.Error("White with 1 placement left should still be placing")
	}
	if budget.PhaseFor(boardpkg.Black) != boardpkg.Moving {
		t.Error("Black with 0 placements left should be moving")
	}
	after := budget.After(boardpkg.White, boardpkg.NewPlace(1))
	if after.PhaseFor(boardpkg.White) != boardpkg.Moving {
		t.Error("White should move to Moving phase after its last placement")
	}
	moved := budget.After(boardpkg.Black, boardpkg.NewMove(1, 2))
	if moved != budget {
		t.Error("a Move turn must not change the placement budget")
	}
}

func TestOracleShortcutPicksSmallestDistanceChild(t *testing.T) {
	oc, err := oracle.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer oc.Close()

	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	budget := NewPlacementBudget()
	children := movegen.ChildTurns(b, boardpkg.White, budget.PhaseFor(boardpkg.White))
	if len(children) < 2 {
		t.Fatal("need at least two root children for this test")
	}

	far := b.Apply(children[0], boardpkg.White)
	near := b.Apply(children[1], boardpkg.White)
	if err := oc.Put(oracle.CanonicalKey(far, boardpkg.Black), oracle.Lost, 9); err != nil {
		t.Fatal(err)
	}
	if err := oc.Put(oracle.CanonicalKey(near, boardpkg.Black), oracle.Lost, 1); err != nil {
		t.Fatal(err)
	}

	turn, ok := oracleShortcut(oc, b, boardpkg.White, budget)
	if !ok {
		t.Fatal("oracleShortcut reported no forced win, want one")
	}
	if turn != children[1] {
		t.Errorf("oracleShortcut returned %+v, want the smaller-distance child %+v", turn, children[1])
	}
}

func TestOracleShortcutDeclinesWithoutAForcedWin(t *testing.T) {
	oc, err := oracle.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer oc.Close()

	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	budget := NewPlacementBudget()
	if _, ok := oracleShortcut(oc, b, boardpkg.White, budget); ok {
		t.Error("oracleShortcut should decline when the oracle has no forced-loss child")
	}
}

func TestRepetitionScoreIsNeutralWhenOracleUndecided(t *testing.T) {
	if got := repetitionScore(nil, boardpkg.Board{}, boardpkg.Black); got != neutralScore {
		t.Errorf("repetitionScore with no oracle = %v, want %v", got, neutralScore)
	}
}

func TestThinkReturnsALegalTurnWithinThinkTime(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	budget := NewPlacementBudget()
	e := New(Config{ThinkTime: 20 * time.Millisecond, TTSizeMB: 1}, nil)

	turn := e.Think(b, boardpkg.White, budget, history.New())

	valid := false
	for _, c := range movegen.ChildTurns(b, boardpkg.White, budget.PhaseFor(boardpkg.White)) {
		if c == turn {
			valid = true
		}
	}
	if !valid {
		t.Errorf("Think returned %+v, not a member of ChildTurns", turn)
	}
}
