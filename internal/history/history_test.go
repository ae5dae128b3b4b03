package history

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

func TestRecordCountsAcrossSymmetry(t *testing.T) {
	h := New()
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	rotated := symmetry.Rotated(b, 2)

	h.Record(b)
	h.Record(rotated)

	if got := h.Count(b); got != 2 {
		t.Errorf("Count(b) = %d, want 2", got)
	}
}

func TestWouldRepeatAtThirdOccurrence(t *testing.T) {
	h := New()
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	h.Record(b)
	h.Record(b)
	if !h.WouldRepeat(b) {
		t.Errorf("WouldRepeat should be true on the position's third occurrence")
	}
}

func TestResetClearsCounts(t *testing.T) {
	h := New()
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	h.Record(b)
	h.Reset()
	if got := h.Count(b); got != 0 {
		t.Errorf("Count(b) after Reset = %d, want 0", got)
	}
}
