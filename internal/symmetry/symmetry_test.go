package symmetry

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

func TestEquivalenceClassHasSixteenElements(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	class := EquivalenceClass(b)
	if len(class) != 16 {
		t.Fatalf("len(EquivalenceClass) = %d, want 16", len(class))
	}
}

func TestEquivalenceClassOfEmptyBoardIsAllEqual(t *testing.T) {
	var empty boardpkg.Board
	for i, c := range EquivalenceClass(empty) {
		if c != empty {
			t.Errorf("element %d = %+v, want empty board", i, c)
		}
	}
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	got := Rotated(b, 4)
	if got != b {
		t.Errorf("Rotated(b, 4) = %+v, want %+v", got, b)
	}
}

func TestFlippedIsInvolution(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEBWEEEEEEEEEEEEEE")
	if got := Flipped(Flipped(b)); got != b {
		t.Errorf("Flipped(Flipped(b)) = %+v, want %+v", got, b)
	}
}

func TestMirroredIsInvolution(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEBWEEEEEEEEEEEEEE")
	if got := Mirrored(Mirrored(b)); got != b {
		t.Errorf("Mirrored(Mirrored(b)) = %+v, want %+v", got, b)
	}
}

func TestRepresentativeIsIdempotent(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEBWEEEEEEEEEEEEEE")
	rep := Representative(b)
	if got := Representative(rep); got != rep {
		t.Errorf("Representative(Representative(b)) = %+v, want %+v", got, rep)
	}
}

func TestRepresentativeIsMinimalInClass(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEBWEEEEEEEEEEEEEE")
	rep := Representative(b)
	for _, c := range EquivalenceClass(b) {
		if c.Less(rep) {
			t.Errorf("class member %+v sorts before representative %+v", c, rep)
		}
	}
}

func TestIsEquivalentToAcrossRotation(t *testing.T) {
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	rotated := Rotated(b, 2)
	if !IsEquivalentTo(b, rotated) {
		t.Errorf("IsEquivalentTo(b, Rotated(b, 2)) = false, want true")
	}
}

func TestIsEquivalentToRejectsDifferentClasses(t *testing.T) {
	a := mustDecode(t, "WEEEEEEEEEEEEEEEEEEEEEEE")
	b := mustDecode(t, "WBEEEEEEEEEEEEEEEEEEEEEE")
	if IsEquivalentTo(a, b) {
		t.Errorf("IsEquivalentTo(a, b) = true, want false (different piece counts)")
	}
}
