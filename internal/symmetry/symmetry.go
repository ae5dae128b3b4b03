// Package symmetry implements the 16-element board symmetry group (§4.B):
// ring flip, quarter rotation, and angular mirror, plus the canonical
// representative used as the oracle's key type. Every operation here is a
// pure function of a boardpkg.Board value; there is no memoisation beyond
// a single call (Design Notes, §9).
package symmetry

import "github.com/nickprbs/muehlespiel/internal/boardpkg"

// Flipped swaps the outer and inner ring words, leaving the middle ring
// untouched.
func Flipped(b boardpkg.Board) boardpkg.Board {
	return boardpkg.Board{Outer: b.Inner, Middle: b.Middle, Inner: b.Outer}
}

// Rotated rotates every ring word right by 4*k bits (a quarter turn per
// unit of k, k taken modulo 4), wrapping within the 16-bit word.
func Rotated(b boardpkg.Board, k int) boardpkg.Board {
	shift := uint((4 * (k % 4 + 4)) % 16)
	return boardpkg.Board{
		Outer:  rotateRight16(b.Outer, shift),
		Middle: rotateRight16(b.Middle, shift),
		Inner:  rotateRight16(b.Inner, shift),
	}
}

func rotateRight16(w uint16, bits uint) uint16 {
	bits %= 16
	if bits == 0 {
		return w
	}
	return (w >> bits) | (w << (16 - bits))
}

// Mirrored reflects every ring about the 0/4 axis: the pair at angle i
// moves to angle (-i mod 8).
func Mirrored(b boardpkg.Board) boardpkg.Board {
	return boardpkg.Board{
		Outer:  mirrorWord(b.Outer),
		Middle: mirrorWord(b.Middle),
		Inner:  mirrorWord(b.Inner),
	}
}

func mirrorWord(w uint16) uint16 {
	var out uint16
	for a := 0; a < boardpkg.NumAngles; a++ {
		srcAngle := (boardpkg.NumAngles - a) % boardpkg.NumAngles
		pair := (w >> boardpkg.PairShift(srcAngle)) & 0b11
		out |= pair << boardpkg.PairShift(a)
	}
	return out
}

// EquivalenceClass returns all 16 boards reachable from b by composing at
// most one flip, at most one mirror, and a quarter rotation. The 16
// results are not deduplicated: a symmetric board yields 16 (possibly
// repeated) equal values, matching the reference test scenario.
func EquivalenceClass(b boardpkg.Board) []boardpkg.Board {
	result := make([]boardpkg.Board, 0, 16)
	for _, flip := range [2]bool{false, true} {
		base := b
		if flip {
			base = Flipped(b)
		}
		for _, mirror := range [2]bool{false, true} {
			m := base
			if mirror {
				m = Mirrored(m)
			}
			for k := 0; k < 4; k++ {
				result = append(result, Rotated(m, k))
			}
		}
	}
	return result
}

// Representative returns the lexicographically smallest board (comparing
// Outer, then Middle, then Inner) in b's equivalence class. It is
// idempotent: Representative(Representative(b)) == Representative(b).
func Representative(b boardpkg.Board) boardpkg.Board {
	class := EquivalenceClass(b)
	min := class[0]
	for _, c := range class[1:] {
		if c.Less(min) {
			min = c
		}
	}
	return min
}

// IsEquivalentTo reports whether a and b belong to the same symmetry
// class.
func IsEquivalentTo(a, b boardpkg.Board) bool {
	return Representative(a) == Representative(b)
}
