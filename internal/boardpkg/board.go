package boardpkg

import (
	"fmt"
	"strings"
)

// Board is the 48-bit packed position: three 16-bit ring words, each
// packing 8 locations x 2 bits, angle 0 at the most significant pair and
// angle 7 at the least. Board is a small value type, cheap to copy, with
// by-value semantics throughout this module - no board is ever mutated
// through a shared pointer.
type Board struct {
	Outer  uint16
	Middle uint16
	Inner  uint16
}

// word returns the packed word for the location's ring.
func (b Board) word(ring int) uint16 {
	switch ring {
	case 0:
		return b.Outer
	case 1:
		return b.Middle
	default:
		return b.Inner
	}
}

// withWord returns a copy of b with the given ring's word replaced.
func (b Board) withWord(ring int, w uint16) Board {
	switch ring {
	case 0:
		b.Outer = w
	case 1:
		b.Middle = w
	default:
		b.Inner = w
	}
	return b
}

// pairShift returns the bit offset of the 2-bit pair for angle a within a
// ring word (angle 0 at the high end).
func pairShift(angle int) uint {
	return uint(NumAngles-1-angle) * 2
}

// PairShift exposes pairShift for the symmetry package, which needs to
// permute pairs within a ring word using the same bit layout.
func PairShift(angle int) uint {
	return pairShift(angle)
}

// TeamAt returns the occupant at l.
func (b Board) TeamAt(l Location) Team {
	w := b.word(l.Ring())
	return Team((w >> pairShift(l.Angle())) & 0b11)
}

// IsOccupied reports whether l holds a piece.
func (b Board) IsOccupied(l Location) bool {
	return b.TeamAt(l) != Empty
}

// PlaceBitsAt returns a copy of b with l's 2-bit pair replaced by bits,
// clearing whatever was there first. Implemented by masking the pair in
// place rather than literally rotating, which is equivalent and avoids
// branching on angle.
func (b Board) PlaceBitsAt(bits Team, l Location) Board {
	ring := l.Ring()
	shift := pairShift(l.Angle())
	w := b.word(ring)
	w &^= 0b11 << shift
	w |= uint16(bits&0b11) << shift
	return b.withWord(ring, w)
}

// ClearAt returns a copy of b with l emptied.
func (b Board) ClearAt(l Location) Board {
	return b.PlaceBitsAt(Empty, l)
}

// PieceLocations returns every location occupied by team, in ascending
// location order.
func (b Board) PieceLocations(team Team) []Location {
	locs := make([]Location, 0, 9)
	for l := Location(1); l <= NumLocations; l++ {
		if b.TeamAt(l) == team {
			locs = append(locs, l)
		}
	}
	return locs
}

// NumPieces counts team's pieces on the board.
func (b Board) NumPieces(team Team) int {
	n := 0
	for l := Location(1); l <= NumLocations; l++ {
		if b.TeamAt(l) == team {
			n++
		}
	}
	return n
}

// FreeNeighbours returns the unoccupied locations directly reachable by a
// single slide from l.
func (b Board) FreeNeighbours(l Location) []Location {
	result := make([]Location, 0, 4)
	for _, n := range l.Neighbours() {
		if !b.IsOccupied(n) {
			result = append(result, n)
		}
	}
	return result
}

// InvertTeams returns a copy of b with every occupied pair's team bits
// swapped (01<->10), leaving empty pairs untouched. Used by the online
// engine to normalise Black-to-move positions onto the White-oriented
// oracle (§3, §4.J).
func (b Board) InvertTeams() Board {
	return Board{
		Outer:  invertWord(b.Outer),
		Middle: invertWord(b.Middle),
		Inner:  invertWord(b.Inner),
	}
}

func invertWord(w uint16) uint16 {
	var out uint16
	for a := 0; a < NumAngles; a++ {
		shift := pairShift(a)
		bits := Team((w >> shift) & 0b11)
		if bits == Black {
			bits = White
		} else if bits == White {
			bits = Black
		}
		out |= uint16(bits) << shift
	}
	return out
}

// Apply returns the board resulting from team playing turn t. It does not
// validate legality; callers are expected to only apply turns produced by
// the child-turn iterator.
func (b Board) Apply(t Turn, team Team) Board {
	if t.IsMove {
		b = b.ClearAt(t.From)
	}
	b = b.PlaceBitsAt(team, t.To)
	if t.HasCapture {
		b = b.ClearAt(t.TakeFrom)
	}
	return b
}

// Unapply returns the board that preceded team playing turn t on b. It is
// the exact inverse of Apply: Unapply(Apply(b, t, team), t, team) == b.
func (b Board) Unapply(t Turn, team Team) Board {
	if t.HasCapture {
		b = b.PlaceBitsAt(team.Opponent(), t.TakeFrom)
	}
	b = b.ClearAt(t.To)
	if t.IsMove {
		b = b.PlaceBitsAt(team, t.From)
	}
	return b
}

// Encode renders the board as the 24-character ASCII string described in
// §6: character i (0-based) is the occupant of location i+1.
func (b Board) Encode() string {
	var sb strings.Builder
	sb.Grow(NumLocations)
	for l := Location(1); l <= NumLocations; l++ {
		sb.WriteString(b.TeamAt(l).String())
	}
	return sb.String()
}

// Decode parses the 24-character board-string encoding. Any length other
// than 24, or any character outside {E,W,B}, is an error.
func Decode(s string) (Board, error) {
	if len(s) != NumLocations {
		return Board{}, fmt.Errorf("boardpkg: board string must be %d characters, got %d", NumLocations, len(s))
	}
	var b Board
	for i := 0; i < NumLocations; i++ {
		team, ok := teamFromChar(s[i])
		if !ok {
			return Board{}, fmt.Errorf("boardpkg: invalid board character %q at position %d", s[i], i)
		}
		b = b.PlaceBitsAt(team, Location(i+1))
	}
	return b, nil
}

// Less reports whether b sorts before other under the lexicographic
// (Outer, Middle, Inner) ordering used to pick canonical representatives.
func (b Board) Less(other Board) bool {
	if b.Outer != other.Outer {
		return b.Outer < other.Outer
	}
	if b.Middle != other.Middle {
		return b.Middle < other.Middle
	}
	return b.Inner < other.Inner
}
