package boardpkg

// IsInMill reports whether the piece at l (if any) is part of a completed
// mill of its own team. Corner locations (even location number) each sit
// on exactly two ring-adjacency mill lines; midpoint locations (odd
// location number) sit on exactly one ring mill plus one leading-line
// mill running across all three rings at the same angle.
func IsInMill(b Board, l Location) bool {
	team := b.TeamAt(l)
	if team == Empty {
		return false
	}

	ring, angle := l.Ring(), l.Angle()

	if l.IsMidpoint() {
		left := NewLocation(ring, angle-1)
		right := NewLocation(ring, angle+1)
		if b.TeamAt(left) == team && b.TeamAt(right) == team {
			return true
		}
		outer := NewLocation(0, angle)
		middle := NewLocation(1, angle)
		inner := NewLocation(2, angle)
		return b.TeamAt(outer) == team && b.TeamAt(middle) == team && b.TeamAt(inner) == team
	}

	// Corner: two candidate ring mills, (a-2,a-1,a) and (a,a+1,a+2).
	prev2 := NewLocation(ring, angle-2)
	prev1 := NewLocation(ring, angle-1)
	if b.TeamAt(prev2) == team && b.TeamAt(prev1) == team {
		return true
	}
	next1 := NewLocation(ring, angle+1)
	next2 := NewLocation(ring, angle+2)
	return b.TeamAt(next1) == team && b.TeamAt(next2) == team
}

// MillLines returns the 16 three-location mill lines on the board: four
// ring lines per ring (corner, midpoint, corner) plus four leading
// lines (one per midpoint angle, crossing all three rings).
func MillLines() [][3]Location {
	lines := make([][3]Location, 0, 16)
	for angle := 0; angle < NumAngles; angle += 2 {
		for ring := 0; ring < NumRings; ring++ {
			lines = append(lines, [3]Location{
				NewLocation(ring, angle-1),
				NewLocation(ring, angle),
				NewLocation(ring, angle+1),
			})
		}
		lines = append(lines, [3]Location{
			NewLocation(0, angle),
			NewLocation(1, angle),
			NewLocation(2, angle),
		})
	}
	return lines
}

// CapturableOpponents returns the opponent-team locations that may be
// taken when the current team closes a mill: every opponent piece not
// itself in a mill, unless the opponent has no such piece, in which case
// every opponent piece becomes capturable (§4.E).
func CapturableOpponents(b Board, opponent Team) []Location {
	all := b.PieceLocations(opponent)
	free := make([]Location, 0, len(all))
	for _, l := range all {
		if !IsInMill(b, l) {
			free = append(free, l)
		}
	}
	if len(free) == 0 {
		return all
	}
	return free
}
