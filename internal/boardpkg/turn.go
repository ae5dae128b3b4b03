package boardpkg

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn is either a Place (Placing phase) or a Move (Moving phase),
// optionally closing a mill and capturing an opponent piece at TakeFrom.
//
// Encoded as "P a", "M a b", optionally suffixed " T c".
type Turn struct {
	IsMove     bool
	From       Location // only meaningful when IsMove
	To         Location
	HasCapture bool
	TakeFrom   Location // only meaningful when HasCapture
}

// NewPlace builds a placing turn with no capture.
func NewPlace(to Location) Turn {
	return Turn{To: to}
}

// NewPlaceCapture builds a placing turn that captures takeFrom.
func NewPlaceCapture(to, takeFrom Location) Turn {
	return Turn{To: to, HasCapture: true, TakeFrom: takeFrom}
}

// NewMove builds a sliding/flying turn with no capture.
func NewMove(from, to Location) Turn {
	return Turn{IsMove: true, From: from, To: to}
}

// NewMoveCapture builds a sliding/flying turn that captures takeFrom.
func NewMoveCapture(from, to, takeFrom Location) Turn {
	return Turn{IsMove: true, From: from, To: to, HasCapture: true, TakeFrom: takeFrom}
}

// Encode renders the turn in the §6 wire format.
func (t Turn) Encode() string {
	var b strings.Builder
	if t.IsMove {
		fmt.Fprintf(&b, "M %d %d", t.From, t.To)
	} else {
		fmt.Fprintf(&b, "P %d", t.To)
	}
	if t.HasCapture {
		fmt.Fprintf(&b, " T %d", t.TakeFrom)
	}
	return b.String()
}

// ParseTurn decodes a turn from its §6 wire format.
func ParseTurn(s string) (Turn, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Turn{}, fmt.Errorf("boardpkg: invalid turn %q: too few fields", s)
	}

	var t Turn
	switch fields[0] {
	case "P":
		to, err := parseLocation(fields[1])
		if err != nil {
			return Turn{}, err
		}
		t = Turn{To: to}
		fields = fields[2:]
	case "M":
		if len(fields) < 3 {
			return Turn{}, fmt.Errorf("boardpkg: invalid turn %q: move needs from and to", s)
		}
		from, err := parseLocation(fields[1])
		if err != nil {
			return Turn{}, err
		}
		to, err := parseLocation(fields[2])
		if err != nil {
			return Turn{}, err
		}
		t = Turn{IsMove: true, From: from, To: to}
		fields = fields[3:]
	default:
		return Turn{}, fmt.Errorf("boardpkg: invalid turn %q: unknown action %q", s, fields[0])
	}

	if len(fields) == 0 {
		return t, nil
	}
	if len(fields) != 2 || fields[0] != "T" {
		return Turn{}, fmt.Errorf("boardpkg: invalid turn %q: malformed capture suffix", s)
	}
	take, err := parseLocation(fields[1])
	if err != nil {
		return Turn{}, err
	}
	t.HasCapture = true
	t.TakeFrom = take
	return t, nil
}

func parseLocation(s string) (Location, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("boardpkg: invalid location %q: %w", s, err)
	}
	loc := Location(n)
	if !loc.IsValid() {
		return 0, fmt.Errorf("boardpkg: location %d out of range 1-24", n)
	}
	return loc, nil
}
