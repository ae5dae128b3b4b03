package boardpkg

// Phase distinguishes the placing stage (first 9 turns per side) from the
// moving stage that follows. The board itself never encodes phase; every
// query takes it as an explicit parameter.
type Phase uint8

const (
	Placing Phase = iota
	Moving
)

// ParsePhase decodes the single-character request-line phase token.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "P":
		return Placing, true
	case "M":
		return Moving, true
	default:
		return 0, false
	}
}

func (p Phase) String() string {
	if p == Placing {
		return "P"
	}
	return "M"
}
