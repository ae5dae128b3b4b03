// Package retrograde implements the offline backward solver (§4.K):
// alternating mark_lost/mark_won passes seeded from internal/lostpos,
// parallelised over the frontier with golang.org/x/sync/errgroup and a
// reader-writer-locked pair of shared maps.
package retrograde

import "runtime"

// Config bounds one solver run.
type Config struct {
	// MaxPiecesPerTeam filters positions entering the frontier: a
	// board is only considered if both teams hold at most this many
	// pieces. Spec.md §8's tested endgame bound is 3.
	MaxPiecesPerTeam int

	// Workers caps how many goroutines share the frontier within a
	// single pass.
	Workers int
}

// DefaultConfig matches cmd/morris-solve's default flag values.
func DefaultConfig() Config {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	return Config{MaxPiecesPerTeam: 3, Workers: workers}
}
