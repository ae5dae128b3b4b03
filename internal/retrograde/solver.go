package retrograde

import (
	"context"
	"log"
	"sync"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/lostpos"
	"github.com/nickprbs/muehlespiel/internal/movegen"
	"github.com/nickprbs/muehlespiel/internal/oracle"
)

// Solver runs the §4.K backward induction and accumulates the result in
// two in-memory maps, keyed by the same White-oriented canonical board
// the online engine's oracle looks up (§9's "killer-turn bypass
// orientation"): a lost/won verdict never needs to record which real
// colour it was computed for, since the game is symmetric in Black and
// White and a (board, mover) pair's verdict is exactly the verdict of
// its oracle.CanonicalKey.
type Solver struct {
	cfg Config

	// Logger, if non-nil, receives per-pass progress lines
	// (cmd/morris-solve). Nil is valid and silent.
	Logger *log.Logger

	mu   sync.RWMutex
	lost map[boardpkg.Board]int
	won  map[boardpkg.Board]int
}

// New returns an empty solver.
func New(cfg Config) *Solver {
	return &Solver{
		cfg:  cfg,
		lost: make(map[boardpkg.Board]int),
		won:  make(map[boardpkg.Board]int),
	}
}

// Run executes the alternating mark_lost/mark_won passes (§4.K) until a
// pass discovers nothing new. Seeding only from White's lost positions
// is sufficient: any Black-to-move loss is the colour-inversion of some
// White-to-move loss, and the oracle normalises every lookup onto the
// White-oriented form before consulting these maps.
func (s *Solver) Run(ctx context.Context) error {
	const loser = boardpkg.White
	winner := loser.Opponent()

	frontier := s.filterBound(lostpos.Generate(loser))
	distance := 0
	pass := 1

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		candidates, err := s.markLostPass(frontier, loser, distance)
		if err != nil {
			return err
		}
		s.logf("mark_lost pass %d: %d positions", pass, len(frontier))

		fresh := s.markWonPass(candidates, winner, distance+1)
		s.logf("mark_won pass %d: %d positions", pass, len(fresh))

		next, err := s.nextLostFrontier(fresh, winner, distance+2)
		if err != nil {
			return err
		}

		frontier = next
		distance += 2
		pass++
	}
	return nil
}

// logf writes a progress line if a Logger was configured; otherwise it
// is a no-op, matching the teacher's "logging is always optional at
// the call site" style.
func (s *Solver) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// markLostPass records every board in frontier (loser to move, already
// lost) at distance, then returns the deduplicated, bound-filtered
// parents reached by the opposing team's move: candidates for the next
// mark_won pass.
func (s *Solver) markLostPass(frontier []boardpkg.Board, loser boardpkg.Team, distance int) ([]boardpkg.Board, error) {
	s.mu.Lock()
	for _, b := range frontier {
		key := oracle.CanonicalKey(b, loser)
		if _, ok := s.lost[key]; !ok {
			s.lost[key] = distance
		}
	}
	s.mu.Unlock()

	opponent := loser.Opponent()
	parents, err := s.expand(frontier, func(b boardpkg.Board) []boardpkg.Board {
		return movegen.ParentBoards(b, opponent, boardpkg.Moving)
	})
	if err != nil {
		return nil, err
	}
	return s.filterBound(dedupeBoards(parents)), nil
}

// markWonPass records each not-yet-known candidate (winner to move) at
// distance, returning only the newly-inserted ones: q's backward search
// (nextLostFrontier) only needs to examine positions it has not already
// settled.
func (s *Solver) markWonPass(candidates []boardpkg.Board, winner boardpkg.Team, distance int) []boardpkg.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]boardpkg.Board, 0, len(candidates))
	for _, b := range candidates {
		key := oracle.CanonicalKey(b, winner)
		if _, ok := s.won[key]; ok {
			continue
		}
		s.won[key] = distance
		fresh = append(fresh, b)
	}
	return fresh
}

// nextLostFrontier enumerates the parents of fresh (reached by the
// losing team's move), keeps those whose every legal reply is already
// in the won map, and records them as newly lost at distance.
func (s *Solver) nextLostFrontier(fresh []boardpkg.Board, winner boardpkg.Team, distance int) ([]boardpkg.Board, error) {
	loser := winner.Opponent()

	parents, err := s.expand(fresh, func(p boardpkg.Board) []boardpkg.Board {
		return movegen.ParentBoards(p, loser, boardpkg.Moving)
	})
	if err != nil {
		return nil, err
	}
	candidates := s.filterBound(dedupeBoards(parents))

	newlyLost := s.filter(candidates, func(q boardpkg.Board) bool {
		return s.allRepliesWon(q, loser, winner)
	})

	s.mu.Lock()
	for _, q := range newlyLost {
		key := oracle.CanonicalKey(q, loser)
		if _, ok := s.lost[key]; !ok {
			s.lost[key] = distance
		}
	}
	s.mu.Unlock()

	return newlyLost, nil
}

// allRepliesWon reports whether every legal move mover can make from q
// lands in a position already recorded as won for opponent.
func (s *Solver) allRepliesWon(q boardpkg.Board, mover, opponent boardpkg.Team) bool {
	children := movegen.ChildTurns(q, mover, boardpkg.Moving)
	if len(children) == 0 {
		// No legal move at all is itself a loss (movegen.IsGameOver
		// would already say so); vacuously every reply is won.
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range children {
		childBoard := q.Apply(t, mover)
		key := oracle.CanonicalKey(childBoard, opponent)
		if _, ok := s.won[key]; !ok {
			return false
		}
	}
	return true
}

// filterBound drops any board exceeding the configured piece-count
// bound, matching items' relative order.
func (s *Solver) filterBound(boards []boardpkg.Board) []boardpkg.Board {
	out := make([]boardpkg.Board, 0, len(boards))
	for _, b := range boards {
		if withinBound(b, s.cfg.MaxPiecesPerTeam) {
			out = append(out, b)
		}
	}
	return out
}

// WriteTo persists every accumulated verdict through a single oracle
// batch. Keys are already in the oracle's canonical form, produced by
// oracle.CanonicalKey at insertion time.
func (s *Solver) WriteTo(oc *oracle.Oracle) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch := oc.NewBatch()
	for b, d := range s.lost {
		if err := batch.Put(b, oracle.Lost, d); err != nil {
			return err
		}
	}
	for b, d := range s.won {
		if err := batch.Put(b, oracle.Won, d); err != nil {
			return err
		}
	}
	return batch.Flush()
}

// Lost reports s's current count of distinct lost positions, mainly
// for progress logging (cmd/morris-solve).
func (s *Solver) Lost() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lost)
}

// Won reports s's current count of distinct won positions.
func (s *Solver) Won() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.won)
}
