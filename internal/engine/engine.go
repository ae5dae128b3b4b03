package engine

import (
	"sync/atomic"
	"time"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/history"
	"github.com/nickprbs/muehlespiel/internal/movegen"
	"github.com/nickprbs/muehlespiel/internal/oracle"
)

// Engine answers one request at a time by running the worker/controller
// pair described in §4.J and §5. Oracle may be nil, in which case both
// the pre-search shortcut and the repetition-handling oracle lookup are
// skipped.
type Engine struct {
	Config Config
	Oracle *oracle.Oracle
}

// New builds an Engine with cfg and an optional oracle reader.
func New(cfg Config, oc *oracle.Oracle) *Engine {
	return &Engine{Config: cfg, Oracle: oc}
}

// Think returns the turn the engine plays from b as team, given the
// number of placements each side has left and the game's position
// history. It always returns a member of
// movegen.ChildTurns(b, team, budget.PhaseFor(team)) unless that set is
// empty, in which case it returns the zero Turn.
func (e *Engine) Think(b boardpkg.Board, team boardpkg.Team, budget PlacementBudget, hist *history.History) boardpkg.Turn {
	if turn, ok := oracleShortcut(e.Oracle, b, team, budget); ok {
		return turn
	}

	tt := NewTranspositionTable(e.Config.TTSizeMB)
	var best atomic.Value
	stop := &atomic.Bool{}
	done := make(chan struct{})

	go func() {
		defer close(done)
		e.runWorker(b, team, budget, hist, tt, stop, &best)
	}()

	timer := time.NewTimer(e.Config.ThinkTime)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-done:
	}
	stop.Store(true)
	<-done

	if turn, ok := best.Load().(boardpkg.Turn); ok {
		return turn
	}

	// The worker never completed a single depth within the think time
	// (a pathologically small configured budget); fall back to the
	// first legal child so the driver always gets a turn to emit.
	children := movegen.ChildTurns(b, team, budget.PhaseFor(team))
	if len(children) == 0 {
		return boardpkg.Turn{}
	}
	return children[0]
}

// runWorker is the worker half of the §4.J thread pair: iterative
// deepening negamax, publishing the best move after each depth
// completes, checking the stop flag only at the top of the outer loop
// so a running depth is never interrupted mid-iteration.
func (e *Engine) runWorker(b boardpkg.Board, team boardpkg.Team, budget PlacementBudget, hist *history.History, tt *TranspositionTable, stop *atomic.Bool, best *atomic.Value) {
	for depth := 1; ; depth++ {
		if stop.Load() {
			return
		}
		_, turn, ok := rootSearch(b, team, budget, hist, e.Oracle, tt, depth)
		if !ok {
			return
		}
		best.Store(turn)
	}
}
