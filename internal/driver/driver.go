// Package driver implements the §6 stdin/stdout request-response loop:
// one board per line in, one turn per line out, styled after
// uci.UCI.Run()'s bufio.Scanner main loop.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/engine"
	"github.com/nickprbs/muehlespiel/internal/history"
	"github.com/nickprbs/muehlespiel/internal/movegen"
)

// Driver reads "<phase> <team> <board>" request lines and writes one
// turn encoding per line. It keeps no state of its own beyond the
// running position history §4.J's repetition check needs; every other
// input comes fresh off the request line.
type Driver struct {
	Engine *engine.Engine
	Logger *log.Logger

	hist *history.History
}

// New returns a Driver with a fresh history, ready for Run.
func New(eng *engine.Engine, logger *log.Logger) *Driver {
	return &Driver{Engine: eng, Logger: logger, hist: history.New()}
}

// Run reads request lines from in and writes the chosen turn for each
// to out, one line per request. Nothing but turn encodings reaches out;
// diagnostics go to d.Logger. Run returns once in is exhausted.
func (d *Driver) Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d.handleLine(line, w)
		if err := w.Flush(); err != nil {
			d.Logger.Fatalf("driver: writing response: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		d.Logger.Fatalf("driver: reading stdin: %v", err)
	}
}

// handleLine parses and answers a single request line. A malformed
// request (bad phase, bad team, bad board) is a fatal protocol error
// (§7): there is no recovery that keeps the two sides of the protocol
// in sync, so the process exits rather than guessing.
func (d *Driver) handleLine(line string, w *bufio.Writer) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		d.Logger.Fatalf("driver: invalid request %q: want 3 fields, got %d", line, len(fields))
	}

	phase, ok := boardpkg.ParsePhase(fields[0])
	if !ok {
		d.Logger.Fatalf("driver: invalid request %q: bad phase %q", line, fields[0])
	}
	team, ok := boardpkg.ParseTeam(fields[1])
	if !ok {
		d.Logger.Fatalf("driver: invalid request %q: bad team %q", line, fields[1])
	}
	board, err := boardpkg.Decode(fields[2])
	if err != nil {
		d.Logger.Fatalf("driver: invalid request %q: %v", line, err)
	}

	// The driver must never ask the engine to move in a position where
	// the side to move has already lost; that is a precondition
	// violation at this boundary, not a turn to answer.
	if movegen.IsGameOver(board, team, phase) {
		d.Logger.Fatalf("driver: invalid request %q: %s has no legal turn", line, team)
	}

	budget := engine.DerivePlacementBudget(board, phase)
	turn := d.Engine.Think(board, team, budget, d.hist)

	resulting := board.Apply(turn, team)
	if turn.HasCapture {
		d.hist.Reset()
	} else {
		d.hist.Record(resulting)
	}

	fmt.Fprintln(w, turn.Encode())
}
