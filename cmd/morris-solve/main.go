// Command morris-solve runs the offline retrograde solver (§4.K) and
// persists its verdicts through the oracle store, and doubles as the
// §8 scenario-5 child-turn enumeration harness when given -input.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/movegen"
	"github.com/nickprbs/muehlespiel/internal/oracle"
	"github.com/nickprbs/muehlespiel/internal/retrograde"
)

var (
	maxPieces  = flag.Int("max-pieces", 3, "maximum pieces per team admitted to the retrograde frontier")
	workers    = flag.Int("workers", retrograde.DefaultConfig().Workers, "worker goroutines per frontier pass")
	dbPath     = flag.String("db", "", "oracle database directory (default: platform data dir)")
	inputPath  = flag.String("input", "", "run the child-turn enumeration harness against this file instead of solving")
	outputPath = flag.String("output", "", "output file for the enumeration harness (required with -input)")
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *inputPath != "" {
		if *outputPath == "" {
			logger.Fatal("morris-solve: -output is required when -input is set")
		}
		if err := runEnumerationHarness(*inputPath, *outputPath); err != nil {
			logger.Fatalf("morris-solve: %v", err)
		}
		return
	}

	dir := *dbPath
	if dir == "" {
		var err error
		dir, err = oracle.DefaultDir()
		if err != nil {
			logger.Fatalf("morris-solve: resolving default oracle directory: %v", err)
		}
	}

	oc, err := oracle.Open(dir)
	if err != nil {
		logger.Fatalf("morris-solve: opening oracle at %s: %v", dir, err)
	}
	defer oc.Close()

	s := retrograde.New(retrograde.Config{MaxPiecesPerTeam: *maxPieces, Workers: *workers})
	s.Logger = logger

	if err := s.Run(context.Background()); err != nil {
		logger.Fatalf("morris-solve: solving: %v", err)
	}
	logger.Printf("solved: %d lost positions, %d won positions", s.Lost(), s.Won())

	if err := s.WriteTo(oc); err != nil {
		logger.Fatalf("morris-solve: writing oracle: %v", err)
	}
}

// runEnumerationHarness reads one "<phase> <team> <board>" request per
// line from inputPath and writes one "<turns> <mill-turns> <capturable>"
// reference line per board to outputPath (§6/§8 scenario 5): the number
// of distinct place/move actions (the capture variants of one action
// count once), how many of those actions close a mill, and how many
// distinct opponent pieces are capturable across the mill-closing
// actions.
func runEnumerationHarness(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("line %d: want 3 fields, got %d", lineNo, len(fields))
		}
		phase, ok := boardpkg.ParsePhase(fields[0])
		if !ok {
			return fmt.Errorf("line %d: invalid phase %q", lineNo, fields[0])
		}
		team, ok := boardpkg.ParseTeam(fields[1])
		if !ok {
			return fmt.Errorf("line %d: invalid team %q", lineNo, fields[1])
		}
		board, err := boardpkg.Decode(fields[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		turnCount, millActions, capturable := summarizeTurns(movegen.ChildTurns(board, team, phase))
		fmt.Fprintf(w, "%d %d %d\n", turnCount, millActions, capturable)
	}
	return scanner.Err()
}

// action identifies a place or slide/fly by its source and destination
// alone, collapsing the capture-target variants movegen.ChildTurns
// produces one-per-capturable-opponent for every mill-closing action.
type action struct {
	isMove   bool
	from, to boardpkg.Location
}

// summarizeTurns reduces turns to the (action count, mill-closing
// action count, distinct capturable opponent location count) triple
// §8 scenario 5 checks against a reference.
func summarizeTurns(turns []boardpkg.Turn) (turnCount, millActions, capturable int) {
	closesMill := make(map[action]bool)
	captures := make(map[boardpkg.Location]struct{})

	for _, t := range turns {
		a := action{t.IsMove, t.From, t.To}
		if t.HasCapture {
			closesMill[a] = true
			captures[t.TakeFrom] = struct{}{}
		} else if _, ok := closesMill[a]; !ok {
			closesMill[a] = false
		}
	}

	for _, mill := range closesMill {
		if mill {
			millActions++
		}
	}
	return len(closesMill), millActions, len(captures)
}
