package retrograde

import (
	"golang.org/x/sync/errgroup"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
)

// chunk splits items into at most n roughly-equal, contiguous slices,
// giving each worker goroutine its own partition of the frontier (§4.K,
// "both passes partition the frontier across worker threads").
func chunk(items []boardpkg.Board, n int) [][]boardpkg.Board {
	if n < 1 {
		n = 1
	}
	if n > len(items) {
		n = len(items)
	}
	if n == 0 {
		return nil
	}
	chunks := make([][]boardpkg.Board, n)
	base := len(items) / n
	extra := len(items) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks[i] = items[start : start+size]
		start += size
	}
	return chunks
}

// expand runs fn over every item in items, partitioned across
// s.cfg.Workers goroutines, and merges each goroutine's per-thread-
// local results at the end (§4.K).
func (s *Solver) expand(items []boardpkg.Board, fn func(boardpkg.Board) []boardpkg.Board) ([]boardpkg.Board, error) {
	chunks := chunk(items, s.cfg.Workers)
	results := make([][]boardpkg.Board, len(chunks))

	g := errgroup.Group{}
	for i, part := range chunks {
		i, part := i, part
		g.Go(func() error {
			var local []boardpkg.Board
			for _, b := range part {
				local = append(local, fn(b)...)
			}
			results[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []boardpkg.Board
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

// filter runs pred over every item in items, partitioned the same way
// as expand, and returns the items for which pred reported true.
func (s *Solver) filter(items []boardpkg.Board, pred func(boardpkg.Board) bool) []boardpkg.Board {
	chunks := chunk(items, s.cfg.Workers)
	results := make([][]boardpkg.Board, len(chunks))

	g := errgroup.Group{}
	for i, part := range chunks {
		i, part := i, part
		g.Go(func() error {
			var local []boardpkg.Board
			for _, b := range part {
				if pred(b) {
					local = append(local, b)
				}
			}
			results[i] = local
			return nil
		})
	}
	_ = g.Wait() // pred never errors

	var merged []boardpkg.Board
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// dedupeBoards removes duplicate boards, preserving first-seen order.
func dedupeBoards(boards []boardpkg.Board) []boardpkg.Board {
	seen := make(map[boardpkg.Board]struct{}, len(boards))
	out := make([]boardpkg.Board, 0, len(boards))
	for _, b := range boards {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

// withinBound reports whether both teams hold at most maxPerTeam pieces
// on b (§4.K's frontier-entry filter).
func withinBound(b boardpkg.Board, maxPerTeam int) bool {
	return b.NumPieces(boardpkg.White) <= maxPerTeam && b.NumPieces(boardpkg.Black) <= maxPerTeam
}
