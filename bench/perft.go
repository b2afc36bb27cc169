package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/checkers/board"
)

// perftStats counts the leaf turns of a perft run by kind.
type perftStats struct {
	nodes      uint64
	captures   uint64
	multiJumps uint64
	promotions uint64
}

func (s *perftStats) countLeaves(b board.Board, turns []board.Chain, concurrent bool) {
	var cap, multi, pro uint64
	for _, turn := range turns {
		if turn.IsCapture() {
			cap++
		}
		if len(turn) > 1 {
			multi++
		}
		if b.Get(turn[0].From).IsMan() && b.ApplyChain(turn).Get(turn[len(turn)-1].To).IsKing() {
			pro++
		}
	}
	if concurrent {
		atomic.AddUint64(&s.nodes, uint64(len(turns)))
		atomic.AddUint64(&s.captures, cap)
		atomic.AddUint64(&s.multiJumps, multi)
		atomic.AddUint64(&s.promotions, pro)
		return
	}
	s.nodes += uint64(len(turns))
	s.captures += cap
	s.multiJumps += multi
	s.promotions += pro
}

// Perft counts the complete turns reachable from fen in depth plies and reports them on out.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, turn, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var stats perftStats
	start := time.Now()
	run(b, turn, depth, true, verbose, out, &stats)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d multi=%d pro=%d (%.3fs elapsed)",
			depth, stats.nodes, int(float64(stats.nodes)/end.Sub(start).Seconds()),
			stats.captures, stats.multiJumps, stats.promotions, end.Sub(start).Seconds())

	return nil
}

type perftFunc func(b board.Board, s board.Side, d int, root, verbose bool, out chan string, stats *perftStats) uint64

func runPerft(b board.Board, s board.Side, d int, root, verbose bool, out chan string, stats *perftStats) uint64 {
	if d == 0 {
		stats.nodes++
		return 1
	}

	var sum uint64
	for _, turn := range b.GenerateTurns(s) {
		var child uint64
		bb := b.ApplyChain(turn)
		if d != 1 {
			child = runPerft(bb, s.Opposite(), d-1, false, verbose, out, stats)
		} else {
			stats.countLeaves(b, []board.Chain{turn}, false)
			child = 1
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", turn, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b board.Board, s board.Side, d int, root, verbose bool, out chan string, stats *perftStats) uint64 {
	if d == 0 {
		atomic.AddUint64(&stats.nodes, 1)
		return 1
	}

	turns := b.GenerateTurns(s)
	if d == 1 {
		stats.countLeaves(b, turns, true)
		if verbose && root {
			for _, turn := range turns {
				out <- fmt.Sprintf("%s: %d", turn, 1)
			}
		}
		return uint64(len(turns))
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, turn := range turns {
		turn := turn
		wg.Add(1)
		go func() {
			defer wg.Done()
			child := runPerftParallel(b.ApplyChain(turn), s.Opposite(), d-1, false, verbose, out, stats)
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", turn, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
