package engine

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/position"
)

// SearchStats describes the last FindBestChain call.
type SearchStats struct {
	Nodes   uint32
	Cutoffs uint32
	Score   float64
	Elapsed time.Duration
}

// Engine finds moves for one side. It owns its random source and search state,
// so a single Engine must not be used from several goroutines at once.
type Engine struct {
	maxDepth    uint8
	scoringMode ScoringMode
	pruning     bool
	rand        *board.PseudoRand
	logger      *zap.SugaredLogger

	root  board.Side
	tree  searchTree
	stats SearchStats
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	return &Engine{
		maxDepth:    cfg.MaxDepth,
		scoringMode: cfg.ScoringMode,
		pruning:     cfg.Pruning,
		rand:        cfg.newRand(),
		logger:      cfg.Logger,
	}
}

func (e *Engine) MaxDepth() uint8 {
	return e.maxDepth
}

func (e *Engine) Stats() SearchStats {
	return e.stats
}

// LegalMoves returns the legal moves of s in shuffled order and whether they are captures.
func (e *Engine) LegalMoves(b board.Board, s board.Side) ([]board.Move, bool) {
	mvs, isCapture := b.GenerateMoves(s)
	if e.rand != nil {
		e.rand.Shuffle(mvs)
	}
	return mvs, isCapture
}

// LegalMovesFrom returns the moves of the piece on pos. Squares that are off the board, empty,
// or hold a piece of the other side yield no moves.
func (e *Engine) LegalMovesFrom(b board.Board, s board.Side, pos position.Pos) ([]board.Move, bool) {
	if b.Get(pos).Side() != s {
		return nil, false
	}
	return b.GenerateMovesFrom(pos)
}

// FindBestChain returns the full turn s should play on b. The chain is empty when s cannot move.
// b is never modified.
func (e *Engine) FindBestChain(b board.Board, s board.Side) board.Chain {
	startTime := time.Now()
	e.root = s
	e.stats = SearchStats{}
	e.tree.reset()

	score := e.bestTurn(b, s, position.None, scoreAlphaInitial)
	chain := e.tree.chain()

	e.stats.Score = score
	e.stats.Elapsed = time.Since(startTime)
	e.logger.Debug(message.NewPrinter(language.English).
		Sprintf("side:%s depth:%d score:%s nodes:%d cutoffs:%d t:%s chain:%s",
			s, e.maxDepth, formatScore(score), e.stats.Nodes, e.stats.Cutoffs, e.stats.Elapsed, chain))
	return chain
}

// bestTurn picks the best move at one decision point of the searching side and records it in the tree.
// A decision point with from set continues a capture chain; it hands over to the opponent
// once that piece cannot capture anymore.
func (e *Engine) bestTurn(b board.Board, s board.Side, from position.Pos, alpha float64) float64 {
	id := e.tree.push()

	var mvs []board.Move
	var isCapture bool
	if from == position.None {
		mvs, isCapture = e.LegalMoves(b, s)
	} else {
		mvs, isCapture = b.GenerateMovesFrom(from)
		if !isCapture {
			return e.minimax(b, s.Opposite(), 0, alpha, scoreBetaInitial, position.None)
		}
	}

	bestScore := scoreAlphaInitial
	for _, mv := range mvs {
		next := e.tree.len()
		var score float64
		if isCapture {
			score = e.bestTurn(b.Apply(mv), s, mv.To, bestScore)
		} else {
			score = e.minimax(b.Apply(mv), s.Opposite(), 0, bestScore, scoreBetaInitial, position.None)
		}

		if score > bestScore || !e.tree.hasMove(id) {
			bestScore = score
			if isCapture {
				e.tree.set(id, mv, next)
			} else {
				e.tree.set(id, mv, noNode)
			}
		}
	}
	return bestScore
}

// minimax scores b with s to move, always from the searching side's point of view.
// The searching side maximises and raises alpha, its opponent minimises and lowers beta.
// Capture chain continuations (from set) stay on the same depth with the same side to move.
func (e *Engine) minimax(b board.Board, s board.Side, depth uint8, alpha, beta float64, from position.Pos) float64 {
	e.stats.Nodes++

	if depth == e.maxDepth {
		return e.Evaluate(b, e.root)
	}

	var mvs []board.Move
	var isCapture bool
	if from == position.None {
		mvs, isCapture = e.LegalMoves(b, s)
	} else {
		mvs, isCapture = b.GenerateMovesFrom(from)
		if !isCapture {
			return e.minimax(b, s.Opposite(), depth+1, alpha, beta, position.None)
		}
	}

	maximizing := s == e.root
	if len(mvs) == 0 {
		if maximizing {
			return ScoreLoss
		}
		return ScoreInfinite
	}

	minScore, maxScore := scoreBetaInitial, scoreAlphaInitial
	for _, mv := range mvs {
		var score float64
		if isCapture {
			score = e.minimax(b.Apply(mv), s, depth, alpha, beta, mv.To)
		} else {
			score = e.minimax(b.Apply(mv), s.Opposite(), depth+1, alpha, beta, position.None)
		}

		minScore = min(minScore, score)
		maxScore = max(maxScore, score)
		if maximizing {
			alpha = max(alpha, maxScore)
		} else {
			beta = min(beta, minScore)
		}

		if e.pruning && alpha >= beta {
			e.stats.Cutoffs++
			// step past the bound so the parent still orders this branch strictly
			if maximizing {
				return maxScore + 1
			}
			return minScore - 1
		}
	}

	if maximizing {
		return maxScore
	}
	return minScore
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func formatScore(s float64) string {
	switch {
	case s >= ScoreInfinite:
		return "+inf"
	case s <= ScoreLoss:
		return "loss"
	default:
		return message.NewPrinter(language.English).Sprintf("%.3f", s)
	}
}
