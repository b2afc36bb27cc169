package engine

import (
	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/position"
)

const (
	// ScoreInfinite is a guaranteed win, ScoreLoss a guaranteed loss. Every other score is a
	// non-negative material ratio in between.
	ScoreInfinite float64 = 1e9
	ScoreLoss     float64 = 0

	scoreAlphaInitial = ScoreLoss - 1
	scoreBetaInitial  = ScoreInfinite + 1

	kingWeightMaterial          = 4
	kingWeightMaterialPotential = 5
	potentialPerRow             = 0.05
)

// Evaluate scores b from the point of view of s: own material divided by the opponent's.
func Evaluate(b board.Board, s board.Side, mode ScoringMode) float64 {
	var ownMen, ownKings, oppMen, oppKings float64
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		c := b.Get(pos)
		if c == board.CellEmpty {
			continue
		}
		men, kings := &ownMen, &ownKings
		if c.Side() != s {
			men, kings = &oppMen, &oppKings
		}
		if c.IsKing() {
			*kings++
			continue
		}
		*men++
		if mode == ScoringModeMaterialPotential {
			*men += potentialPerRow * float64(advance(c.Side(), pos))
		}
	}

	if oppMen+oppKings == 0 {
		return ScoreInfinite
	}
	if ownMen+ownKings == 0 {
		return ScoreLoss
	}

	kingWeight := float64(kingWeightMaterial)
	if mode == ScoringModeMaterialPotential {
		kingWeight = kingWeightMaterialPotential
	}
	return (ownMen + ownKings*kingWeight) / (oppMen + oppKings*kingWeight)
}

// advance is the number of rows a man has travelled from its own back rank.
func advance(s board.Side, pos position.Pos) position.Pos {
	if s == board.SideWhite {
		return board.Height - 1 - pos.Row()
	}
	return pos.Row()
}

func (e *Engine) Evaluate(b board.Board, s board.Side) float64 {
	return Evaluate(b, s, e.scoringMode)
}
