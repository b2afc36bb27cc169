package board

import "github.com/daystram/checkers/position"

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	// DefaultStartingPositionFEN lists rows from row 0 (Black's back rank) down to row 7 (White's back rank).
	DefaultStartingPositionFEN = "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 w"
)

// diagonals are ordered up-left, up-right, down-left, down-right.
var diagonals = [4][2]int{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}
