package board

import "github.com/daystram/checkers/position"

// GenerateMoves returns the legal single moves of side s in board order, and whether they are captures.
// Captures are mandatory: once any piece can capture, simple moves are dropped.
func (b Board) GenerateMoves(s Side) ([]Move, bool) {
	var mvs []Move
	var isCapture bool
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.Get(pos).Side() != s {
			continue
		}
		pieceMoves, pieceCapture := b.GenerateMovesFrom(pos)
		if pieceCapture && !isCapture {
			isCapture = true
			mvs = mvs[:0]
		}
		if pieceCapture == isCapture {
			mvs = append(mvs, pieceMoves...)
		}
	}
	return mvs, isCapture
}

// GenerateMovesFrom returns the moves of the piece standing on pos. If the piece can capture,
// only its captures are returned and the flag is set. Empty or off-board squares yield nothing.
func (b Board) GenerateMovesFrom(pos position.Pos) ([]Move, bool) {
	c := b.Get(pos)
	if c == CellEmpty {
		return nil, false
	}
	row, col := int(pos.Row()), int(pos.Col())

	var mvs []Move
	if c.IsKing() {
		mvs = b.genKingCaptures(pos, row, col, c.Side())
	} else {
		mvs = b.genManCaptures(pos, row, col, c.Side())
	}
	if len(mvs) != 0 {
		return mvs, true
	}

	if c.IsKing() {
		return b.genKingSteps(pos, row, col), false
	}
	return b.genManSteps(pos, row, col, c.Side()), false
}

// A man captures in all four directions by jumping an adjacent opponent onto an empty cell.
func (b Board) genManCaptures(from position.Pos, row, col int, s Side) []Move {
	var mvs []Move
	for _, d := range diagonals {
		toRow, toCol := row+2*d[0], col+2*d[1]
		if !position.IsOnBoard(toRow, toCol) || b.at(toRow, toCol) != CellEmpty {
			continue
		}
		midRow, midCol := row+d[0], col+d[1]
		if b.at(midRow, midCol).Side() != s.Opposite() {
			continue
		}
		mvs = append(mvs, NewCapture(from, position.NewPos(toRow, toCol), position.NewPos(midRow, midCol)))
	}
	return mvs
}

// A king slides along a diagonal over empty cells, jumps the first opponent piece it meets,
// and may land on any empty cell behind it up to the next obstruction.
func (b Board) genKingCaptures(from position.Pos, row, col int, s Side) []Move {
	var mvs []Move
	for _, d := range diagonals {
		captured := position.None
		for r, c := row+d[0], col+d[1]; position.IsOnBoard(r, c); r, c = r+d[0], c+d[1] {
			cell := b.at(r, c)
			if cell == CellEmpty {
				if captured != position.None {
					mvs = append(mvs, NewCapture(from, position.NewPos(r, c), captured))
				}
				continue
			}
			if cell.Side() == s || captured != position.None {
				break
			}
			captured = position.NewPos(r, c)
		}
	}
	return mvs
}

func (b Board) genManSteps(from position.Pos, row, col int, s Side) []Move {
	var mvs []Move
	toRow := row + s.Forward()
	for _, toCol := range [2]int{col - 1, col + 1} {
		if !position.IsOnBoard(toRow, toCol) || b.at(toRow, toCol) != CellEmpty {
			continue
		}
		mvs = append(mvs, NewMove(from, position.NewPos(toRow, toCol)))
	}
	return mvs
}

func (b Board) genKingSteps(from position.Pos, row, col int) []Move {
	var mvs []Move
	for _, d := range diagonals {
		for r, c := row+d[0], col+d[1]; position.IsOnBoard(r, c); r, c = r+d[0], c+d[1] {
			if b.at(r, c) != CellEmpty {
				break
			}
			mvs = append(mvs, NewMove(from, position.NewPos(r, c)))
		}
	}
	return mvs
}

// GenerateTurns expands every legal move of s into complete turns, following capture
// chains until the moving piece has nothing left to capture.
func (b Board) GenerateTurns(s Side) []Chain {
	mvs, isCapture := b.GenerateMoves(s)
	var turns []Chain
	for _, mv := range mvs {
		if !isCapture {
			turns = append(turns, Chain{mv})
			continue
		}
		turns = b.Apply(mv).expandChain(Chain{mv}, turns)
	}
	return turns
}

func (b Board) expandChain(chain Chain, out []Chain) []Chain {
	next, isCapture := b.GenerateMovesFrom(chain[len(chain)-1].To)
	if !isCapture {
		return append(out, chain)
	}
	for _, mv := range next {
		extended := make(Chain, len(chain), len(chain)+1)
		copy(extended, chain)
		out = b.Apply(mv).expandChain(append(extended, mv), out)
	}
	return out
}
