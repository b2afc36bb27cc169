package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// None marks the absence of a position, e.g. a simple move's captured square.
	None Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos indexes a cell as row*8+col. Row 0 is the top row of the board (rank 8).
type Pos int8

func NewPos(row, col int) Pos {
	if !IsOnBoard(row, col) {
		return None
	}
	return Pos(row)*MaxComponentScalar + Pos(col)
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return None, err
	}
	return MaxComponentScalar*row + col, nil
}

// IsOnBoard reports whether the row/col pair lies within the 8x8 grid.
func IsOnBoard(row, col int) bool {
	return row >= 0 && row < int(MaxComponentScalar) && col >= 0 && col < int(MaxComponentScalar)
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return p.Col().NotationComponentX() + p.Row().NotationComponentY()
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

func notationToRowCol(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func notationToCol(x byte) (Pos, error) {
	col := int(x) - 'a'
	if col < 0 || int(MaxComponentScalar) <= col {
		return 0, ErrInvalidNotation
	}
	return Pos(col), nil
}

func notationToRow(y byte) (Pos, error) {
	rank := int(y) - '0'
	if rank < 1 || int(MaxComponentScalar) < rank {
		return 0, ErrInvalidNotation
	}
	return MaxComponentScalar - Pos(rank), nil
}

// NotationComponentX returns the file letter of a column.
func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

// NotationComponentY returns the rank digit of a row.
func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + MaxComponentScalar - p))
}
