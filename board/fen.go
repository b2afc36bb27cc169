package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/daystram/checkers/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// parseFEN reads "<row0>/<row1>/.../<row7> <w|b>". Digits skip empty cells,
// w/b are men and W/B are kings.
func parseFEN(fen string) ([Height][Width]Cell, Side, error) {
	var cells [Height][Width]Cell
	segments := strings.Split(fen, " ")
	if len(segments) != 2 {
		return cells, SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return cells, SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y, row := range rows {
		x := 0
		for _, sym := range row {
			if x >= int(Width) {
				return cells, SideUnknown, fmt.Errorf("%w: too many cells in row %d", ErrInvalidFEN, y)
			}
			var c Cell
			switch sym {
			case 'w':
				c = CellWhiteMan
			case 'b':
				c = CellBlackMan
			case 'W':
				c = CellWhiteKing
			case 'B':
				c = CellBlackKing
			default:
				if sym != '0' && unicode.IsDigit(sym) {
					skip := int(sym - '0')
					if x+skip <= int(Width) {
						x += skip
						continue
					}
					return cells, SideUnknown, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return cells, SideUnknown, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			cells[y][x] = c
			x++
		}
		if x != int(Width) {
			return cells, SideUnknown, fmt.Errorf("%w: missing cells in row %d", ErrInvalidFEN, y)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return cells, SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}
	return cells, turn, nil
}

// FEN serialises the board with the given side to move.
func (b Board) FEN(turn Side) string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			c := b.cells[y][x]
			if c == CellEmpty {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(c.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if turn == SideBlack {
		_, _ = builder.WriteString(" b")
	} else {
		_, _ = builder.WriteString(" w")
	}
	return builder.String()
}
