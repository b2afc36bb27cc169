package board

// Cell is the content of a single square. White codes are odd and black codes are even,
// and a king code is always its man code + 2.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWhiteMan
	CellBlackMan
	CellWhiteKing
	CellBlackKing
)

func NewCell(s Side, king bool) Cell {
	var c Cell
	switch s {
	case SideWhite:
		c = CellWhiteMan
	case SideBlack:
		c = CellBlackMan
	default:
		return CellEmpty
	}
	if king {
		c += 2
	}
	return c
}

func (c Cell) Side() Side {
	switch {
	case c == CellEmpty || c > CellBlackKing:
		return SideUnknown
	case c%2 == 1:
		return SideWhite
	default:
		return SideBlack
	}
}

func (c Cell) IsMan() bool {
	return c == CellWhiteMan || c == CellBlackMan
}

func (c Cell) IsKing() bool {
	return c == CellWhiteKing || c == CellBlackKing
}

// Promote returns the king variant of a man. Kings and empty cells are returned as is.
func (c Cell) Promote() Cell {
	if c.IsMan() {
		return c + 2
	}
	return c
}

func (c Cell) String() string {
	switch c {
	case CellWhiteMan:
		return "White Man"
	case CellBlackMan:
		return "Black Man"
	case CellWhiteKing:
		return "White King"
	case CellBlackKing:
		return "Black King"
	default:
		return ""
	}
}

func (c Cell) SymbolFEN() string {
	switch c {
	case CellWhiteMan:
		return "w"
	case CellBlackMan:
		return "b"
	case CellWhiteKing:
		return "W"
	case CellBlackKing:
		return "B"
	default:
		return ""
	}
}

func (c Cell) SymbolUnicode() string {
	switch c {
	case CellWhiteMan:
		return "⛀"
	case CellWhiteKing:
		return "⛁"
	case CellBlackMan:
		return "⛂"
	case CellBlackKing:
		return "⛃"
	default:
		return ""
	}
}
