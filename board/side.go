package board

import "github.com/daystram/checkers/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the row step of a man of this side. White advances towards row 0.
func (s Side) Forward() int {
	if s == SideWhite {
		return -1
	}
	return 1
}

// PromotionRow is the opponent's back rank, where men of this side become kings.
func (s Side) PromotionRow() position.Pos {
	if s == SideWhite {
		return 0
	}
	return Height - 1
}
