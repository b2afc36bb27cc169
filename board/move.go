package board

import (
	"strings"

	"github.com/daystram/checkers/position"
)

// Move is a single step of a piece. Captured is position.None for simple moves.
type Move struct {
	From, To position.Pos
	Captured position.Pos
}

func NewMove(from, to position.Pos) Move {
	return Move{From: from, To: to, Captured: position.None}
}

func NewCapture(from, to, captured position.Pos) Move {
	return Move{From: from, To: to, Captured: captured}
}

func (m Move) IsCapture() bool {
	return m.Captured != position.None
}

func (m Move) Equals(other Move) bool {
	return m == other
}

func (m Move) String() string {
	if m.IsCapture() {
		return m.From.Notation() + "x" + m.To.Notation()
	}
	return m.From.Notation() + "-" + m.To.Notation()
}

// Chain is the ordered list of moves making up one full turn.
type Chain []Move

func (c Chain) IsCapture() bool {
	return len(c) > 0 && c[0].IsCapture()
}

// Captured lists every square emptied by the chain.
func (c Chain) Captured() []position.Pos {
	var caps []position.Pos
	for _, mv := range c {
		if mv.IsCapture() {
			caps = append(caps, mv.Captured)
		}
	}
	return caps
}

func (c Chain) Equals(other Chain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

func (c Chain) String() string {
	if len(c) == 0 {
		return ""
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(c[0].From.Notation())
	for _, mv := range c {
		if mv.IsCapture() {
			_, _ = builder.WriteRune('x')
		} else {
			_, _ = builder.WriteRune('-')
		}
		_, _ = builder.WriteString(mv.To.Notation())
	}
	return builder.String()
}
