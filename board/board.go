package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/checkers/position"
)

// Board is an 8x8 grid of cells. It is a value: copies never share state,
// and Apply returns a new board instead of mutating the receiver.
type Board struct {
	cells [Height][Width]Cell
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	cells, turn, err := parseFEN(cfg.fen)
	if err != nil {
		return Board{}, SideUnknown, err
	}
	return Board{cells: cells}, turn, nil
}

// Get returns the cell at pos, or CellEmpty when pos is off the board.
func (b Board) Get(pos position.Pos) Cell {
	if !pos.IsValid() {
		return CellEmpty
	}
	return b.cells[pos.Row()][pos.Col()]
}

func (b Board) at(row, col int) Cell {
	return b.cells[row][col]
}

// Place returns a copy of the board with c put at pos.
func (b Board) Place(pos position.Pos, c Cell) Board {
	if pos.IsValid() {
		b.cells[pos.Row()][pos.Col()] = c
	}
	return b
}

func (b Board) Clone() Board {
	return b
}

// Apply returns the board after mv. The captured cell is cleared and a man landing on
// its promotion row is crowned in the same step. Legality is not checked.
func (b Board) Apply(mv Move) Board {
	if mv.IsCapture() {
		b.cells[mv.Captured.Row()][mv.Captured.Col()] = CellEmpty
	}
	c := b.cells[mv.From.Row()][mv.From.Col()]
	if c.IsMan() && mv.To.Row() == c.Side().PromotionRow() {
		c = c.Promote()
	}
	b.cells[mv.From.Row()][mv.From.Col()] = CellEmpty
	b.cells[mv.To.Row()][mv.To.Col()] = c
	return b
}

// ApplyChain applies every move of a turn in order.
func (b Board) ApplyChain(chain Chain) Board {
	for _, mv := range chain {
		b = b.Apply(mv)
	}
	return b
}

// Count returns the number of men and kings of a side.
func (b Board) Count(s Side) (men, kings int) {
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c.Side() != s {
				continue
			}
			if c.IsKing() {
				kings++
			} else {
				men++
			}
		}
	}
	return men, kings
}

// State reports whether the side to move can still play.
func (b Board) State(turn Side) State {
	if mvs, _ := b.GenerateMoves(turn); len(mvs) != 0 {
		return StateRunning
	}
	if turn == SideWhite {
		return StateBlackWins
	}
	return StateWhiteWins
}

func (b Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells[y][x].SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

var (
	colorRank      = color.New(color.Bold)
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark  = color.New(color.FgHiWhite, color.BgGreen)
	colorHighlight = color.New(color.FgBlack, color.BgYellow)
)

// Draw renders the board for a terminal. Cells in highlight get a distinct background.
func (b Board) Draw(highlight ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(colorRank.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells[y][x].SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			paint := colorCellLight
			if (x+y)%2 == 1 {
				paint = colorCellDark
			}
			if marked[y*Width+x] {
				paint = colorHighlight
			}
			_, _ = builder.WriteString(paint.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorRank.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
