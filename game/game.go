package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/config"
	"github.com/daystram/checkers/engine"
	"github.com/daystram/checkers/position"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNotBotTurn    = errors.New("side to move is not a bot")
)

// snapshot is the game right before a turn was played.
type snapshot struct {
	board   board.Board
	turn    board.Side
	turnNum int
	state   board.State
	chain   board.Chain
	bot     bool
}

// Game tracks one match between two sides, each either a human feeding moves through Play
// or a bot driven by PlayBot. It is not safe for concurrent use.
type Game struct {
	cfg     *config.Config
	logger  *zap.SugaredLogger
	engines map[board.Side]*engine.Engine

	board   board.Board
	turn    board.Side
	turnNum int
	state   board.State

	// series is the piece in the middle of a capture series, chain the moves played this turn.
	series position.Pos
	chain  board.Chain

	history []snapshot
}

type gameConfig struct {
	fen    string
	logger *zap.SugaredLogger
}

type GameOption func(*gameConfig)

func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func WithLogger(logger *zap.SugaredLogger) GameOption {
	return func(cfg *gameConfig) {
		cfg.logger = logger
	}
}

func NewGame(cfg *config.Config, opts ...GameOption) (*Game, error) {
	gcfg := &gameConfig{
		fen: board.DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(gcfg)
	}
	if gcfg.logger == nil {
		gcfg.logger = zap.NewNop().Sugar()
	}

	b, turn, err := board.NewBoard(board.WithFEN(gcfg.fen))
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		logger:  gcfg.logger,
		engines: make(map[board.Side]*engine.Engine),
		board:   b,
		turn:    turn,
		series:  position.None,
	}
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		if cfg.IsBot(s) {
			g.engines[s] = engine.NewEngine(cfg.EngineConfig(s, g.logger))
		}
	}
	g.state = g.computeState()
	return g, nil
}

func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) TurnNumber() int {
	return g.turnNum
}

func (g *Game) State() board.State {
	return g.state
}

// InSeries returns the piece that has to keep capturing, or position.None.
func (g *Game) InSeries() position.Pos {
	return g.series
}

func (g *Game) IsBotTurn() bool {
	_, ok := g.engines[g.turn]
	return ok
}

// Turns lists the chains played so far, oldest first.
func (g *Game) Turns() []board.Chain {
	turns := make([]board.Chain, 0, len(g.history))
	for _, snap := range g.history {
		if snap.chain != nil {
			turns = append(turns, snap.chain)
		}
	}
	return turns
}

// LegalMoves returns the moves the side to move may play next. During a capture series only
// the captures of the capturing piece are allowed.
func (g *Game) LegalMoves() []board.Move {
	if !g.state.IsRunning() {
		return nil
	}
	if g.series != position.None {
		mvs, _ := g.board.GenerateMovesFrom(g.series)
		return mvs
	}
	mvs, _ := g.board.GenerateMoves(g.turn)
	return mvs
}

// Play moves the piece on from to to for the side to move. After a capture the same piece
// must capture again while it can, and the turn only passes once the series ends.
func (g *Game) Play(from, to position.Pos) (board.Move, error) {
	if !g.state.IsRunning() {
		return board.Move{}, ErrGameOver
	}

	var mv board.Move
	var found bool
	for _, legal := range g.LegalMoves() {
		if legal.From == from && legal.To == to {
			mv, found = legal, true
			break
		}
	}
	if !found {
		return board.Move{}, fmt.Errorf("%w: %s-%s", ErrIllegalMove, from, to)
	}

	if g.series == position.None {
		g.pushSnapshot(false)
	}
	g.board = g.board.Apply(mv)
	g.chain = append(g.chain, mv)

	if mv.IsCapture() {
		if _, isCapture := g.board.GenerateMovesFrom(mv.To); isCapture {
			g.series = mv.To
			return mv, nil
		}
	}
	g.endTurn()
	return mv, nil
}

// PlayBot lets the engine of the side to move play a whole turn. The search runs alongside the
// configured bot delay, so the turn takes at least that long. A cancelled ctx abandons the turn
// once the search returns.
func (g *Game) PlayBot(ctx context.Context) (board.Chain, error) {
	if !g.state.IsRunning() {
		return nil, ErrGameOver
	}
	e, ok := g.engines[g.turn]
	if !ok {
		return nil, ErrNotBotTurn
	}

	timer := time.NewTimer(time.Duration(g.cfg.Bot.BotDelayMS) * time.Millisecond)
	defer timer.Stop()

	result := make(chan board.Chain, 1)
	b, turn := g.board, g.turn
	go func() {
		result <- e.FindBestChain(b, turn)
	}()
	chain := <-result

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: %s has no moves", ErrIllegalMove, g.turn)
	}
	g.pushSnapshot(true)
	g.board = g.board.ApplyChain(chain)
	g.chain = chain
	g.endTurn()
	return chain, nil
}

// Run plays bot turns until the game ends.
func (g *Game) Run(ctx context.Context) (board.State, error) {
	for g.state.IsRunning() {
		if _, err := g.PlayBot(ctx); err != nil {
			return g.state, err
		}
	}
	return g.state, nil
}

// Undo takes back the last turn. A capture series in progress is rewound to its start.
// When the last turn was a bot's reply to a human, the human's turn is taken back too.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrNothingToUndo
	}

	if g.series == position.None {
		last := len(g.history) - 1
		if g.history[last].bot && last > 0 && !g.history[last-1].bot {
			g.history = g.history[:last]
		}
	}
	snap := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.board = snap.board
	g.turn = snap.turn
	g.turnNum = snap.turnNum
	g.state = snap.state
	g.series = position.None
	g.chain = nil
	g.logger.Infow("undo", "turn", g.turnNum, "side", g.turn.String())
	return nil
}

func (g *Game) pushSnapshot(bot bool) {
	g.history = append(g.history, snapshot{
		board:   g.board,
		turn:    g.turn,
		turnNum: g.turnNum,
		state:   g.state,
		bot:     bot,
	})
}

func (g *Game) endTurn() {
	g.history[len(g.history)-1].chain = g.chain
	g.logger.Infow("turn played",
		"turn", g.turnNum,
		"side", g.turn.String(),
		"chain", g.chain.String(),
	)

	g.chain = nil
	g.series = position.None
	g.turn = g.turn.Opposite()
	g.turnNum++
	g.state = g.computeState()
	if !g.state.IsRunning() {
		g.logger.Infow("game over", "state", g.state.String(), "turns", g.turnNum)
	}
}

func (g *Game) computeState() board.State {
	if g.turnNum >= g.cfg.Game.MaxNumTurns {
		return board.StateDraw
	}
	return g.board.State(g.turn)
}
