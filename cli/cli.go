package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/daystram/checkers/bench"
	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/config"
	"github.com/daystram/checkers/engine"
	"github.com/daystram/checkers/game"
	"github.com/daystram/checkers/position"
)

var (
	EngineName   = "Checkers"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		depth:         engine.DefaultMaxDepth,
		scoringMode:   engine.ScoringModeMaterialPotential,
		pruning:       true,
		parallelPerft: true,
	}
)

type options struct {
	depth         uint8
	scoringMode   engine.ScoringMode
	pruning       bool
	parallelPerft bool
	color         bool
}

// Interface speaks a line based text protocol over in and out, in the spirit of UCI.
type Interface struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	in     io.Reader
	out    io.Writer
	outMu  sync.Mutex

	game    *game.Game
	engine  *engine.Engine
	options options
}

func NewInterface(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.SugaredLogger) *Interface {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Interface{
		cfg:     cfg,
		logger:  logger,
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

func (i *Interface) Run(ctx context.Context) error {
	if err := i.reset(board.DefaultStartingPositionFEN); err != nil {
		return err
	}

	reader := bufio.NewReader(i.in)
	for {
		cmd, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if quit := i.dispatch(ctx, strings.Fields(cmd)); quit || err != nil {
			return nil
		}
	}
}

func (i *Interface) dispatch(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "checkers":
		i.commandHello()
	case "isready":
		i.println("readyok")
	case "newgame":
		i.commandPosition([]string{"startpos"})
	case "setoption":
		i.commandSetOption(args[1:])
	case "position":
		i.commandPosition(args[1:])
	case "d":
		i.commandDraw()
	case "moves":
		i.commandMoves(args[1:])
	case "move":
		i.commandMove(args[1:])
	case "go":
		i.commandGo(args[1:])
	case "play":
		i.commandPlay(ctx)
	case "undo":
		i.commandUndo()
	case "perft":
		i.commandPerft(args[1:])
	case "quit":
		return true
	default:
		i.printError(fmt.Errorf("unknown command '%s'", args[0]))
	}
	return false
}

func (i *Interface) commandHello() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option Depth type spin default %d min 1 max 255", defaultOptions.depth))
	i.println(fmt.Sprintf("option Scoring type combo default %s var %s var %s",
		config.ScoringTypeNumberAndPotential, config.ScoringTypeNumber, config.ScoringTypeNumberAndPotential))
	i.println(fmt.Sprintf("option Pruning type check default %v", defaultOptions.pruning))
	i.println(fmt.Sprintf("option ParallelPerft type check default %v", defaultOptions.parallelPerft))
	i.println(fmt.Sprintf("option Color type check default %v", defaultOptions.color))
	i.println("checkersok")
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		i.printError(errors.New("usage: setoption name <name> value <value>"))
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "depth":
		value, err := strconv.ParseUint(valueStr, 10, 8)
		if err != nil || value == 0 {
			i.printError(fmt.Errorf("invalid depth '%s'", valueStr))
			return
		}
		i.options.depth = uint8(value)
	case "scoring":
		switch valueStr {
		case config.ScoringTypeNumber:
			i.options.scoringMode = engine.ScoringModeMaterial
		case config.ScoringTypeNumberAndPotential:
			i.options.scoringMode = engine.ScoringModeMaterialPotential
		default:
			i.printError(fmt.Errorf("invalid scoring type '%s'", valueStr))
			return
		}
	case "pruning", "parallelperft", "color":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			i.printError(err)
			return
		}
		switch name {
		case "pruning":
			i.options.pruning = value
		case "parallelperft":
			i.options.parallelPerft = value
		case "color":
			i.options.color = value
		}
	default:
		i.printError(fmt.Errorf("unknown option '%s'", args[1]))
		return
	}
	i.engine = i.newEngine()
}

func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		i.printError(errors.New("usage: position startpos|fen <fen>"))
		return
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		i.printError(fmt.Errorf("unknown position '%s'", args[0]))
		return
	}
	if err := i.reset(fen); err != nil {
		i.printError(err)
	}
}

func (i *Interface) commandDraw() {
	b := i.game.Board()
	if i.options.color {
		i.println(b.Draw())
	} else {
		i.println(b.Dump())
	}
	i.println(fmt.Sprintf("fen: %s", b.FEN(i.game.Turn())))
	i.println(fmt.Sprintf("turn: %d %s", i.game.TurnNumber(), i.game.Turn()))
	i.println(fmt.Sprintf("state: %s", i.game.State()))
}

func (i *Interface) commandMoves(args []string) {
	mvs := i.game.LegalMoves()
	if len(args) > 0 {
		from, err := position.NewPosFromNotation(args[0])
		if err != nil {
			i.printError(err)
			return
		}
		var filtered []board.Move
		for _, mv := range mvs {
			if mv.From == from {
				filtered = append(filtered, mv)
			}
		}
		mvs = filtered
	}

	strs := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		strs = append(strs, mv.String())
	}
	i.println(fmt.Sprintf("moves %s", strings.Join(strs, " ")))
}

func (i *Interface) commandMove(args []string) {
	if len(args) != 2 {
		i.printError(errors.New("usage: move <from> <to>"))
		return
	}
	from, err := position.NewPosFromNotation(args[0])
	if err != nil {
		i.printError(err)
		return
	}
	to, err := position.NewPosFromNotation(args[1])
	if err != nil {
		i.printError(err)
		return
	}

	mv, err := i.game.Play(from, to)
	if err != nil {
		i.printError(err)
		return
	}
	if series := i.game.InSeries(); series != position.None {
		i.println(fmt.Sprintf("moved %s continue %s", mv, series))
		return
	}
	i.println(fmt.Sprintf("moved %s", mv))
	i.printState()
}

func (i *Interface) commandGo(args []string) {
	if len(args) > 0 {
		i.printError(fmt.Errorf("unknown go argument '%s'", args[0]))
		return
	}
	if i.game.InSeries() != position.None {
		i.printError(errors.New("capture series in progress"))
		return
	}

	chain := i.engine.FindBestChain(i.game.Board(), i.game.Turn())
	stats := i.engine.Stats()
	i.println(fmt.Sprintf("info depth %d score %.4f nodes %d cutoffs %d time %d",
		i.engine.MaxDepth(), stats.Score, stats.Nodes, stats.Cutoffs, stats.Elapsed.Milliseconds()))
	if len(chain) == 0 {
		i.println("bestchain none")
		return
	}
	i.println(fmt.Sprintf("bestchain %s", chain))
}

func (i *Interface) commandPlay(ctx context.Context) {
	chain, err := i.game.PlayBot(ctx)
	if err != nil {
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("played %s", chain))
	i.printState()
}

func (i *Interface) commandUndo() {
	if err := i.game.Undo(); err != nil {
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("undone turn %d %s", i.game.TurnNumber(), i.game.Turn()))
}

func (i *Interface) commandPerft(args []string) {
	if len(args) != 1 {
		i.printError(errors.New("usage: perft <depth>"))
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		i.printError(fmt.Errorf("invalid depth '%s'", args[0]))
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	err = bench.Perft(depth, i.game.Board().FEN(i.game.Turn()), i.options.parallelPerft, true, out)
	close(out)
	<-done
	if err != nil {
		i.printError(err)
	}
}

func (i *Interface) printState() {
	if st := i.game.State(); !st.IsRunning() {
		i.println(fmt.Sprintf("gameover %s", st))
	}
}

func (i *Interface) reset(fen string) error {
	g, err := game.NewGame(i.cfg, game.WithFEN(fen), game.WithLogger(i.logger))
	if err != nil {
		return err
	}
	i.game = g
	i.engine = i.newEngine()
	return nil
}

func (i *Interface) newEngine() *engine.Engine {
	return engine.NewEngine(&engine.EngineConfig{
		MaxDepth:    i.options.depth,
		ScoringMode: i.options.scoringMode,
		Pruning:     i.options.pruning,
		SeedPolicy:  engine.SeedPolicyFixedZero,
		Logger:      i.logger,
	})
}

func (i *Interface) printError(err error) {
	i.println(fmt.Sprintf("error %s", err))
}

func (i *Interface) println(a ...any) {
	i.outMu.Lock()
	defer i.outMu.Unlock()
	fmt.Fprintln(i.out, a...)
}
