package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/daystram/checkers/bench"
	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/cli"
	"github.com/daystram/checkers/config"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile    = flag.Bool("profile", false, "serve pprof endpoint")
	configPath = flag.String("config", "", "path to the settings json file")
	debug      = flag.Bool("debug", false, "log search details")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "run perft in parallel")

	selfplayRun = flag.Bool("selfplay", false, "let the configured bots play a full game")
)

func main() {
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	if *profile {
		runProfiler(logger)
	}

	if err := realMain(logger, flag.Args()); err != nil {
		logger.Errorw("exiting", zap.Error(err))
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

func runProfiler(logger *zap.SugaredLogger) {
	go func() {
		addr := "localhost:6060"
		logger.Infof("starting pprof endpoint: http://%s/debug/pprof", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(logger *zap.SugaredLogger, args []string) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case *movegenRun:
		return movegen(fen)
	case *perftDepth > 0:
		return perft(*perftDepth, fen, *perftParallel)
	case *selfplayRun:
		return selfplay(ctx, cfg, fen, logger)
	}
	return cli.NewInterface(cfg, os.Stdin, os.Stdout, logger).Run(ctx)
}

func perft(depth int, fen string, parallel bool) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()

	err := bench.Perft(depth, fen, parallel, true, out)
	close(out)
	<-done
	return err
}
