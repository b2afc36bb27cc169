package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/config"
	"github.com/daystram/checkers/game"
	"github.com/daystram/checkers/position"
)

func selfplay(ctx context.Context, cfg *config.Config, fen string, logger *zap.SugaredLogger) error {
	cfg.Bot.IsWhiteBot, cfg.Bot.IsBlackBot = true, true
	g, err := game.NewGame(cfg, game.WithFEN(fen), game.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Println(g.Board().Draw())

	for g.State().IsRunning() {
		side := g.Turn()
		chain, err := g.PlayBot(ctx)
		if err != nil {
			return err
		}

		var highlight []position.Pos
		for _, mv := range chain {
			highlight = append(highlight, mv.From, mv.To)
		}
		fmt.Printf("\n>>> %d %s: %s\n", g.TurnNumber(), side, chain)
		fmt.Println(g.Board().Draw(highlight...))
		fmt.Println(g.Board().FEN(g.Turn()))
	}

	fmt.Println("game ended:", g.State())
	dumpHistory(g.Turns())
	return nil
}

func dumpHistory(turns []board.Chain) {
	for i, chain := range turns {
		if i%2 == 0 {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", chain)
	}
	fmt.Println()
}
