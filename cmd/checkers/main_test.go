package main

import (
	"context"
	"testing"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/config"
)

func TestModes(t *testing.T) {
	t.Parallel()

	if err := movegen("8/8/1b1b4/8/3b4/4w3/8/8 w"); err != nil {
		t.Error("unexpected error:", err)
	}
	if err := movegen("invalid fen"); err == nil {
		t.Error("error expected: got=nil")
	}
	if err := perft(2, board.DefaultStartingPositionFEN, true); err != nil {
		t.Error("unexpected error:", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	cfg.Bot.WhiteBotLevel, cfg.Bot.BlackBotLevel = 1, 1
	cfg.Bot.NoRandom = true
	cfg.Game.MaxNumTurns = 4
	if err := selfplay(context.Background(), cfg, board.DefaultStartingPositionFEN, nil); err != nil {
		t.Error("unexpected error:", err)
	}
}
