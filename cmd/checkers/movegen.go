package main

import (
	"fmt"
	"strconv"

	"github.com/daystram/checkers/board"
)

func movegen(fen string) error {
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", turn)
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State(turn))

	mvs, isCapture := b.GenerateMoves(turn)
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, b.Get(mv.From), mv.From, mv.To, isCapture)
	}

	for i, turnChain := range b.GenerateTurns(turn) {
		after := b.ApplyChain(turnChain)
		fmt.Printf("turn %d: %s (captured=%d)\n", i+1, turnChain, len(turnChain.Captured()))
		fmt.Println(after.Draw(turnChain[len(turnChain)-1].To))
		fmt.Println(after.FEN(turn.Opposite()))
	}
	return nil
}
