package engine

import (
	"fmt"
	"math"
	"testing"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/position"
)

func mustBoard(t *testing.T, fen string) (board.Board, board.Side) {
	t.Helper()
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b, turn
}

func sq(row, col int) position.Pos {
	return position.NewPos(row, col)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side board.Side
		mode ScoringMode
		want float64
	}{
		{
			name: "opening material",
			fen:  board.DefaultStartingPositionFEN,
			side: board.SideWhite,
			mode: ScoringModeMaterial,
			want: 1,
		},
		{
			name: "opening material and potential",
			fen:  board.DefaultStartingPositionFEN,
			side: board.SideBlack,
			mode: ScoringModeMaterialPotential,
			want: 1,
		},
		{
			name: "king against man",
			fen:  "1b6/8/8/8/8/8/8/W7 w",
			side: board.SideWhite,
			mode: ScoringModeMaterial,
			want: 4,
		},
		{
			name: "man against king",
			fen:  "1b6/8/8/8/8/8/8/W7 w",
			side: board.SideBlack,
			mode: ScoringModeMaterial,
			want: 0.25,
		},
		{
			name: "king against advanced man with potential",
			fen:  "8/8/8/8/8/8/3b4/W7 w",
			side: board.SideWhite,
			mode: ScoringModeMaterialPotential,
			want: 5 / 1.3,
		},
		{
			name: "opponent has no pieces",
			fen:  "8/8/8/8/8/8/8/w7 w",
			side: board.SideWhite,
			mode: ScoringModeMaterial,
			want: ScoreInfinite,
		},
		{
			name: "own side has no pieces",
			fen:  "8/8/8/8/8/8/8/w7 w",
			side: board.SideBlack,
			mode: ScoringModeMaterialPotential,
			want: ScoreLoss,
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8 w",
			side: board.SideBlack,
			mode: ScoringModeMaterial,
			want: ScoreInfinite,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := mustBoard(t, tt.fen)
			got := Evaluate(b, tt.side, tt.mode)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("unexpected score: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestLegalMoves(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{SeedPolicy: SeedPolicyFixedZero})

	b, _ := mustBoard(t, board.DefaultStartingPositionFEN)
	mvs, isCapture := e.LegalMoves(b, board.SideWhite)
	if isCapture || len(mvs) != 7 {
		t.Fatalf("unexpected opening moves: got=%v capture=%v", mvs, isCapture)
	}
	for _, mv := range mvs {
		if mv.IsCapture() || mv.To.Row() != mv.From.Row()-1 {
			t.Errorf("unexpected opening move: %v", mv)
		}
	}

	b, _ = mustBoard(t, "8/8/8/8/1b6/w3w3/8/8 w")
	mvs, isCapture = e.LegalMoves(b, board.SideWhite)
	if !isCapture || len(mvs) != 1 || !mvs[0].IsCapture() {
		t.Errorf("unexpected moves under mandatory capture: got=%v capture=%v", mvs, isCapture)
	}

	b, _ = mustBoard(t, "8/8/8/2b5/1b6/w7/8/8 w")
	if mvs, _ = e.LegalMoves(b, board.SideWhite); len(mvs) != 0 {
		t.Errorf("unexpected moves for blocked side: got=%v", mvs)
	}
}

func TestLegalMovesFrom(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{SeedPolicy: SeedPolicyFixedZero})
	b, _ := mustBoard(t, "8/8/1b6/8/3b4/4w3/8/8 w")

	mvs, isCapture := e.LegalMovesFrom(b, board.SideWhite, sq(5, 4))
	want := board.NewCapture(sq(5, 4), sq(3, 2), sq(4, 3))
	if !isCapture || len(mvs) != 1 || !mvs[0].Equals(want) {
		t.Errorf("unexpected moves: got=%v want=%v", mvs, want)
	}

	for _, tt := range []struct {
		side board.Side
		pos  position.Pos
	}{
		{side: board.SideBlack, pos: sq(5, 4)},
		{side: board.SideWhite, pos: sq(4, 3)},
		{side: board.SideWhite, pos: sq(0, 0)},
		{side: board.SideWhite, pos: position.None},
	} {
		if mvs, isCapture := e.LegalMovesFrom(b, tt.side, tt.pos); len(mvs) != 0 || isCapture {
			t.Errorf("unexpected moves for %s at %v: got=%v", tt.side, tt.pos, mvs)
		}
	}
}

func TestFindBestChain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		fen       string
		maxDepth  uint8
		wantChain string
	}{
		{
			name:      "forced double jump",
			fen:       "8/8/1b6/8/3b4/4w3/8/8 w",
			maxDepth:  3,
			wantChain: "e3xc5xa7",
		},
		{
			name:      "chain continues through promotion",
			fen:       "8/6b1/8/4b3/3w4/8/1b6/8 w",
			maxDepth:  2,
			wantChain: "d4xf6xh8xa1",
		},
		{
			name:      "avoid the recapture at depth 1",
			fen:       "8/6b1/5b2/8/1b1b4/2w5/8/8 w",
			maxDepth:  1,
			wantChain: "c3xa5",
		},
		{
			name:      "avoid the recapture at depth 2",
			fen:       "8/6b1/5b2/8/1b1b4/2w5/8/8 w",
			maxDepth:  2,
			wantChain: "c3xa5",
		},
		{
			name:      "black completes the double jump",
			fen:       "8/8/8/2b5/3w4/8/5w2/8 b",
			maxDepth:  2,
			wantChain: "c5xe3xg1",
		},
	}

	for _, tt := range tests {
		tt := tt
		for _, pruning := range []bool{false, true} {
			pruning := pruning
			t.Run(fmt.Sprintf("%s/pruning=%v", tt.name, pruning), func(t *testing.T) {
				t.Parallel()
				b, turn := mustBoard(t, tt.fen)
				before := b
				e := NewEngine(&EngineConfig{
					MaxDepth:   tt.maxDepth,
					Pruning:    pruning,
					SeedPolicy: SeedPolicyFixedZero,
				})
				chain := e.FindBestChain(b, turn)
				if got := chain.String(); got != tt.wantChain {
					t.Errorf("unexpected chain (pruning=%v): got=%s want=%s", pruning, got, tt.wantChain)
				}
				if b != before {
					t.Error("input board mutated")
				}
			})
		}
	}
}

func TestFindBestChainNoMoves(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{MaxDepth: 3, Pruning: true, SeedPolicy: SeedPolicyFixedZero})

	b, _ := mustBoard(t, "8/8/8/2b5/1b6/w7/8/8 w")
	if chain := e.FindBestChain(b, board.SideWhite); len(chain) != 0 {
		t.Errorf("unexpected chain for blocked side: got=%s", chain)
	}

	b, _ = mustBoard(t, "8/8/8/8/8/8/8/W7 b")
	if chain := e.FindBestChain(b, board.SideBlack); len(chain) != 0 {
		t.Errorf("unexpected chain for side without pieces: got=%s", chain)
	}
}

func TestFindBestChainIsLegalTurn(t *testing.T) {
	t.Parallel()
	fens := []string{
		board.DefaultStartingPositionFEN,
		"8/8/1b1b4/8/3b4/4w3/8/8 w",
		"1b1b4/4b3/8/8/3W4/8/1b6/w7 w",
		"8/8/8/8/8/2b5/8/W7 w",
	}
	for _, fen := range fens {
		b, turn := mustBoard(t, fen)
		e := NewEngine(&EngineConfig{MaxDepth: 3, Pruning: true, SeedPolicy: SeedPolicyFixedZero})
		chain := e.FindBestChain(b, turn)

		found := false
		for _, legal := range b.GenerateTurns(turn) {
			if legal.Equals(chain) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("chain %s is not a legal turn of %s", chain, fen)
		}
	}
}

func TestPruningEquivalence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen      string
		maxDepth uint8
		mode     ScoringMode
	}{
		{fen: board.DefaultStartingPositionFEN, maxDepth: 3, mode: ScoringModeMaterial},
		{fen: board.DefaultStartingPositionFEN, maxDepth: 4, mode: ScoringModeMaterialPotential},
		{fen: "1b1b1b1b/b1b1b3/5b2/4w3/3b4/w1w3w1/1w1w1w1w/w7 w", maxDepth: 4, mode: ScoringModeMaterialPotential},
		{fen: "1b1b4/4b3/8/8/3W4/8/1b6/w7 w", maxDepth: 3, mode: ScoringModeMaterial},
		{fen: "1b1b4/4b3/8/8/3W4/8/1b6/w7 b", maxDepth: 3, mode: ScoringModeMaterialPotential},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()
			b, turn := mustBoard(t, tt.fen)
			full := NewEngine(&EngineConfig{MaxDepth: tt.maxDepth, ScoringMode: tt.mode, SeedPolicy: SeedPolicyNone})
			pruned := NewEngine(&EngineConfig{MaxDepth: tt.maxDepth, ScoringMode: tt.mode, Pruning: true, SeedPolicy: SeedPolicyNone})

			fullChain := full.FindBestChain(b, turn)
			prunedChain := pruned.FindBestChain(b, turn)
			if !fullChain.Equals(prunedChain) {
				t.Errorf("unexpected chain: got=%s want=%s", prunedChain, fullChain)
			}
			if got, want := pruned.Stats().Score, full.Stats().Score; got != want {
				t.Errorf("unexpected score: got=%v want=%v", got, want)
			}
			if got, want := pruned.Stats().Nodes, full.Stats().Nodes; got > want {
				t.Errorf("unexpected node count: got=%d want<=%d", got, want)
			}
			if full.Stats().Cutoffs != 0 {
				t.Errorf("unexpected cutoffs without pruning: got=%d", full.Stats().Cutoffs)
			}
		})
	}
}

func TestFixedSeedIsReproducible(t *testing.T) {
	t.Parallel()
	b, turn := mustBoard(t, board.DefaultStartingPositionFEN)
	var chains []board.Chain
	for i := 0; i < 2; i++ {
		e := NewEngine(&EngineConfig{MaxDepth: 3, Pruning: true, SeedPolicy: SeedPolicyFixedZero})
		chains = append(chains, e.FindBestChain(b, turn))
	}
	if !chains[0].Equals(chains[1]) {
		t.Errorf("unexpected chain with fixed seed: got=%s want=%s", chains[1], chains[0])
	}
}
