package board

import "testing"

func TestFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen     string
		wantErr bool
	}{
		{fen: DefaultStartingPositionFEN, wantErr: false},
		{fen: "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 b", wantErr: false},
		{fen: "8/8/1b6/8/3b4/4w3/8/8 w", wantErr: false},
		{fen: "8/8/8/8/3b4/2b5/8/W7 w", wantErr: false},
		{fen: "1B6/8/8/8/8/8/8/6W1 b", wantErr: false},
		{fen: "8/8/8/8/8/8/8/8 w", wantErr: false},
		{fen: "", wantErr: true},
		{fen: "invalid fen", wantErr: true},
		{fen: "8/8/8/8/8/8/8/8", wantErr: true},
		{fen: "8/8/8/8/8/8/8/8 x", wantErr: true},
		{fen: "8/8/8/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/8/8/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/7/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/9/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/w8/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/4k3/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/0w7/8/8/8/8 w", wantErr: true},
		{fen: "8/8/8/8/8/8/8/8 w extrasegment", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()

			b, turn, err := NewBoard(WithFEN(tt.fen))
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if gotFEN := b.FEN(turn); gotFEN != tt.fen {
				t.Errorf("unexpected FEN: got=%s want=%s", gotFEN, tt.fen)
			}
		})
	}
}
