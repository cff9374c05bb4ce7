package common

import (
	"testing"
)

func TestDecodeGrid(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var grid = p.Board.Grid()
	if grid[0][4] != "w-king" || grid[7][3] != "b-queen" || grid[1][0] != "w-pawn" || grid[4][4] != "" {
		t.Error("unexpected grid", grid)
	}
	b, err := DecodeGrid(grid)
	if err != nil {
		t.Fatal(err)
	}
	if b != p.Board {
		t.Error("grid round trip failed")
	}
}

func TestDecodeGridLabels(t *testing.T) {
	var tests = []struct {
		label string
		piece int
	}{
		{"", Empty},
		{"w-pawn", Pawn},
		{"b-knight", -Knight},
		{"W-Bishop", Bishop},
		{"white-rook", Rook},
		{"black-queen", -Queen},
		{"b-king", -King},
	}
	for _, test := range tests {
		var piece, err = ParsePieceLabel(test.label)
		if err != nil || piece != test.piece {
			t.Error(test, piece, err)
		}
	}
}

func TestDecodeGridErrors(t *testing.T) {
	var emptyGrid = func() [][]string {
		var grid = make([][]string, 8)
		for i := range grid {
			grid[i] = make([]string, 8)
		}
		return grid
	}
	var tests = []struct {
		name string
		grid func() [][]string
	}{
		{"rows", func() [][]string { return emptyGrid()[:7] }},
		{"cols", func() [][]string {
			var g = emptyGrid()
			g[3] = g[3][:5]
			return g
		}},
		{"type", func() [][]string {
			var g = emptyGrid()
			g[2][2] = "w-archbishop"
			return g
		}},
		{"color", func() [][]string {
			var g = emptyGrid()
			g[2][2] = "red-pawn"
			return g
		}},
		{"format", func() [][]string {
			var g = emptyGrid()
			g[2][2] = "pawn"
			return g
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := DecodeGrid(test.grid()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEncodeMove(t *testing.T) {
	var m = Move{ParseSquare("e7"), ParseSquare("e5")}
	var r = EncodeMove(m)
	if r != (Result{FromRow: 6, FromCol: 4, ToRow: 4, ToCol: 4}) {
		t.Error(r)
	}
	if r.Move() != m {
		t.Error(r.Move())
	}
	if m.String() != "e7e5" {
		t.Error(m.String())
	}
}

func TestFEN(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		p2, err := NewPositionFromFEN(p.String())
		if err != nil {
			t.Fatal(err)
		}
		if p != p2 {
			t.Error(fen, p.String(), p2.String())
		}
	}
	for _, fen := range []string{
		"",
		"8/8/8 w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w",
		"7/9/8/8/8/8/8/8 w",
		"4k2/8/8/8/8/8/8/4K3R w",
		"4k3/8/8/8/8/8/8/4K3/ w",
		"4k3/8/8/8/8/8/8/4K2 w",
		"4k3/8/8/8/8/8/8/8/4K3 w",
		"4k3/8/8/8/8/8/pppppppp1/4K3 w",
		"4k3/8/8/8/8/8/8/4K3p w",
		"4k3//8/8/8/8/8/8/4K3 w",
		"4k3/8/8/8/8/8/8/4K0003 w",
	} {
		if _, err := NewPositionFromFEN(fen); err == nil {
			t.Error("expected error", fen)
		}
	}
}

func TestFENPlacement(t *testing.T) {
	var p, err = NewPositionFromFEN("4k3/8/8/44/8/8/1p6/R3K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var want = map[string]int{
		"e8": MakePiece(King, false),
		"b2": MakePiece(Pawn, false),
		"a1": MakePiece(Rook, true),
		"e1": MakePiece(King, true),
	}
	for sq, piece := range p.Board {
		if piece != want[SquareName(sq)] {
			t.Error(SquareName(sq), piece)
		}
	}
	if p.WhiteMove || p.Key != p.ComputeKey() {
		t.Error("bad side or key")
	}
}

func TestMirrorPosition(t *testing.T) {
	for _, fen := range testFENs {
		var p, _ = NewPositionFromFEN(fen)
		var m = MirrorPosition(&p)
		var mm = MirrorPosition(&m)
		if mm != p {
			t.Error(fen, mm.String())
		}
		var buffer1, buffer2 [MaxMoves]Move
		if len(p.GenerateLegalMoves(buffer1[:0])) != len(m.GenerateLegalMoves(buffer2[:0])) {
			t.Error(fen, "mirrored position has different move count")
		}
	}
}
