package common

import (
	"testing"
)

var testFENs = []string{
	InitialPositionFen,
	// Kiwipete
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	// promotions
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk w - - 0 1",
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk b - - 0 1",
	// en passant
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	// castling
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
	"r3k2r/8/8/8/8/8/5r2/R3K2R b KQkq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

func TestMakeUnmake(t *testing.T) {
	var flags UndoFlags
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var buffer [MaxMoves]Move
		for _, m := range p.GenerateMoves(buffer[:0]) {
			var before = p
			var u = p.MakeMove(m)
			flags |= u.Flags
			if p.Key != p.ComputeKey() {
				t.Error(fen, m, u, "incremental key differs from computed key")
			}
			if p.WhiteMove == before.WhiteMove {
				t.Error(fen, m, "side to move not flipped")
			}
			p.UnmakeMove(m, u)
			if p != before {
				t.Error(fen, m, u, "position not restored", p.String())
			}
		}
	}
	if flags != FlagEnPassant|FlagCastling|FlagPromotion {
		t.Error("not all special moves were exercised", flags)
	}
}

func TestLegalMovesKeepKingSafe(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var buffer [MaxMoves]Move
		for _, m := range p.GenerateLegalMoves(buffer[:0]) {
			var mover = p.WhiteMove
			var u = p.MakeMove(m)
			if IsAttacked(&p.Board, FindKing(&p.Board, mover), !mover) {
				t.Error(fen, m, "own king left in check")
			}
			p.UnmakeMove(m, u)
		}
	}
}

func TestEnPassantRemovesPassedPawn(t *testing.T) {
	var p, err = NewPositionFromFEN("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	var m = Move{ParseSquare("e5"), ParseSquare("d6")}
	var buffer [MaxMoves]Move
	if !containsMove(p.GenerateLegalMoves(buffer[:0]), m) {
		t.Fatal("en passant capture not generated")
	}
	var before = p
	var u = p.MakeMove(m)
	if u.Flags&FlagEnPassant == 0 || u.Captured != -Pawn {
		t.Error("bad undo record", u)
	}
	if p.Board[ParseSquare("d5")] != Empty {
		t.Error("passed pawn not removed")
	}
	if p.Board[ParseSquare("d6")] != Pawn {
		t.Error("capturing pawn not on destination")
	}
	p.UnmakeMove(m, u)
	if p != before {
		t.Error("position not restored", p.String())
	}
}

func TestCastlingMovesRook(t *testing.T) {
	var tests = []struct {
		fen      string
		move     string
		rookFrom string
		rookTo   string
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "h1", "f1"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "a1", "d1"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", "h8", "f8"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "a8", "d8"},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var rook = p.Board[ParseSquare(test.rookFrom)]
		if !p.MakeMoveLAN(test.move) {
			t.Error(test, "castling not legal")
			continue
		}
		if p.Board[ParseSquare(test.rookFrom)] != Empty || p.Board[ParseSquare(test.rookTo)] != rook {
			t.Error(test, "rook not moved", p.String())
		}
	}
}

func TestCastlingThroughAttackedSquare(t *testing.T) {
	var tests = []struct {
		fen   string
		move  string
		legal bool
	}{
		// f1 attacked
		{"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1g1", false},
		{"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1c1", true},
		// king in check
		{"r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", "e1g1", false},
		{"r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", "e1c1", false},
		// only b1 attacked
		{"r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", "e1c1", true},
		// rook of the wrong side on the corner
		{"r3k2r/8/8/8/8/8/8/R3K2r w KQkq - 0 1", "e1g1", false},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if p.MakeMoveLAN(test.move) != test.legal {
			t.Error(test)
		}
	}
}

func TestPromotionToQueen(t *testing.T) {
	var p, err = NewPositionFromFEN("4k3/1P6/8/8/8/8/6p1/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var m = Move{ParseSquare("b7"), ParseSquare("b8")}
	var u = p.MakeMove(m)
	if u.Flags != FlagPromotion || p.Board[m.To] != Queen {
		t.Error("white pawn not promoted", u, p.String())
	}
	var m2 = Move{ParseSquare("g2"), ParseSquare("g1")}
	var u2 = p.MakeMove(m2)
	if u2.Flags != FlagPromotion || p.Board[m2.To] != -Queen {
		t.Error("black pawn not promoted", u2, p.String())
	}
	p.UnmakeMove(m2, u2)
	p.UnmakeMove(m, u)
	if p.Board[m.From] != Pawn || p.Board[m2.From] != -Pawn {
		t.Error("promotion not reverted", p.String())
	}
}

func TestUnmakeTwicePanics(t *testing.T) {
	var p, _ = NewPositionFromFEN(InitialPositionFen)
	var m = Move{ParseSquare("e2"), ParseSquare("e4")}
	var u = p.MakeMove(m)
	p.UnmakeMove(m, u)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.UnmakeMove(m, u)
}
