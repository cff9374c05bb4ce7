package eval

import (
	"testing"

	"github.com/fixedply/fixedply/pkg/common"
)

var testFENs = []string{
	common.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1",
	"rnbqkb1r/pp1p1ppp/2p5/4P3/2B5/8/PPP1NnPP/RNBQK2R w KQkq - 0 6",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"r1bqkb1r/ppp1pp2/2n3P1/3p4/3Pn3/5N1P/PPP1PPB1/RNBQK2R b KQkq - 0 1",
}

func TestEvalSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var mirror = common.MirrorPosition(&p)
		var score1 = e.Evaluate(&p)
		var score2 = e.Evaluate(&mirror)
		if score1 != -score2 {
			t.Error(fen, mirror.String(), score1, score2)
		}
	}
}

func TestEvalInitialPosition(t *testing.T) {
	var p, _ = common.NewPositionFromFEN(common.InitialPositionFen)
	if score := NewEvaluationService().Evaluate(&p); score != 0 {
		t.Error(score)
	}
}

func TestEvalTerms(t *testing.T) {
	var tests = []struct {
		fen   string
		score int
	}{
		// knight attacked by a pawn, endgame king terms
		{"4k3/8/8/3p4/4N3/8/8/4K3 w - - 0 1", -4600},
		// black king in check
		{"4k3/4R3/8/8/8/8/8/4K3 b - - 0 1", 39560},
		// kings without endgame adjustment when a king is missing
		{"8/8/8/8/8/8/8/4K3 w - - 0 1", 2000010},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = common.NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if score := e.Evaluate(&p); score != test.score {
			t.Error(test, score)
		}
	}
}

func TestEvalPawnThreat(t *testing.T) {
	var e = NewEvaluationService()
	// same material, in the first position the knight on c3 is attacked by the b4 pawn
	var attacked, _ = common.NewPositionFromFEN("r1bqkbnr/pppppppp/8/8/1p6/2N5/PPPPPPPP/R1BQKBNR w KQkq - 0 1")
	var safe, _ = common.NewPositionFromFEN("r1bqkbnr/pppppppp/8/8/p7/2N5/PPPPPPPP/R1BQKBNR w KQkq - 0 1")
	var diff = e.Evaluate(&safe) - e.Evaluate(&attacked)
	// black pawns use the table row equal to their rank
	var pstDiff = pst[common.Pawn][common.Rank4][common.FileB] - pst[common.Pawn][common.Rank4][common.FileA]
	if diff != 320*pawnThreatScale+pstDiff {
		t.Error(diff)
	}
}
