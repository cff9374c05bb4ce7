package arena

import (
	"context"
	"math"
	"strings"
	"testing"
)

func TestComputeStat(t *testing.T) {
	var stat = computeStat(3, 3, 4)
	if stat.winningFraction != 0.5 || stat.eloDifference != 0 || stat.los != 0.5 {
		t.Error(stat)
	}
	stat = computeStat(6, 2, 2)
	if stat.winningFraction != 0.7 || stat.eloDifference <= 0 || stat.los <= 0.5 {
		t.Error(stat)
	}
	if math.Abs(stat.eloDifference-147.2) > 0.1 {
		t.Error(stat.eloDifference)
	}
}

func TestParseOpening(t *testing.T) {
	var fen, err = parseOpening("1.e4 c6 2.d4 d5 3.exd5 cxd5")
	if err != nil {
		t.Fatal(err)
	}
	var fields = strings.Fields(fen)
	if fields[0] != "rnbqkbnr/pp2pppp/8/3p4/3P4/8/PPP2PPP/RNBQKBNR" || fields[1] != "w" {
		t.Error(fen)
	}
	if _, err = parseOpening("1. e4 e4"); err == nil {
		t.Error("expected error")
	}
}

func TestAllOpeningsParse(t *testing.T) {
	var openings = getOpenings()
	if len(openings) == 0 {
		t.Fatal("no openings")
	}
	for _, opening := range openings {
		if _, err := parseOpening(opening); err != nil {
			t.Error(opening, err)
		}
	}
}

func TestPlayGameMate(t *testing.T) {
	var engineA = newEngine(EngineConfig{Eval: "classic", Depth: 2, Hash: 1})
	var engineB = newEngine(EngineConfig{Eval: "material", Depth: 1, Hash: 1})
	var info = gameInfo{
		opening:        "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		engineAIsWhite: true,
		gameNumber:     1,
	}
	var res, err = playGame(context.Background(), engineA, engineB, 10, info)
	if err != nil {
		t.Fatal(err)
	}
	if res.result != gameResultWhiteWins || res.plies != 1 || res.comment != "Checkmate" {
		t.Error(res)
	}
}

func TestPlayGameMaxPlies(t *testing.T) {
	var engineA = newEngine(EngineConfig{Eval: "material", Depth: 1, Hash: 1})
	var engineB = newEngine(EngineConfig{Eval: "material", Depth: 1, Hash: 1})
	var res, err = playGame(context.Background(), engineA, engineB, 4,
		gameInfo{opening: "startpos", engineAIsWhite: false})
	if err != nil {
		t.Fatal(err)
	}
	if res.result != gameResultDraw || res.plies != 4 || res.comment != "max plies" {
		t.Error(res)
	}
}

func TestRun(t *testing.T) {
	var score, err = Run(context.Background(), Config{
		Concurrency: 2,
		EngineA:     EngineConfig{Eval: "classic", Depth: 1, Hash: 1},
		EngineB:     EngineConfig{Eval: "material", Depth: 1, Hash: 1},
		MaxPlies:    12,
		Openings:    []string{"1. e4 e5", "1. d4 d5"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if score.Wins+score.Losses+score.Draws != 4 {
		t.Error(score)
	}
}

func TestRunCanceled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var _, err = Run(ctx, Config{
		Concurrency: 1,
		EngineA:     EngineConfig{Depth: 1, Hash: 1},
		EngineB:     EngineConfig{Depth: 1, Hash: 1},
		MaxPlies:    12,
		Openings:    []string{"1. e4 e5"},
	})
	if err == nil {
		t.Error("expected context error")
	}
}
