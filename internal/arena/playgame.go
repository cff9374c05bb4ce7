package arena

import (
	"context"
	"fmt"
	"log"

	"github.com/notnil/chess"

	"github.com/fixedply/fixedply/internal/host"
)

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	maxPlies int,
	info gameInfo,
) (gameResult, error) {

	log.Printf("Started game %v\n", info.gameNumber)

	engineA.Clear()
	engineB.Clear()

	var game, err = host.NewGame(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	for plies := 0; ; plies++ {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if game.Outcome() != chess.NoOutcome {
			return gameResult{
				gameInfo: info,
				plies:    plies,
				comment:  game.Method().String(),
				result:   outcomeResult(game.Outcome()),
			}, nil
		}
		if method, ok := claimableDraw(game); ok {
			if err := game.Draw(method); err != nil {
				return gameResult{}, err
			}
			return gameResult{gameInfo: info, plies: plies, comment: method.String(), result: gameResultDraw}, nil
		}
		if maxPlies > 0 && plies >= maxPlies {
			return gameResult{gameInfo: info, plies: plies, comment: "max plies", result: gameResultDraw}, nil
		}

		var pos = game.Position()
		var eng IEngine
		if (pos.Turn() == chess.White) == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult = eng.Search(host.SearchParams(pos))
		var mv, ok = host.FindMove(pos, searchResult.BestMove)
		if !ok {
			return gameResult{}, fmt.Errorf("bad move %v in %v", searchResult.BestMove, pos)
		}
		if err := game.Move(mv); err != nil {
			return gameResult{}, err
		}
	}
}

func claimableDraw(game *chess.Game) (chess.Method, bool) {
	for _, method := range game.EligibleDraws() {
		if method == chess.ThreefoldRepetition || method == chess.FiftyMoveRule {
			return method, true
		}
	}
	return chess.NoMethod, false
}

func outcomeResult(outcome chess.Outcome) int {
	switch outcome {
	case chess.WhiteWon:
		return gameResultWhiteWins
	case chess.BlackWon:
		return gameResultBlackWins
	}
	return gameResultDraw
}
