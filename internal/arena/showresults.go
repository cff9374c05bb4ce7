package arena

import (
	"context"
	"log"
	"math"
)

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (Score, error) {
	var games = 0
	var score Score
	for gameResult := range gameResults {
		games++
		log.Printf("Finished game %v: %v {%v} plies %v\n",
			gameResult.gameInfo.gameNumber,
			gameResultString(gameResult.result),
			gameResult.comment,
			gameResult.plies)
		if gameResult.result == gameResultDraw {
			score.Draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			score.Wins++
		} else {
			score.Losses++
		}
		var stat = computeStat(score.Wins, score.Losses, score.Draws)
		log.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			score.Wins, score.Losses, score.Draws, stat.winningFraction, games)
		log.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.eloDifference, stat.los*100)
	}
	return score, ctx.Err()
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
