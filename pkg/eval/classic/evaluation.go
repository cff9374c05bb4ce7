package eval

import (
	"github.com/fixedply/fixedply/pkg/common"
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns a score from white's point of view.
func (e *EvaluationService) Evaluate(p *common.Position) int {
	var b = &p.Board
	var score, pieceCount = 0, 0
	for sq, piece := range b {
		if piece == common.Empty {
			continue
		}
		pieceCount++
		var pieceType = common.PieceType(piece)
		var white = common.IsWhite(piece)
		var s = common.PieceValue(piece)*materialScale + pstValue(pieceType, white, sq)
		if pieceType != common.Pawn && common.IsAttackedByPawn(b, sq, !white) {
			s -= common.PieceValue(piece) * pawnThreatScale
		}
		if white {
			score += s
		} else {
			score -= s
		}
	}

	var whiteKing = common.FindKing(b, true)
	var blackKing = common.FindKing(b, false)
	if common.IsAttacked(b, whiteKing, false) {
		score -= checkBonus
	}
	if common.IsAttacked(b, blackKing, true) {
		score += checkBonus
	}

	if pieceCount < endgamePieces &&
		whiteKing != common.SquareNone && blackKing != common.SquareNone {
		score += evaluateEndgame(whiteKing, blackKing)
	}
	return score
}

func pstValue(pieceType int, white bool, sq int) int {
	var row = common.Rank(sq)
	if white {
		row = 7 - row
	}
	return pst[pieceType][row][common.File(sq)]
}

// kings close to each other, white king close to the center
func evaluateEndgame(whiteKing, blackKing int) int {
	var score = -(kingDistanceBase - common.ManhattanDistance(whiteKing, blackKing)) * kingDistanceMult
	var center = common.MakeSquare(common.FileD, common.Rank4)
	score -= common.SquareDistance(whiteKing, center) * kingCenterMult
	return score
}
