package eval

import (
	"github.com/fixedply/fixedply/pkg/common"
)

var materialValues = [...]int{common.Empty: 0, common.Pawn: 100, common.Knight: 400,
	common.Bishop: 400, common.Rook: 600, common.Queen: 1200, common.King: 0}

// EvaluationService counts material only. Scores use the same scale as the classic evaluation.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *common.Position) int {
	var eval = 0
	for _, piece := range p.Board {
		if common.IsWhite(piece) {
			eval += materialValues[common.PieceType(piece)]
		} else {
			eval -= materialValues[common.PieceType(piece)]
		}
	}
	return 100 * eval
}
