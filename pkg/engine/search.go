package engine

import (
	. "github.com/fixedply/fixedply/pkg/common"
)

// searchRoot tries every legal move of the side to move with a full window.
// The first move with the highest value wins.
func (t *thread) searchRoot(depth int, searchMoves []Move) (bestMove Move, bestValue int) {
	const height = 0
	var p = &t.position
	bestMove = MoveEmpty
	bestValue = -valueInfinity
	for _, om := range t.generateMoves(height) {
		var m = om.Move
		if len(searchMoves) != 0 && !containsMove(searchMoves, m) {
			continue
		}
		var u = p.MakeMove(m)
		if !p.IsLegal(m, u) {
			p.UnmakeMove(m, u)
			continue
		}
		var value = t.minimax(-valueInfinity, valueInfinity, depth-1, height+1, false)
		p.UnmakeMove(m, u)
		if value > bestValue {
			bestValue = value
			bestMove = m
		}
	}
	return
}

// minimax scores the position from the searching side's point of view.
// maximizing is true when the searching side is to move.
func (t *thread) minimax(alpha, beta, depth, height int, maximizing bool) int {
	t.nodes++
	var p = &t.position

	// transposition table
	if ttDepth, ttValue, ttBound, ttHit := t.tt.Read(p.Key); ttHit &&
		(ttDepth >= depth || isMateScore(ttValue)) {
		if ttBound == boundExact ||
			ttBound == boundLower && ttValue >= beta ||
			ttBound == boundUpper && ttValue <= alpha {
			t.ttHits++
			return ttValue
		}
	}

	if depth <= 0 {
		var value = t.side * t.evaluator.Evaluate(p)
		t.tt.Update(p.Key, 0, value, boundExact)
		return value
	}

	var alphaOrig, betaOrig = alpha, beta
	var bestValue = valueInfinity
	if maximizing {
		bestValue = -valueInfinity
	}
	var legalMoves = 0

	for _, om := range t.generateMoves(height) {
		var m = om.Move
		var u = p.MakeMove(m)
		if !p.IsLegal(m, u) {
			p.UnmakeMove(m, u)
			continue
		}
		legalMoves++
		var value = t.minimax(alpha, beta, depth-1, height+1, !maximizing)
		p.UnmakeMove(m, u)

		if maximizing {
			bestValue = Max(bestValue, value)
			alpha = Max(alpha, value)
		} else {
			bestValue = Min(bestValue, value)
			beta = Min(beta, value)
		}
		if beta <= alpha {
			break
		}
	}

	if legalMoves == 0 {
		if p.IsCheck() {
			// prefer shorter mates: more depth left means closer to the root
			if maximizing {
				return -mateIn(depth)
			}
			return mateIn(depth)
		}
		return valueDraw
	}

	var bound int
	if bestValue <= alphaOrig {
		bound = boundUpper
	} else if bestValue >= betaOrig {
		bound = boundLower
	} else {
		bound = boundExact
	}
	t.tt.Update(p.Key, depth, bestValue, bound)
	return bestValue
}

func (t *thread) generateMoves(height int) []OrderedMove {
	var s = &t.stack[height]
	var moves = t.position.GenerateMoves(s.moves[:0])
	return orderMoves(&t.position.Board, moves, s.ordered[:])
}
