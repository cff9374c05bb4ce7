package engine

import (
	. "github.com/fixedply/fixedply/pkg/common"
)

type OrderedMove struct {
	Move Move
	Key  int32
}

// mvvLva ranks captures by most valuable victim, then least valuable attacker.
// Quiet moves rank 0.
func mvvLva(b *Board, m Move) int {
	var victim = b[m.To]
	if victim == Empty {
		return 0
	}
	return 10*PieceValue(victim) - PieceValue(b[m.From])/10
}

func orderMoves(b *Board, moves []Move, ml []OrderedMove) []OrderedMove {
	ml = ml[:len(moves)]
	for i, m := range moves {
		ml[i] = OrderedMove{Move: m, Key: int32(mvvLva(b, m))}
	}
	sortMoves(ml)
	return ml
}

// insertion sort, stable, best first
func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
