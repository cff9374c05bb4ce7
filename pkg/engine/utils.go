package engine

import (
	. "github.com/fixedply/fixedply/pkg/common"
)

const (
	stackSize     = 64
	maxDepth      = stackSize - 1
	valueDraw     = 0
	valueMate     = 20_000_000
	valueWin      = valueMate - 1000
	valueLoss     = -valueWin
	valueInfinity = 1 << 30
)

func perspective(white bool) int {
	if white {
		return 1
	}
	return -1
}

// mateIn is the score of a node where the side not to move gets mated with depth plies left.
func mateIn(depth int) int {
	return valueMate + depth
}

func isMateScore(v int) bool {
	return v >= valueWin || v <= valueLoss
}

// newUciScore converts a root score. Mate scores carry the depth left at the mated node.
func newUciScore(v, rootDepth int) UciScore {
	if v >= valueWin {
		var plies = Max(1, rootDepth-(v-valueMate))
		return UciScore{Mate: (plies + 1) / 2}
	} else if v <= valueLoss {
		var plies = Max(1, rootDepth-(-v-valueMate))
		return UciScore{Mate: -(plies + 1) / 2}
	} else {
		return UciScore{Centipawns: v / 100}
	}
}

func containsMove(ml []Move, m Move) bool {
	for _, x := range ml {
		if x == m {
			return true
		}
	}
	return false
}
