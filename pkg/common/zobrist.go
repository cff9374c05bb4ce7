package common

import "math/rand"

var (
	sideKey        uint64
	pieceSquareKey [64][13]uint64
)

func PieceSquareKey(piece int, square int) uint64 {
	return pieceSquareKey[square][piece+King]
}

func (p *Position) ComputeKey() uint64 {
	var result = uint64(0)
	if !p.WhiteMove {
		result ^= sideKey
	}
	for sq, piece := range p.Board {
		if piece != Empty {
			result ^= PieceSquareKey(piece, sq)
		}
	}
	return result
}

func initKeys() {
	var r = rand.New(rand.NewSource(123456789))
	for sq := range pieceSquareKey {
		for i := range pieceSquareKey[sq] {
			pieceSquareKey[sq][i] = r.Uint64()
		}
	}
	sideKey = r.Uint64()
}
