package common

import "time"

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	MaxMoves = 256
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board holds signed piece codes: positive for white, negative for black.
type Board [64]int

type Position struct {
	Board     Board
	WhiteMove bool
	Key       uint64
}

type SearchParams struct {
	Board     Board
	WhiteMove bool
	// Depth overrides the engine depth when positive.
	Depth int
	// SearchMoves restricts root moves when not empty.
	SearchMoves []Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}

type SearchInfo struct {
	BestMove Move
	Value    int
	Score    UciScore
	Depth    int
	Nodes    int64
	TTHits   int64
	Time     time.Duration
}

var pieceValues = [...]int{Empty: 0, Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900, King: 20000}

// PieceValue returns the material value of a piece code, ignoring its side.
func PieceValue(piece int) int {
	return pieceValues[PieceType(piece)]
}

func PieceType(piece int) int {
	return Abs(piece)
}

func IsWhite(piece int) bool {
	return piece > 0
}

func MakePiece(pieceType int, white bool) int {
	if white {
		return pieceType
	}
	return -pieceType
}

func NewPosition(b Board, whiteMove bool) Position {
	var p = Position{
		Board:     b,
		WhiteMove: whiteMove,
	}
	p.Key = p.ComputeKey()
	return p
}

func (p *Position) IsCheck() bool {
	return IsAttacked(&p.Board, FindKing(&p.Board, p.WhiteMove), !p.WhiteMove)
}

func MirrorPosition(p *Position) Position {
	var b Board
	for sq, piece := range p.Board {
		b[FlipSquare(sq)] = -piece
	}
	return NewPosition(b, !p.WhiteMove)
}
