package common

import "strings"

// Move carries only the origin and destination squares.
// Captures, en passant, castling and promotion are derived from the board when the move is made.
type Move struct {
	From, To int
}

var MoveEmpty = Move{}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	return SquareName(m.From) + SquareName(m.To)
}

func ParseMove(s string) (Move, bool) {
	if len(s) < 4 {
		return MoveEmpty, false
	}
	var from = ParseSquare(s[0:2])
	var to = ParseSquare(s[2:4])
	if from == SquareNone || to == SquareNone || from == to {
		return MoveEmpty, false
	}
	return Move{From: from, To: to}, true
}

type UndoFlags uint8

const (
	FlagEnPassant UndoFlags = 1 << iota
	FlagCastling
	FlagPromotion
)

// Undo is returned by MakeMove and must be passed back to UnmakeMove for the same move.
type Undo struct {
	Captured int
	Flags    UndoFlags
}

func (u Undo) String() string {
	var sb strings.Builder
	if u.Captured != Empty {
		sb.WriteString("x")
		sb.WriteString(pieceToChar(u.Captured))
	}
	if u.Flags&FlagEnPassant != 0 {
		sb.WriteString(" ep")
	}
	if u.Flags&FlagCastling != 0 {
		sb.WriteString(" castle")
	}
	if u.Flags&FlagPromotion != 0 {
		sb.WriteString(" promo")
	}
	return sb.String()
}

func containsMove(ml []Move, m Move) bool {
	for _, x := range ml {
		if x == m {
			return true
		}
	}
	return false
}

// MakeMoveLAN plays a move given in long algebraic notation if it is legal.
// A promotion suffix is accepted but the pawn always becomes a queen.
func (p *Position) MakeMoveLAN(lan string) bool {
	var m, ok = ParseMove(lan)
	if !ok {
		return false
	}
	var buffer [MaxMoves]Move
	if !containsMove(p.GenerateLegalMoves(buffer[:0]), m) {
		return false
	}
	p.MakeMove(m)
	return true
}
