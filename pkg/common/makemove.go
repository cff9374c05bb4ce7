package common

import "fmt"

func (p *Position) xorPiece(piece, sq int) {
	p.Key ^= PieceSquareKey(piece, sq)
}

func (p *Position) removePiece(sq int) int {
	var piece = p.Board[sq]
	if piece != Empty {
		p.xorPiece(piece, sq)
		p.Board[sq] = Empty
	}
	return piece
}

func (p *Position) putPiece(piece, sq int) {
	if piece != Empty {
		p.Board[sq] = piece
		p.xorPiece(piece, sq)
	}
}

func epVictimSquare(to int, white bool) int {
	return to + let(white, -8, 8)
}

func castlingRookSquares(kingTo int) (from, to int) {
	var home = Rank(kingTo)
	if File(kingTo) == FileG {
		return MakeSquare(FileH, home), MakeSquare(FileF, home)
	}
	return MakeSquare(FileA, home), MakeSquare(FileD, home)
}

// MakeMove applies m in place and returns the record needed by UnmakeMove.
func (p *Position) MakeMove(m Move) Undo {
	var piece = p.removePiece(m.From)
	var white = IsWhite(piece)
	var pieceType = PieceType(piece)
	var u = Undo{Captured: p.removePiece(m.To)}

	if pieceType == Pawn && File(m.From) != File(m.To) && u.Captured == Empty {
		u.Captured = p.removePiece(epVictimSquare(m.To, white))
		u.Flags |= FlagEnPassant
	}

	if pieceType == Pawn && Rank(m.To) == let(white, Rank8, Rank1) {
		piece = MakePiece(Queen, white)
		u.Flags |= FlagPromotion
	}
	p.putPiece(piece, m.To)

	if pieceType == King && AbsDelta(m.From, m.To) == 2 {
		var rookFrom, rookTo = castlingRookSquares(m.To)
		p.putPiece(p.removePiece(rookFrom), rookTo)
		u.Flags |= FlagCastling
	}

	p.WhiteMove = !p.WhiteMove
	p.Key ^= sideKey
	return u
}

// UnmakeMove reverts MakeMove. Moves must be unmade in reverse order, each exactly once.
func (p *Position) UnmakeMove(m Move, u Undo) {
	if p.Board[m.From] != Empty {
		panic(fmt.Errorf("unmake %v %v: origin square is occupied", m, u))
	}
	p.WhiteMove = !p.WhiteMove
	p.Key ^= sideKey

	var piece = p.removePiece(m.To)
	var white = IsWhite(piece)
	if u.Flags&FlagPromotion != 0 {
		piece = MakePiece(Pawn, white)
	}
	p.putPiece(piece, m.From)

	if u.Flags&FlagEnPassant != 0 {
		p.putPiece(u.Captured, epVictimSquare(m.To, white))
	} else if u.Captured != Empty {
		p.putPiece(u.Captured, m.To)
	}

	if u.Flags&FlagCastling != 0 {
		var rookFrom, rookTo = castlingRookSquares(m.To)
		p.putPiece(p.removePiece(rookTo), rookFrom)
	}
}

// IsLegal is called right after MakeMove(m).
// It reports whether the side that moved left its king safe.
// A castling king must also not have started on or crossed an attacked square.
func (p *Position) IsLegal(m Move, u Undo) bool {
	var white = !p.WhiteMove
	if IsAttacked(&p.Board, FindKing(&p.Board, white), !white) {
		return false
	}
	if u.Flags&FlagCastling != 0 {
		if IsAttacked(&p.Board, m.From, !white) ||
			IsAttacked(&p.Board, (m.From+m.To)/2, !white) {
			return false
		}
	}
	return true
}
