package common

import (
	"strings"
	"unicode"
)

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

func parsePiece(ch rune) int {
	var white = unicode.IsUpper(ch)
	var i = strings.IndexRune("pnbrqk", unicode.ToLower(ch))
	if i < 0 {
		return Empty
	}
	return MakePiece(i+Pawn, white)
}

func pieceToChar(piece int) string {
	var result = string("pnbrqk"[PieceType(piece)-Pawn])
	if IsWhite(piece) {
		result = strings.ToUpper(result)
	}
	return result
}
