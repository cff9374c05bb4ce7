package common

import (
	"fmt"
	"strconv"
	"strings"
)

// NewPositionFromFEN reads piece placement and side to move.
// Castling and en passant fields are ignored: both are inferred from the board.
func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 2 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var b Board
	// ranks are listed from 8 down to 1, files from a to h
	var rank, file = Rank8, FileA
	for _, ch := range tokens[0] {
		if ch == '/' {
			if file != FileH+1 || rank == Rank1 {
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			rank--
			file = FileA
			continue
		}
		if ch >= '1' && ch <= '8' {
			file += int(ch - '0')
			if file > FileH+1 {
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			continue
		}
		var piece = parsePiece(ch)
		if piece == Empty || file > FileH {
			return Position{}, fmt.Errorf("parse fen failed %v", fen)
		}
		b[MakeSquare(file, rank)] = piece
		file++
	}
	if rank != Rank1 || file != FileH+1 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var whiteMove bool
	switch tokens[1] {
	case "w":
		whiteMove = true
	case "b":
		whiteMove = false
	default:
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	return NewPosition(b, whiteMove), nil
}

func (p *Position) String() string {
	var sb strings.Builder

	var emptyCount = 0
	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece = p.Board[sq]
		if piece == Empty {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece))
		}

		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}

	if p.WhiteMove {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
