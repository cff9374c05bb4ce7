// Package host connects the engine to a game kept by github.com/notnil/chess.
// The game owns castling rights, en passant history and draw rules; the engine sees a board snapshot.
package host

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/fixedply/fixedply/pkg/common"
)

func NewGame(fen string) (*chess.Game, error) {
	if fen == "" || fen == "startpos" {
		return chess.NewGame(), nil
	}
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return chess.NewGame(opt), nil
}

func Board(pos *chess.Position) common.Board {
	var b common.Board
	var board = pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		b[int(sq)] = pieceCode(board.Piece(sq))
	}
	return b
}

func pieceCode(piece chess.Piece) int {
	var pieceType int
	switch piece.Type() {
	case chess.Pawn:
		pieceType = common.Pawn
	case chess.Knight:
		pieceType = common.Knight
	case chess.Bishop:
		pieceType = common.Bishop
	case chess.Rook:
		pieceType = common.Rook
	case chess.Queen:
		pieceType = common.Queen
	case chess.King:
		pieceType = common.King
	default:
		return common.Empty
	}
	return common.MakePiece(pieceType, piece.Color() == chess.White)
}

// SearchParams limits root moves to the game's valid moves, which excludes
// castling without rights and en passant that is no longer available.
func SearchParams(pos *chess.Position) common.SearchParams {
	var params = common.SearchParams{
		Board:     Board(pos),
		WhiteMove: pos.Turn() == chess.White,
	}
	for _, mv := range pos.ValidMoves() {
		var m = engineMove(mv)
		if !containsMove(params.SearchMoves, m) {
			params.SearchMoves = append(params.SearchMoves, m)
		}
	}
	return params
}

func engineMove(mv *chess.Move) common.Move {
	return common.Move{From: int(mv.S1()), To: int(mv.S2())}
}

func containsMove(ml []common.Move, m common.Move) bool {
	for _, x := range ml {
		if x == m {
			return true
		}
	}
	return false
}

// FindMove maps an engine move to a valid game move. Promotions become queens.
func FindMove(pos *chess.Position, m common.Move) (*chess.Move, bool) {
	for _, mv := range pos.ValidMoves() {
		if engineMove(mv) == m &&
			(mv.Promo() == chess.NoPieceType || mv.Promo() == chess.Queen) {
			return mv, true
		}
	}
	return nil, false
}

func MoveToUci(pos *chess.Position, mv *chess.Move) string {
	return chess.UCINotation{}.Encode(pos, mv)
}

func PlayUci(game *chess.Game, s string) error {
	var mv, err = chess.UCINotation{}.Decode(game.Position(), s)
	if err != nil {
		return fmt.Errorf("parse move %v: %w", s, err)
	}
	return game.Move(mv)
}

// PlaySan plays a move in standard algebraic notation, check marks are allowed.
func PlaySan(game *chess.Game, s string) error {
	var san = strings.TrimRight(s, "+#!?")
	var mv, err = chess.AlgebraicNotation{}.Decode(game.Position(), san)
	if err != nil {
		return fmt.Errorf("parse move %v: %w", s, err)
	}
	return game.Move(mv)
}
