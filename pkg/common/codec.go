package common

import (
	"fmt"
	"strings"
)

var pieceTypeNames = [...]string{Pawn: "pawn", Knight: "knight", Bishop: "bishop", Rook: "rook", Queen: "queen", King: "king"}

// Result is a move in grid coordinates: grid[row][col], row 0 is white's home rank.
type Result struct {
	FromRow, FromCol, ToRow, ToCol int
}

func (r Result) Move() Move {
	return Move{
		From: MakeSquare(r.FromCol, r.FromRow),
		To:   MakeSquare(r.ToCol, r.ToRow),
	}
}

func EncodeMove(m Move) Result {
	return Result{
		FromRow: Rank(m.From),
		FromCol: File(m.From),
		ToRow:   Rank(m.To),
		ToCol:   File(m.To),
	}
}

// ParsePieceLabel decodes labels like "w-pawn" or "black-queen". An empty label is an empty square.
func ParsePieceLabel(label string) (int, error) {
	if label == "" {
		return Empty, nil
	}
	var color, name, ok = strings.Cut(strings.ToLower(strings.TrimSpace(label)), "-")
	if !ok {
		return Empty, fmt.Errorf("bad piece label %q", label)
	}
	var white bool
	switch color {
	case "w", "white":
		white = true
	case "b", "black":
		white = false
	default:
		return Empty, fmt.Errorf("bad piece color %q", label)
	}
	for pieceType := Pawn; pieceType <= King; pieceType++ {
		if pieceTypeNames[pieceType] == name {
			return MakePiece(pieceType, white), nil
		}
	}
	return Empty, fmt.Errorf("bad piece type %q", label)
}

func PieceLabel(piece int) string {
	if piece == Empty {
		return ""
	}
	var color = "b"
	if IsWhite(piece) {
		color = "w"
	}
	return color + "-" + pieceTypeNames[PieceType(piece)]
}

func DecodeGrid(grid [][]string) (Board, error) {
	var b Board
	if len(grid) != 8 {
		return b, fmt.Errorf("grid has %v rows, want 8", len(grid))
	}
	for row := range grid {
		if len(grid[row]) != 8 {
			return b, fmt.Errorf("grid row %v has %v columns, want 8", row, len(grid[row]))
		}
		for col, label := range grid[row] {
			var piece, err = ParsePieceLabel(label)
			if err != nil {
				return b, fmt.Errorf("cell %v,%v: %w", row, col, err)
			}
			b[MakeSquare(col, row)] = piece
		}
	}
	return b, nil
}

func (b *Board) Grid() [][]string {
	var grid = make([][]string, 8)
	for row := range grid {
		grid[row] = make([]string, 8)
		for col := range grid[row] {
			grid[row][col] = PieceLabel(b[MakeSquare(col, row)])
		}
	}
	return grid
}
