package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/notnil/chess"

	"github.com/fixedply/fixedply/internal/host"
	"github.com/fixedply/fixedply/pkg/common"
)

type IEngine interface {
	Search(searchParams common.SearchParams) common.SearchInfo
}

// PlayCli plays a console game: the human has White and enters moves like e2e4.
func PlayCli(engine IEngine, in io.Reader, out io.Writer) error {
	var game = chess.NewGame()
	printBoard(out, game.Position())
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			break
		}
		if err := host.PlayUci(game, commandLine); err != nil {
			fmt.Fprintln(out, "bad move")
			continue
		}
		printBoard(out, game.Position())
		if game.Outcome() != chess.NoOutcome {
			break
		}
		var pos = game.Position()
		var si = engine.Search(host.SearchParams(pos))
		var mv, ok = host.FindMove(pos, si.BestMove)
		if !ok {
			return fmt.Errorf("bad move %v", si.BestMove)
		}
		fmt.Fprintln(out, host.MoveToUci(pos, mv))
		if err := game.Move(mv); err != nil {
			return err
		}
		printBoard(out, game.Position())
		if game.Outcome() != chess.NoOutcome {
			break
		}
	}
	if game.Outcome() != chess.NoOutcome {
		fmt.Fprintln(out, gameResultMessage(game))
	}
	return scanner.Err()
}

func gameResultMessage(game *chess.Game) string {
	switch game.Method() {
	case chess.Checkmate:
		if game.Outcome() == chess.WhiteWon {
			return "Checkmate! You win."
		}
		return "Checkmate! Engine wins."
	case chess.Stalemate:
		return "Stalemate. Draw."
	}
	return fmt.Sprintf("Game over %v %v", game.Outcome(), game.Method())
}

func printBoard(out io.Writer, pos *chess.Position) {
	var b = host.Board(pos)
	for i := 0; i < 64; i++ {
		var sq = common.FlipSquare(i)
		fmt.Fprint(out, pieceString(b[sq], common.IsDarkSquare(sq)))
		if common.File(sq) == common.FileH {
			fmt.Fprintln(out)
		}
	}
}

const (
	whiteKing   = "\u2654"
	whiteQueen  = "\u2655"
	whiteRook   = "\u2656"
	whiteBishop = "\u2657"
	whiteKnight = "\u2658"
	whitePawn   = "\u2659"
	blackKing   = "\u265A"
	blackQueen  = "\u265B"
	blackRook   = "\u265C"
	blackBishop = "\u265D"
	blackKnight = "\u265E"
	blackPawn   = "\u265F"
)

const (
	fgBlack = iota + 30
)

// Background text colors
const (
	bgBlack = iota + 40
	bgRed
	bgGreen
	bgYellow
	bgBlue
	bgMagenta
	bgCyan
	bgWhite
)

// Background Hi-Intensity text colors
const (
	bgHiBlack = iota + 100
	bgHiRed
	bgHiGreen
	bgHiYellow
	bgHiBlue
	bgHiMagenta
	bgHiCyan
	bgHiWhite
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

func pieceString(piece int, darkSquare bool) string {
	var s string
	if common.IsWhite(piece) {
		s = chessSymbols[0][common.PieceType(piece)]
	} else {
		s = chessSymbols[1][common.PieceType(piece)]
	}
	s += " "
	const fgColor = fgBlack
	var bgColor int
	if darkSquare {
		bgColor = bgWhite
	} else {
		bgColor = bgHiWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
