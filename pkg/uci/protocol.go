package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"github.com/fixedply/fixedply/internal/host"
	"github.com/fixedply/fixedply/pkg/common"
)

type Engine interface {
	Prepare()
	Clear()
	Search(searchParams common.SearchParams) common.SearchInfo
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	game         *chess.Game
	out          io.Writer
	thinking     bool
	engineOutput chan searchResult
}

type searchResult struct {
	info     common.SearchInfo
	bestMove string
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		game:    chess.NewGame(),
		out:     os.Stdout,
	}
}

func (uci *Protocol) Run(logger *log.Logger) {
	uci.run(os.Stdin, logger)
}

func (uci *Protocol) run(in io.Reader, logger *log.Logger) {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	var quit bool
	for {
		select {
		case result := <-uci.engineOutput:
			uci.searchDone(result)
			if quit {
				return
			}
		case commandLine, ok := <-commands:
			if !ok {
				if !uci.thinking {
					return
				}
				// let the running search print its move
				quit = true
				commands = nil
				continue
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Println(err)
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		if commandName == "stop" {
			// fixed depth search runs to completion
			return nil
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		return nil
	}

	if h == nil {
		return fmt.Errorf("command not found %v", commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("unhandled option %v", name)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	var args = fields
	if len(args) == 0 {
		return errors.New("empty position command")
	}
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = "startpos"
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var game, err = host.NewGame(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			err = host.PlayUci(game, smove)
			if err != nil {
				return err
			}
		}
	}
	uci.game = game
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var pos = uci.game.Position()
	var searchParams = host.SearchParams(pos)
	if len(searchParams.SearchMoves) == 0 {
		// an empty list would leave the engine's own board rules unrestricted
		fmt.Fprintf(uci.out, "bestmove %v\n", common.MoveEmpty)
		return nil
	}
	var err = parseLimits(fields, pos, &searchParams)
	if err != nil {
		return err
	}
	uci.thinking = true
	uci.engineOutput = make(chan searchResult, 1)
	go func() {
		var si = uci.engine.Search(searchParams)
		var bestMove = common.MoveEmpty.String()
		if mv, ok := host.FindMove(pos, si.BestMove); ok {
			bestMove = host.MoveToUci(pos, mv)
		}
		uci.engineOutput <- searchResult{info: si, bestMove: bestMove}
	}()
	return nil
}

func (uci *Protocol) searchDone(result searchResult) {
	if result.info.BestMove != common.MoveEmpty {
		fmt.Fprintln(uci.out, searchInfoToUci(result.info))
	}
	fmt.Fprintf(uci.out, "bestmove %v\n", result.bestMove)
	uci.thinking = false
	uci.engineOutput = nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	uci.game = chess.NewGame()
	return nil
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	fmt.Fprintf(sb, " pv %v", si.BestMove)
	return sb.String()
}

// parseLimits reads depth and searchmoves, time controls are ignored.
func parseLimits(args []string, pos *chess.Position, searchParams *common.SearchParams) error {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 >= len(args) {
				return errors.New("missing depth value")
			}
			var depth, err = strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("parse depth failed: %w", err)
			}
			searchParams.Depth = depth
			i++
		case "searchmoves":
			var moves []common.Move
			for i+1 < len(args) && !isLimitKeyword(args[i+1]) {
				var mv, err = chess.UCINotation{}.Decode(pos, args[i+1])
				if err != nil {
					return fmt.Errorf("parse searchmoves failed %v: %w", args[i+1], err)
				}
				var m = common.Move{From: int(mv.S1()), To: int(mv.S2())}
				if _, ok := host.FindMove(pos, m); ok {
					moves = append(moves, m)
				}
				i++
			}
			if len(moves) == 0 {
				return errors.New("no legal searchmoves")
			}
			searchParams.SearchMoves = moves
		}
	}
	return nil
}

func isLimitKeyword(s string) bool {
	switch s {
	case "ponder", "wtime", "btime", "winc", "binc", "movestogo",
		"depth", "nodes", "mate", "movetime", "infinite":
		return true
	}
	return false
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
