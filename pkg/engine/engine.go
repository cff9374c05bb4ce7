package engine

import (
	"errors"
	"runtime"
	"time"

	. "github.com/fixedply/fixedply/pkg/common"
)

// Engine picks a move for one side with a fixed depth alpha-beta search.
// An Engine must not be used from several goroutines at once.
type Engine struct {
	Options     Options
	evalBuilder func() interface{}
	evaluator   Evaluator
	// scores are stored from the searching side's point of view, so each side gets its own table
	transTables [2]*transTable
	thread      *thread
}

type Evaluator interface {
	Evaluate(p *Position) int
}

type thread struct {
	engine    *Engine
	position  Position
	tt        *transTable
	evaluator Evaluator
	side      int
	nodes     int64
	ttHits    int64
	stack     [stackSize]struct {
		moves   [MaxMoves]Move
		ordered [MaxMoves]OrderedMove
	}
}

func NewEngine(options Options, evalBuilder func() interface{}) *Engine {
	return &Engine{
		Options:     options,
		evalBuilder: evalBuilder,
	}
}

func (e *Engine) Prepare() {
	for i, tt := range e.transTables {
		if tt != nil && tt.Size() != e.Options.Hash {
			e.transTables[i] = nil
			runtime.GC()
		}
	}
	if e.evaluator == nil {
		e.evaluator = e.buildEvaluator()
	}
	if e.thread == nil {
		e.thread = &thread{engine: e}
	}
	e.thread.evaluator = e.evaluator
}

func (e *Engine) transTable(white bool) *transTable {
	var index = 0
	if white {
		index = 1
	}
	if e.transTables[index] == nil {
		e.transTables[index] = newTransTable(e.Options.Hash)
	}
	return e.transTables[index]
}

func (e *Engine) Clear() {
	for _, tt := range e.transTables {
		if tt != nil {
			tt.Clear()
		}
	}
}

// Search returns BestMove == MoveEmpty when the side to move has no legal move.
func (e *Engine) Search(searchParams SearchParams) SearchInfo {
	var start = time.Now()
	e.Prepare()

	var depth = e.Options.Depth
	if searchParams.Depth > 0 {
		depth = searchParams.Depth
	}
	depth = Max(1, Min(depth, maxDepth))

	var t = e.thread
	t.position = NewPosition(searchParams.Board, searchParams.WhiteMove)
	t.tt = e.transTable(searchParams.WhiteMove)
	t.side = perspective(searchParams.WhiteMove)
	t.nodes = 0
	t.ttHits = 0

	var bestMove, value = t.searchRoot(depth, searchParams.SearchMoves)

	var si = SearchInfo{
		BestMove: bestMove,
		Depth:    depth,
		Nodes:    t.nodes,
		TTHits:   t.ttHits,
		Time:     time.Since(start),
	}
	if bestMove != MoveEmpty {
		si.Value = value
		si.Score = newUciScore(value, depth)
	}
	return si
}

// GetBestMove searches for the side in Options.WhiteSide on a board given as labels.
// ok is false when that side has no legal move.
func (e *Engine) GetBestMove(grid [][]string) (result Result, ok bool, err error) {
	var b Board
	b, err = DecodeGrid(grid)
	if err != nil {
		return
	}
	var si = e.Search(SearchParams{
		Board:     b,
		WhiteMove: e.Options.WhiteSide,
	})
	if si.BestMove == MoveEmpty {
		return
	}
	return EncodeMove(si.BestMove), true, nil
}

func (e *Engine) buildEvaluator() Evaluator {
	var evaluationService = e.evalBuilder()
	if ev, ok := evaluationService.(Evaluator); ok {
		return ev
	}
	panic(errors.New("bad eval builder"))
}
