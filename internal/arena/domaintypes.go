package arena

import (
	"github.com/fixedply/fixedply/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type IEngine interface {
	Clear()
	Search(searchParams common.SearchParams) common.SearchInfo
}

type EngineConfig struct {
	Eval  string
	Depth int
	Hash  int
}

type Config struct {
	Concurrency int
	EngineA     EngineConfig
	EngineB     EngineConfig
	// games longer than MaxPlies are adjudicated as draws
	MaxPlies int
	Openings []string
}

// Score is counted for engine A.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	plies    int
	comment  string
	result   int
}
