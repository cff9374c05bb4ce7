package arena

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fixedply/fixedply/internal/evalbuilder"
	"github.com/fixedply/fixedply/pkg/common"
	"github.com/fixedply/fixedply/pkg/engine"
)

// Run plays every opening twice, once with each engine as White.
func Run(ctx context.Context, config Config) (Score, error) {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", config.Concurrency)

	log.Printf("%+v\n", config.EngineA)
	log.Printf("%+v\n", config.EngineB)

	var openings = config.Openings
	if len(openings) == 0 {
		openings = getOpenings()
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var score Score

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	g.Go(func() error {
		var err error
		score, err = showResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < common.Max(1, config.Concurrency); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return score, err
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = newEngine(config.EngineA)
	var engineB = newEngine(config.EngineB)
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, config.MaxPlies, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func newEngine(config EngineConfig) IEngine {
	var options = engine.NewOptions()
	if config.Depth != 0 {
		options.Depth = config.Depth
	}
	if config.Hash != 0 {
		options.Hash = config.Hash
	}
	var eng = engine.NewEngine(options, evalbuilder.Get(config.Eval))
	eng.Prepare()
	return eng
}
