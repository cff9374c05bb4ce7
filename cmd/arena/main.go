package main

import (
	"context"
	"flag"
	"log"

	"github.com/fixedply/fixedply/internal/arena"
)

var config arena.Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of threads")
	flag.StringVar(&config.EngineA.Eval, "evala", "classic", "Evaluation function of engine A")
	flag.StringVar(&config.EngineB.Eval, "evalb", "material", "Evaluation function of engine B")
	flag.IntVar(&config.EngineA.Depth, "deptha", 4, "Search depth of engine A")
	flag.IntVar(&config.EngineB.Depth, "depthb", 4, "Search depth of engine B")
	flag.IntVar(&config.MaxPlies, "maxplies", 300, "Adjudicate longer games as draws")
	flag.Parse()

	config.EngineA.Hash = 16
	config.EngineB.Hash = 16
	log.Printf("%+v", config)

	var score, err = arena.Run(context.Background(), config)
	if err != nil {
		return err
	}
	log.Printf("Final score: %v - %v - %v\n", score.Wins, score.Losses, score.Draws)
	return nil
}
