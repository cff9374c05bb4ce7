package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/fixedply/fixedply/internal/evalbuilder"
	"github.com/fixedply/fixedply/internal/utils"
	"github.com/fixedply/fixedply/pkg/engine"
	"github.com/fixedply/fixedply/pkg/uci"
)

const (
	name   = "FixedPly"
	author = "FixedPly authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgEval     string
	flgDepth    int
	flgHash     int
	flgPlay     bool
)

func main() {
	flag.StringVar(&flgEval, "eval", "classic", "specifies evaluation function")
	flag.IntVar(&flgDepth, "depth", 5, "search depth in plies")
	flag.IntVar(&flgHash, "hash", 16, "transposition table size in megabytes")
	flag.BoolVar(&flgPlay, "play", false, "play against the engine in the console")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var options = engine.NewOptions()
	options.Depth = flgDepth
	options.Hash = flgHash
	var eng = engine.NewEngine(options, evalbuilder.Get(flgEval))

	if flgPlay {
		var err = utils.PlayCli(eng, os.Stdin, os.Stdout)
		if err != nil {
			logger.Fatal(err)
		}
		return
	}

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 1, Max: 1 << 12, Value: &eng.Options.Hash},
			&uci.IntOption{Name: "Depth", Min: 1, Max: 20, Value: &eng.Options.Depth},
		},
	)
	protocol.Run(logger)
}
