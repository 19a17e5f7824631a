package worker

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/nbnb9998/SumInc/utils"
)

// RuntimeOptions is the full set of ambient, CLI-tunable knobs a
// bsp-* command exposes, split between per-worker Options and run-wide
// settings.
type RuntimeOptions struct {
	Options
	NumWorkers       int
	InitialGraphFile string
	OutputFile       string
	DebugLevel       int
	NoColour         bool
}

// FlagsToOptions registers the ambient flags every bsp-* command shares
// and parses the command line. Callers that need algorithm-specific flags
// (e.g. --source) must register them before calling this, since it calls
// flag.Parse().
func FlagsToOptions() RuntimeOptions {
	numWorkers := flag.Int("workers", 1, "number of simulated fragment workers")
	threads := flag.Int("threads", 2, "worker threads per fragment")
	directed := flag.Bool("directed", false, "treat the graph as directed")
	cilk := flag.Bool("cilk", false, "use the work-stealing parallel-for instead of the static-chunk one")
	efile := flag.String("efile", "", "initial graph edge-list file (required)")
	efileUpdate := flag.String("efile_update", "", "edge update file for the incremental phase (optional)")
	output := flag.String("output", "", "output file (default: stdout)")
	debug := flag.Int("debug", 0, "debug level: 0=info 1=debug 2+=trace")
	noColour := flag.Bool("nc", false, "disable coloured console output")
	flag.Parse()

	utils.SetLoggerConsole(*noColour)
	utils.SetLevel(*debug)

	if *efile == "" {
		log.Panic().Msg("-efile is required")
	}
	if *numWorkers < 1 {
		log.Panic().Msg("-workers must be at least 1")
	}
	if *threads < 1 {
		log.Panic().Msg("-threads must be at least 1")
	}

	return RuntimeOptions{
		Options: Options{
			Threads:    *threads,
			Directed:   *directed,
			Cilk:       *cilk,
			UpdateFile: *efileUpdate,
		},
		NumWorkers:       *numWorkers,
		InitialGraphFile: *efile,
		OutputFile:       *output,
		DebugLevel:       *debug,
		NoColour:         *noColour,
	}
}
