// Command bsp-sssp runs the incremental single-source shortest paths
// kernel over a fleet of simulated fragment workers.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/nbnb9998/SumInc/algo/sssp"
	"github.com/nbnb9998/SumInc/graph"
	"github.com/nbnb9998/SumInc/worker"
)

func main() {
	source := flag.Uint("source", 1, "source vertex gid")
	opts := worker.FlagsToOptions()

	world, err := graph.LoadWorldGraph(opts.InitialGraphFile, opts.Directed)
	if err != nil {
		log.Fatal().Msg("loading graph: " + err.Error())
	}

	src := graph.Gid(*source)
	out, err := worker.RunFleet[float64, sssp.Delta](world, opts, func(int) graph.Kernel[float64, sssp.Delta] {
		return sssp.New(src)
	})
	if err != nil {
		log.Fatal().Msg("query: " + err.Error())
	}

	if err := writeOutput(opts.OutputFile, out); err != nil {
		log.Fatal().Msg("writing output: " + err.Error())
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
