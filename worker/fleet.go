package worker

import (
	"bytes"
	"sync"

	"github.com/nbnb9998/SumInc/comm"
	"github.com/nbnb9998/SumInc/graph"
)

// RunFleet builds one fragment per worker over world, runs each worker's
// Init/Query/Output/Finalize concurrently over a shared Network, and
// returns their outputs concatenated in worker-id order.
func RunFleet[V any, D any](world *graph.WorldGraph, opts RuntimeOptions, newKernel func(workerID int) graph.Kernel[V, D]) ([]byte, error) {
	net := comm.NewNetwork(opts.NumWorkers)
	outputs := make([][]byte, opts.NumWorkers)
	errs := make([]error, opts.NumWorkers)

	var wg sync.WaitGroup
	for id := 0; id < opts.NumWorkers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			frag := graph.NewFragmentBuilder(world, id, opts.NumWorkers, opts.Directed).Build()
			kernel := newKernel(id)
			w := New[V, D](kernel, frag, world, net, opts.Options)
			w.Init()
			if err := w.Query(); err != nil {
				errs[id] = err
				return
			}
			var buf bytes.Buffer
			if err := w.Output(&buf); err != nil {
				errs[id] = err
				return
			}
			outputs[id] = buf.Bytes()
			w.Finalize()
		}(id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	var all bytes.Buffer
	for _, o := range outputs {
		all.Write(o)
	}
	return all.Bytes(), nil
}
