// Package worker drives a fragment's BSP lifecycle: the batch traversal
// loop, the incremental reset loop, and fragment rebuild & resume.
package worker

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/nbnb9998/SumInc/comm"
	"github.com/nbnb9998/SumInc/graph"
	"github.com/nbnb9998/SumInc/mathutils"
	"github.com/nbnb9998/SumInc/utils"
)

// Options carries the ambient, CLI-tunable parts of a worker's run that
// are not kernel-specific.
type Options struct {
	Threads    int
	Directed   bool
	Cilk       bool
	UpdateFile string
}

// Worker[V, D] runs one fragment's copy of a Kernel[V, D] through the
// Init/Query/Output/Finalize lifecycle.
type Worker[V any, D any] struct {
	Kernel graph.Kernel[V, D]
	Frag   *graph.Fragment
	World  *graph.WorldGraph
	Net    *comm.Network

	Threads    int
	Directed   bool
	Cilk       bool
	UpdateFile string

	mgr      *comm.Manager[D]
	watch    mathutils.Watch
	incWatch mathutils.Watch
}

func New[V any, D any](kernel graph.Kernel[V, D], frag *graph.Fragment, world *graph.WorldGraph, net *comm.Network, opts Options) *Worker[V, D] {
	return &Worker[V, D]{
		Kernel:     kernel,
		Frag:       frag,
		World:      world,
		Net:        net,
		Threads:    opts.Threads,
		Directed:   opts.Directed,
		Cilk:       opts.Cilk,
		UpdateFile: opts.UpdateFile,
	}
}

// Init allocates every per-fragment state container and blocks at a
// barrier until every worker in the run has done the same.
func (w *Worker[V, D]) Init() {
	w.Kernel.Init(w.Frag)
	w.mgr = comm.NewManager[D](w.Net, w.Frag.WorkerID(), w.Threads)
	w.Net.PlainBarrier()
}

// Query runs the batch traversal loop to quiescence, then — if an update
// file was configured — the incremental reset/rebuild/resume cycle,
// followed by the batch loop again over the adjusted state.
func (w *Worker[V, D]) Query() error {
	w.Net.PlainBarrier()

	w.mgr.Start()
	// Run an empty round first; no messages are in flight yet, so it only
	// takes every worker through one round barrier before the batch loop.
	w.mgr.StartARound()
	w.mgr.FinishARound()

	batchStage := true
	w.watch.Start()

	for {
		terminate := w.runRound()
		if !terminate {
			continue
		}

		if batchStage {
			batchStage = false
			w.watch.Pause()
			if w.Frag.WorkerID() == 0 {
				log.Info().Msg("batch time: " + utils.V(w.watch.Elapsed()))
			}
			if w.UpdateFile == "" {
				log.Warn().Msg("missing update file; skipping incremental phase")
				break
			}
			w.incWatch.Start()
			if err := w.deltaCompute(); err != nil {
				return err
			}
			continue
		}

		w.incWatch.Pause()
		if w.Frag.WorkerID() == 0 {
			log.Info().Msg("incremental adjust time: " + utils.V(w.incWatch.Elapsed()))
		}
		break
	}

	w.Net.PlainBarrier()
	return nil
}

// Output writes "<gid> <value>" for every inner vertex, in fragment
// iteration order.
func (w *Worker[V, D]) Output(out io.Writer) error {
	bw := bufio.NewWriter(out)
	for i := 0; i < w.Frag.NumInner(); i++ {
		h := w.Frag.InnerHandle(i)
		if _, err := fmt.Fprintf(bw, "%d %v\n", w.Frag.GidOf(h), w.Kernel.Value(h)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (w *Worker[V, D]) Finalize() {
	w.mgr.Finalize()
}
