package worker

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nbnb9998/SumInc/comm"
	"github.com/nbnb9998/SumInc/enforce"
	"github.com/nbnb9998/SumInc/graph"
	"github.com/nbnb9998/SumInc/utils"
)

// deltaCompute runs the incremental reset loop: seed from
// directly-affected vertices whose recorded parent matches a deleted
// edge's source, propagate invalidation through the dependency forest,
// reset every affected vertex to identity, then rebuild the fragment.
func (w *Worker[V, D]) deltaCompute() error {
	icb := graph.NewIncrementalFragmentBuilder(w.Frag, w.World, w.Directed)
	if err := icb.Init(w.UpdateFile); err != nil {
		return fmt.Errorf("parsing update file: %w", err)
	}
	if w.Frag.WorkerID() == 0 {
		log.Info().Msg("parsing update file")
	}

	inner := w.Frag.NumInner()
	total := inner + w.Frag.NumOuter()
	deleted := icb.GetDeletedEdgesGid()

	curr := graph.NewVertexSet(total)
	next := graph.NewVertexSet(total)
	resetVertices := graph.NewVertexSet(inner)

	// Fragments mirror only out-neighbours, so a deleted edge's source need
	// not be known here; the recorded parent gid alone decides the seed.
	for _, pair := range deleted {
		v, ok := w.Frag.HandleFromGid(pair.Dst)
		enforce.ENFORCE(ok || pair.Dst.Within(w.Frag.NumWorkers()) != w.Frag.WorkerID(), "deleted edge names an owned gid with no local handle", pair.Dst)
		if !ok || !w.Frag.IsInner(v) {
			continue
		}
		if w.Kernel.DeltaParentGid(v) == pair.Src {
			curr.Insert(uint32(v))
		}
	}

	resetMgr := comm.NewManager[struct{}](w.Net, w.Frag.WorkerID(), w.Threads)
	resetMgr.Start()
	if w.Frag.WorkerID() == 0 {
		log.Info().Msg("resetting")
	}

	for {
		resetMgr.StartARound()
		comm.ParallelProcess[struct{}](resetMgr, w.Threads, w.Frag, func(tid int, v graph.VertexHandle, _ struct{}) {
			// A vertex that is its own parent is a seeded root and depends on
			// no edge; a peer's mirror can still name it through a stale
			// parent, so it is not cleared.
			if w.Kernel.DeltaParentGid(v) == w.Frag.GidOf(v) {
				return
			}
			curr.Insert(uint32(v))
		})

		curr.ForEachRange(0, inner, w.Threads, w.Cilk, func(tid int, uu uint32) {
			u := graph.VertexHandle(uu)
			uGid := w.Frag.GidOf(u)
			for _, e := range w.Frag.OutEdges(u) {
				if w.Kernel.DeltaParentGid(e.Dst) == uGid {
					next.Insert(uint32(e.Dst))
				}
			}
		})

		curr.ForEachRange(0, inner, w.Threads, w.Cilk, func(tid int, uu uint32) {
			u := graph.VertexHandle(uu)
			w.Kernel.ResetValue(u)
			w.Kernel.ResetDelta(u)
			resetVertices.Insert(uu)
		})

		channels := resetMgr.Channels()
		next.ForEachRange(inner, total, w.Threads, w.Cilk, func(tid int, vv uint32) {
			v := graph.VertexHandle(vv)
			channels[tid].SyncStateOnOuterVertex(w.Frag, v, struct{}{})
			w.Kernel.ResetDelta(v)
		})

		if next.Count() > 0 {
			resetMgr.ForceContinue()
		}
		resetMgr.FinishARound()

		curr.Clear()
		curr.Swap(next)

		if resetMgr.ToTerminate() {
			break
		}
	}
	resetMgr.Finalize()

	localReset := resetVertices.Count()
	totalReset := w.Net.SumInt(w.Frag.WorkerID(), localReset)
	if w.Frag.WorkerID() == 0 {
		log.Info().Msg("reset vertices: " + utils.V(totalReset))
	}

	return w.rebuild(icb)
}
