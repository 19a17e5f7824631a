package worker

import (
	"github.com/nbnb9998/SumInc/comm"
	"github.com/nbnb9998/SumInc/graph"
)

// runRound runs one BSP superstep of the batch traversal loop: drain
// inbound deltas, combine+propagate over the modified inner vertices,
// send improved outer deltas to their owners, vote to continue if
// anything changed, and report whether the network reached quiescence.
func (w *Worker[V, D]) runRound() bool {
	curr := w.Kernel.CurrModified()
	next := w.Kernel.NextModified()

	w.mgr.StartARound()
	next.ParallelClear(w.Threads)

	comm.ParallelProcess[D](w.mgr, w.Threads, w.Frag, func(tid int, v graph.VertexHandle, msg D) {
		if w.Kernel.AccumulateTo(v, msg) {
			curr.Insert(uint32(v))
		}
	})

	inner := w.Frag.NumInner()
	curr.ForEachRange(0, inner, w.Threads, w.Cilk, func(tid int, uu uint32) {
		u := graph.VertexHandle(uu)
		last := w.Kernel.Value(u)
		if w.Kernel.CombineValueDelta(u) {
			w.Kernel.Compute(u, last, w.Kernel.Delta(u), next)
		}
	})

	channels := w.mgr.Channels()
	next.ForEachRange(inner, inner+w.Frag.NumOuter(), w.Threads, w.Cilk, func(tid int, vv uint32) {
		v := graph.VertexHandle(vv)
		d := w.Kernel.Delta(v)
		if !w.Kernel.IsIdentity(w.Kernel.DeltaValue(d)) {
			channels[tid].SyncStateOnOuterVertex(w.Frag, v, d)
		}
	})

	if next.Count() > 0 {
		w.mgr.ForceContinue()
	}
	w.mgr.FinishARound()
	curr.Swap(next)
	return w.mgr.ToTerminate()
}
