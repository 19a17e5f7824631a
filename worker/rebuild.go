package worker

import (
	"github.com/nbnb9998/SumInc/comm"
	"github.com/nbnb9998/SumInc/graph"
)

// rebuild snapshots inner-vertex state by gid (correctness must not
// depend on handle stability across Build), builds the new fragment,
// reallocates kernel state, restores the snapshot, then runs one
// unconditional kickoff round so every vertex with a non-identity delta
// propagates before the batch loop resumes.
func (w *Worker[V, D]) rebuild(icb *graph.IncrementalFragmentBuilder) error {
	inner := w.Frag.NumInner()
	snapValues := make(map[graph.Gid]V, inner)
	snapDeltas := make(map[graph.Gid]D, inner)
	for i := 0; i < inner; i++ {
		h := graph.VertexHandle(i)
		g := w.Frag.GidOf(h)
		snapValues[g] = w.Kernel.Value(h)
		snapDeltas[g] = w.Kernel.Delta(h)
	}

	w.Frag = icb.Build()
	w.Kernel.Init(w.Frag)

	for g, v := range snapValues {
		if h, ok := w.Frag.HandleFromGid(g); ok && w.Frag.IsInner(h) {
			w.Kernel.SetValue(h, v)
			w.Kernel.SetDelta(h, snapDeltas[g])
		}
	}

	w.mgr = comm.NewManager[D](w.Net, w.Frag.WorkerID(), w.Threads)
	w.mgr.Start()

	newInner := w.Frag.NumInner()
	curr := w.Kernel.CurrModified()
	next := w.Kernel.NextModified()

	w.mgr.StartARound()
	for i := 0; i < newInner; i++ {
		u := graph.VertexHandle(i)
		d := w.Kernel.Delta(u)
		if !w.Kernel.IsIdentity(w.Kernel.DeltaValue(d)) {
			w.Kernel.Compute(u, w.Kernel.Value(u), d, next)
		}
	}

	channels := w.mgr.Channels()
	next.ForEachRange(newInner, newInner+w.Frag.NumOuter(), w.Threads, w.Cilk, func(tid int, vv uint32) {
		v := graph.VertexHandle(vv)
		d := w.Kernel.Delta(v)
		if !w.Kernel.IsIdentity(w.Kernel.DeltaValue(d)) {
			channels[tid].SyncStateOnOuterVertex(w.Frag, v, d)
		}
	})
	w.mgr.FinishARound()
	curr.Swap(next)
	return nil
}
