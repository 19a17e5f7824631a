// Package cc is a connected-components kernel for the incremental BSP
// traversal worker: every vertex's label converges to the minimum gid in
// its component via a min-label join.
package cc

import (
	"math"

	"github.com/nbnb9998/SumInc/graph"
)

// Delta carries a candidate label and the gid of the neighbour it came
// from (used only as the dependency-forest parent for incremental reset).
type Delta struct {
	Label  uint32
	Parent graph.Gid
}

// Kernel implements graph.Kernel[uint32, Delta].
type Kernel struct {
	frag  *graph.Fragment
	state *graph.State[uint32, Delta]
	curr  *graph.VertexSet
	next  *graph.VertexSet
}

func New() *Kernel { return &Kernel{} }

const identityLabel = math.MaxUint32

func (k *Kernel) Identity() uint32        { return identityLabel }
func (k *Kernel) IsIdentity(v uint32) bool { return v == identityLabel }

// Init seeds every inner vertex's candidate label with its own gid and
// marks it modified, since connected components has no distinguished
// source: every vertex starts active, unlike SSSP's single-source seed.
func (k *Kernel) Init(fragment *graph.Fragment) {
	k.frag = fragment
	k.state = graph.NewState[uint32, Delta](fragment, k.Identity(), Delta{Label: k.Identity()})
	total := fragment.NumInner() + fragment.NumOuter()
	k.curr = graph.NewVertexSet(total)
	k.next = graph.NewVertexSet(total)

	for i := 0; i < fragment.NumInner(); i++ {
		h := graph.VertexHandle(i)
		gid := fragment.GidOf(h)
		k.state.SetDelta(h, Delta{Label: uint32(gid), Parent: gid})
		k.curr.Insert(uint32(h))
	}
}

func (k *Kernel) CurrModified() *graph.VertexSet { return k.curr }
func (k *Kernel) NextModified() *graph.VertexSet { return k.next }

func (k *Kernel) Value(h graph.VertexHandle) uint32 { return k.state.Values[h] }
func (k *Kernel) Delta(h graph.VertexHandle) Delta  { return k.state.Delta(h) }
func (k *Kernel) DeltaValue(d Delta) uint32         { return d.Label }
func (k *Kernel) DeltaParentGid(h graph.VertexHandle) graph.Gid {
	return k.state.Delta(h).Parent
}

func (k *Kernel) SetValue(h graph.VertexHandle, v uint32) { k.state.Values[h] = v }
func (k *Kernel) SetDelta(h graph.VertexHandle, d Delta)  { k.state.SetDelta(h, d) }

func (k *Kernel) ResetValue(h graph.VertexHandle) { k.state.Values[h] = k.Identity() }
func (k *Kernel) ResetDelta(h graph.VertexHandle) { k.state.ResetDelta(h) }

func (k *Kernel) AccumulateTo(h graph.VertexHandle, msg Delta) bool {
	return k.merge(h, msg)
}

func (k *Kernel) CombineValueDelta(h graph.VertexHandle) bool {
	d := k.state.Delta(h)
	if d.Label < k.state.Values[h] {
		k.state.Values[h] = d.Label
		return true
	}
	return false
}

func (k *Kernel) Compute(u graph.VertexHandle, last uint32, delta Delta, next *graph.VertexSet) {
	uGid := k.frag.GidOf(u)
	for _, e := range k.frag.OutEdges(u) {
		cand := Delta{Label: delta.Label, Parent: uGid}
		if k.merge(e.Dst, cand) {
			next.Insert(uint32(e.Dst))
		}
	}
}

func (k *Kernel) merge(h graph.VertexHandle, cand Delta) bool {
	return k.state.Merge(h, cand, func(candidate, existing Delta) bool {
		return candidate.Label < existing.Label
	})
}
