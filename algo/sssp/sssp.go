// Package sssp is a single-source shortest paths kernel for the
// incremental BSP traversal worker: a min-plus monoid whose delta
// carries the parent gid that produced the current best distance.
package sssp

import (
	"math"

	"github.com/nbnb9998/SumInc/graph"
)

// Delta is the message/candidate carried for a vertex: the best distance
// seen so far and the gid of the neighbour that produced it.
type Delta struct {
	Value  float64
	Parent graph.Gid
}

// Kernel implements graph.Kernel[float64, Delta].
type Kernel struct {
	source graph.Gid

	frag  *graph.Fragment
	state *graph.State[float64, Delta]
	curr  *graph.VertexSet
	next  *graph.VertexSet
}

// New returns an SSSP kernel rooted at source.
func New(source graph.Gid) *Kernel {
	return &Kernel{source: source}
}

func (k *Kernel) Identity() float64        { return math.Inf(1) }
func (k *Kernel) IsIdentity(v float64) bool { return math.IsInf(v, 1) }

func (k *Kernel) Init(fragment *graph.Fragment) {
	k.frag = fragment
	k.state = graph.NewState[float64, Delta](fragment, k.Identity(), Delta{Value: k.Identity()})
	total := fragment.NumInner() + fragment.NumOuter()
	k.curr = graph.NewVertexSet(total)
	k.next = graph.NewVertexSet(total)

	if h, ok := fragment.HandleFromGid(k.source); ok && fragment.IsInner(h) {
		k.state.SetDelta(h, Delta{Value: 0, Parent: k.source})
		k.curr.Insert(uint32(h))
	}
}

func (k *Kernel) CurrModified() *graph.VertexSet { return k.curr }
func (k *Kernel) NextModified() *graph.VertexSet { return k.next }

func (k *Kernel) Value(h graph.VertexHandle) float64 { return k.state.Values[h] }
func (k *Kernel) Delta(h graph.VertexHandle) Delta    { return k.state.Delta(h) }
func (k *Kernel) DeltaValue(d Delta) float64          { return d.Value }
func (k *Kernel) DeltaParentGid(h graph.VertexHandle) graph.Gid {
	return k.state.Delta(h).Parent
}

func (k *Kernel) SetValue(h graph.VertexHandle, v float64) { k.state.Values[h] = v }
func (k *Kernel) SetDelta(h graph.VertexHandle, d Delta)    { k.state.SetDelta(h, d) }

func (k *Kernel) ResetValue(h graph.VertexHandle) { k.state.Values[h] = k.Identity() }
func (k *Kernel) ResetDelta(h graph.VertexHandle) { k.state.ResetDelta(h) }

func (k *Kernel) AccumulateTo(h graph.VertexHandle, msg Delta) bool {
	return k.merge(h, msg)
}

func (k *Kernel) CombineValueDelta(h graph.VertexHandle) bool {
	d := k.state.Delta(h)
	if d.Value < k.state.Values[h] {
		k.state.Values[h] = d.Value
		return true
	}
	return false
}

func (k *Kernel) Compute(u graph.VertexHandle, last float64, delta Delta, next *graph.VertexSet) {
	uGid := k.frag.GidOf(u)
	for _, e := range k.frag.OutEdges(u) {
		cand := Delta{Value: delta.Value + e.Weight, Parent: uGid}
		if k.merge(e.Dst, cand) {
			next.Insert(uint32(e.Dst))
		}
	}
}

func (k *Kernel) merge(h graph.VertexHandle, cand Delta) bool {
	return k.state.Merge(h, cand, func(candidate, existing Delta) bool {
		return candidate.Value < existing.Value
	})
}
