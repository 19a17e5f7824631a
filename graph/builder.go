package graph

import "sort"

// FragmentBuilder derives one worker's fragment from a WorldGraph by a
// gid-modulo ownership function.
type FragmentBuilder struct {
	world      *WorldGraph
	workerID   int
	numWorkers int
	directed   bool
}

func NewFragmentBuilder(world *WorldGraph, workerID, numWorkers int, directed bool) *FragmentBuilder {
	return &FragmentBuilder{world: world, workerID: workerID, numWorkers: numWorkers, directed: directed}
}

// Build partitions the world graph and returns this worker's fragment.
// Inner handles are assigned 0..NumInner-1 in ascending gid order, fixing
// the fragment's iteration order used by Output.
func (b *FragmentBuilder) Build() *Fragment {
	all := b.world.Vertices()
	innerGids := make([]Gid, 0, len(all)/b.numWorkers+1)
	for _, g := range all {
		if g.Within(b.numWorkers) == b.workerID {
			innerGids = append(innerGids, g)
		}
	}
	sort.Slice(innerGids, func(i, j int) bool { return innerGids[i] < innerGids[j] })

	f := &Fragment{
		workerID:   b.workerID,
		numWorkers: b.numWorkers,
		directed:   b.directed,
		numInner:   len(innerGids),
	}
	f.gids = append(f.gids, innerGids...)
	f.index = make(map[Gid]VertexHandle, len(innerGids))
	f.owner = make([]int, len(innerGids))
	for i, g := range innerGids {
		f.index[g] = VertexHandle(i)
		f.owner[i] = b.workerID
	}
	f.adj = make([][]Edge2, len(innerGids))

	for i, g := range innerGids {
		for _, e := range b.world.OutEdges(g) {
			dstH, ok := f.index[e.Dst]
			if !ok {
				dstH = VertexHandle(len(f.gids))
				f.gids = append(f.gids, e.Dst)
				f.owner = append(f.owner, e.Dst.Within(b.numWorkers))
				f.index[e.Dst] = dstH
			}
			f.adj[i] = append(f.adj[i], Edge2{Dst: dstH, Weight: e.Weight})
		}
	}
	return f
}

// EdgePair identifies a deleted edge by its endpoints' global ids.
type EdgePair struct {
	Src, Dst Gid
}

// IncrementalFragmentBuilder applies a parsed batch of edge updates to a
// WorldGraph and re-derives the fragment.
type IncrementalFragmentBuilder struct {
	base     *Fragment
	world    *WorldGraph
	directed bool
	updates  []EdgeUpdate
}

func NewIncrementalFragmentBuilder(base *Fragment, world *WorldGraph, directed bool) *IncrementalFragmentBuilder {
	return &IncrementalFragmentBuilder{base: base, world: world, directed: directed}
}

// Init parses the update file without mutating the world graph.
func (b *IncrementalFragmentBuilder) Init(path string) error {
	updates, err := ParseUpdateFile(path)
	if err != nil {
		return err
	}
	b.updates = updates
	return nil
}

// GetDeletedEdgesGid returns every delete record parsed by Init.
func (b *IncrementalFragmentBuilder) GetDeletedEdgesGid() []EdgePair {
	var out []EdgePair
	for _, u := range b.updates {
		if u.Op == OpDelete {
			out = append(out, EdgePair{Src: u.Src, Dst: u.Dst})
		}
	}
	return out
}

// Build applies every parsed update to the world graph, then re-runs the
// initial builder's partition logic over the updated graph.
func (b *IncrementalFragmentBuilder) Build() *Fragment {
	for _, u := range b.updates {
		switch u.Op {
		case OpAdd:
			b.world.AddEdge(u.Src, u.Dst, u.Weight)
			if !b.directed {
				b.world.AddEdge(u.Dst, u.Src, u.Weight)
			}
		case OpDelete:
			b.world.DelEdge(u.Src, u.Dst)
			if !b.directed {
				b.world.DelEdge(u.Dst, u.Src)
			}
		}
	}
	return NewFragmentBuilder(b.world, b.base.workerID, b.base.numWorkers, b.directed).Build()
}
