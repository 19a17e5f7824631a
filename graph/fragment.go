package graph

// VertexHandle is an opaque local index into a fragment. Handles
// [0, NumInner) address inner (owned) vertices; handles beyond that
// address outer (mirrored) vertices.
type VertexHandle uint32

// Fragment is one worker's partition of the graph: its owned inner
// vertices with their outgoing adjacency, plus the outer vertices those
// edges reach that are owned elsewhere.
type Fragment struct {
	workerID   int
	numWorkers int
	directed   bool
	numInner   int
	gids       []Gid
	index      map[Gid]VertexHandle
	owner      []int
	adj        [][]Edge2
}

// Edge2 is an outgoing edge expressed against local handles.
type Edge2 struct {
	Dst    VertexHandle
	Weight float64
}

func (f *Fragment) WorkerID() int   { return f.workerID }
func (f *Fragment) NumWorkers() int { return f.numWorkers }
func (f *Fragment) Directed() bool  { return f.directed }
func (f *Fragment) NumInner() int   { return f.numInner }
func (f *Fragment) NumOuter() int   { return len(f.gids) - f.numInner }

func (f *Fragment) IsInner(h VertexHandle) bool { return int(h) < f.numInner }

func (f *Fragment) GidOf(h VertexHandle) Gid { return f.gids[h] }

func (f *Fragment) HandleFromGid(g Gid) (VertexHandle, bool) {
	h, ok := f.index[g]
	return h, ok
}

// OwnerOf returns the id of the worker owning the inner counterpart of h.
func (f *Fragment) OwnerOf(h VertexHandle) int { return f.owner[h] }

// OutEdges returns the outgoing adjacency of an inner vertex.
func (f *Fragment) OutEdges(h VertexHandle) []Edge2 { return f.adj[h] }

// InnerHandle returns the handle for the i'th inner vertex in fragment
// iteration order (ascending gid), used by Output.
func (f *Fragment) InnerHandle(i int) VertexHandle { return VertexHandle(i) }

// LocalGidSet returns the set of every gid (inner and outer) known to this
// fragment.
func (f *Fragment) LocalGidSet() map[Gid]struct{} {
	set := make(map[Gid]struct{}, len(f.gids))
	for _, g := range f.gids {
		set[g] = struct{}{}
	}
	return set
}
