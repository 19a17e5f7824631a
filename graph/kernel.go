package graph

// Kernel is the contract a traversal algorithm implements. The kernel
// owns its concrete state containers (values, deltas, curr_modified,
// next_modified), addressable by the worker through these methods; the
// worker core never knows the concrete value/delta types.
type Kernel[V any, D any] interface {
	// Identity returns the monoid's identity element.
	Identity() V

	// IsIdentity reports whether a value equals the identity element,
	// used to suppress sending/propagating no-information deltas.
	IsIdentity(v V) bool

	// Init (re)allocates every state container sized to fragment, and may
	// seed CurrModified/values/deltas for a cold start (e.g. marking a
	// source vertex active). Called once per fragment instance, including
	// once per rebuild after an incremental adjust.
	Init(fragment *Fragment)

	// CurrModified and NextModified expose the kernel-owned vertex-set
	// bitmaps the worker drives each round.
	CurrModified() *VertexSet
	NextModified() *VertexSet

	// Value and Delta read the current state of a vertex.
	Value(h VertexHandle) V
	Delta(h VertexHandle) D
	// DeltaValue extracts the value component carried by a delta message,
	// for the IsIdentity suppression check on outbound sends.
	DeltaValue(d D) V
	// DeltaParentGid extracts the dependency-forest parent gid recorded
	// in a vertex's delta, used by the incremental reset loop.
	DeltaParentGid(h VertexHandle) Gid

	// SetValue and SetDelta restore snapshotted state onto a rebuilt
	// fragment's inner vertices.
	SetValue(h VertexHandle, v V)
	SetDelta(h VertexHandle, d D)

	// ResetValue and ResetDelta reset a single vertex's state to identity,
	// used by the incremental reset loop.
	ResetValue(h VertexHandle)
	ResetDelta(h VertexHandle)

	// AccumulateTo merges an inbound message into D[h], race-free under
	// concurrent callers targeting distinct h, returning true iff it
	// improved h's delta.
	AccumulateTo(h VertexHandle, msg D) bool

	// CombineValueDelta merges D[h] into V[h] if it improves it, returning
	// true iff it did. Only ever called for inner h.
	CombineValueDelta(h VertexHandle) bool

	// Compute propagates an improvement at u to its outgoing neighbours,
	// merging candidate deltas into their D slots and inserting every
	// neighbour whose delta improved into next.
	Compute(u VertexHandle, last V, delta D, next *VertexSet)
}
