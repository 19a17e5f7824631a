package comm

import "github.com/nbnb9998/SumInc/graph"

// Channel is one thread's outbound send buffer for one round. Only the
// owning thread ever appends to it within a round, so no locking is needed
// between SyncStateOnOuterVertex calls; flush (called from FinishARound)
// is the only point it touches shared Network state.
type Channel[M any] struct {
	mgr *Manager[M]
	buf []pendingSend
}

type pendingSend struct {
	destWorker int
	env        routedEnvelope
}

// SyncStateOnOuterVertex enqueues payload for delivery to the worker that
// owns the inner counterpart of the outer vertex v.
func (c *Channel[M]) SyncStateOnOuterVertex(fragment *graph.Fragment, v graph.VertexHandle, payload M) {
	dest := fragment.OwnerOf(v)
	gid := fragment.GidOf(v)
	c.buf = append(c.buf, pendingSend{destWorker: dest, env: routedEnvelope{dstGid: gid, payload: payload}})
}

func (c *Channel[M]) flush() {
	if len(c.buf) == 0 {
		return
	}
	net := c.mgr.net
	net.mu.Lock()
	for _, pe := range c.buf {
		net.pending[pe.destWorker] = append(net.pending[pe.destWorker], pe.env)
	}
	net.mu.Unlock()
	c.buf = c.buf[:0]
}
