package comm

import "sync/atomic"

// Manager is one worker's handle onto a shared Network, carrying whatever
// payload type M the current phase exchanges (a kernel's delta_t during
// the batch/incremental rounds, an empty struct during the reset rounds).
type Manager[M any] struct {
	net      *Network
	workerID int
	channels []*Channel[M]
	inbox    []routedEnvelope
	force    bool
}

func NewManager[M any](net *Network, workerID, threads int) *Manager[M] {
	m := &Manager[M]{net: net, workerID: workerID}
	m.channels = make([]*Channel[M], threads)
	for t := range m.channels {
		m.channels[t] = &Channel[M]{mgr: m}
	}
	return m
}

func (m *Manager[M]) Start()       {}
func (m *Manager[M]) Finalize()    {}
func (m *Manager[M]) StartARound() {}

// Channels returns the per-thread send channels, one per thread this
// manager was constructed with.
func (m *Manager[M]) Channels() []*Channel[M] { return m.channels }

// ForceContinue casts this worker's vote to keep the BSP loop running past
// the next quiescence check.
func (m *Manager[M]) ForceContinue() { m.force = true }

// ToTerminate reports whether the previous FinishARound observed global
// quiescence: no messages in flight anywhere, and no worker's ForceContinue.
func (m *Manager[M]) ToTerminate() bool { return m.net.lastQuiescent }

// FinishARound flushes every channel's buffered sends into the shared
// network, then blocks at the barrier until every worker has done the
// same; the barrier's leader computes global quiescence and hands each
// worker its freshly routed inbox before releasing them.
func (m *Manager[M]) FinishARound() {
	for _, c := range m.channels {
		c.flush()
	}
	if m.force {
		atomic.AddInt32(&m.net.forceVotes, 1)
	}
	m.net.barrier.Sync(func() {
		anyMsg := false
		for w := 0; w < m.net.n; w++ {
			if len(m.net.pending[w]) > 0 {
				anyMsg = true
				break
			}
		}
		m.net.lastQuiescent = !(anyMsg || atomic.LoadInt32(&m.net.forceVotes) > 0)
		m.net.ready, m.net.pending = m.net.pending, make([][]routedEnvelope, m.net.n)
		atomic.StoreInt32(&m.net.forceVotes, 0)
	})
	m.inbox = m.net.ready[m.workerID]
	m.force = false
}
