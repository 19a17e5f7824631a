// Package comm implements the in-process message-manager façade the
// worker drives each BSP round: a Network shared by every worker
// goroutine in a run stands in for the MPI communicator, and each
// worker's Manager is its per-rank handle onto it.
package comm

import (
	"sync"

	"github.com/nbnb9998/SumInc/graph"
)

// Network coordinates the Managers of every worker in a run: a shared
// barrier, per-destination-worker pending queues, and the global
// quiescence vote computed once per round by the barrier's leader.
type Network struct {
	n             int
	barrier       *Barrier
	mu            sync.Mutex
	pending       [][]routedEnvelope
	ready         [][]routedEnvelope
	forceVotes    int32
	lastQuiescent bool
	collect       []int
	collectResult int
}

type routedEnvelope struct {
	dstGid  graph.Gid
	payload any
}

func NewNetwork(n int) *Network {
	return &Network{
		n:       n,
		barrier: NewBarrier(n),
		pending: make([][]routedEnvelope, n),
		ready:   make([][]routedEnvelope, n),
		collect: make([]int, n),
	}
}

// PlainBarrier is a synchronization point with no leader action, used at
// worker Init and at the start and end of Query.
func (net *Network) PlainBarrier() { net.barrier.Sync(nil) }

// SumInt performs a collective sum of local across every worker, returning
// the same total to all of them.
func (net *Network) SumInt(workerID, local int) int {
	net.mu.Lock()
	net.collect[workerID] = local
	net.mu.Unlock()
	net.barrier.Sync(func() {
		sum := 0
		for _, v := range net.collect {
			sum += v
		}
		net.collectResult = sum
	})
	return net.collectResult
}
