package comm

import (
	"sync"

	"github.com/nbnb9998/SumInc/enforce"
	"github.com/nbnb9998/SumInc/graph"
)

// ParallelProcess drains m's inbox for this round across threads
// goroutines, resolving each envelope's destination gid to a local handle
// and invoking handler. Go has no generic methods, so this is a
// package-level generic function over Manager[M] rather than a method.
func ParallelProcess[M any](m *Manager[M], threads int, fragment *graph.Fragment, handler func(tid int, v graph.VertexHandle, msg M)) {
	n := len(m.inbox)
	if n == 0 || threads <= 0 {
		return
	}
	chunk := (n + threads - 1) / threads
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		start := t * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(tid, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				env := m.inbox[i]
				v, ok := fragment.HandleFromGid(env.dstGid)
				enforce.ENFORCE(ok, "message addressed to unresolvable gid", env.dstGid)
				handler(tid, v, env.payload.(M))
			}
		}(t, start, end)
	}
	wg.Wait()
}
