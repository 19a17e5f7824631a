package graph

import (
	"sync"
	"sync/atomic"

	"github.com/nbnb9998/SumInc/mathutils"
)

// ForEachRange invokes fn(tid, h) for every set bit h in [lo, hi) of s,
// fanning out across threads goroutines. cilk selects a work-stealing
// partition instead of a static chunked one; both give identical results,
// differing only in scheduling, matching the --cilk flag's contract.
func (s *VertexSet) ForEachRange(lo, hi, threads int, cilk bool, fn func(tid int, h uint32)) {
	if hi <= lo || threads <= 0 {
		return
	}
	threads = mathutils.Min(threads, hi-lo)
	if cilk {
		forEachCilk(s, lo, hi, threads, fn)
	} else {
		forEachSimple(s, lo, hi, threads, fn)
	}
}

func forEachSimple(s *VertexSet, lo, hi, threads int, fn func(int, uint32)) {
	n := hi - lo
	chunk := (n + threads - 1) / threads
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		start := lo + t*chunk
		if start >= hi {
			break
		}
		end := start + chunk
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(tid, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if s.Test(uint32(i)) {
					fn(tid, uint32(i))
				}
			}
		}(t, start, end)
	}
	wg.Wait()
}

const maxCilkGrain = 64

func forEachCilk(s *VertexSet, lo, hi, threads int, fn func(int, uint32)) {
	// Shrink the steal grain on small ranges so every thread still gets a
	// slice to steal instead of the first goroutine draining the range.
	grain := mathutils.Max(1, mathutils.Min(maxCilkGrain, (hi-lo)/(threads*4)))

	var next = int64(lo)
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			for {
				start := int(atomic.AddInt64(&next, int64(grain))) - grain
				if start >= hi {
					return
				}
				end := start + grain
				if end > hi {
					end = hi
				}
				for i := start; i < end; i++ {
					if s.Test(uint32(i)) {
						fn(tid, uint32(i))
					}
				}
			}
		}(t)
	}
	wg.Wait()
}
