// Package workers runs index-addressed jobs on a bounded pool of goroutines.
//
// Jobs write their output into caller-owned slots by index, so the result
// order never depends on scheduling.
package workers

import (
	"runtime"
	"sync"
)

// Limit normalises a requested pool size: n <= 0 means GOMAXPROCS, and the
// pool never exceeds the number of jobs.
func Limit(n, jobs int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}

	return n
}

// ForEach calls fn(i) for every i in [0, jobs) using at most limit
// goroutines and returns when all calls have finished. fn must only touch
// state owned by index i.
func ForEach(jobs, limit int, fn func(i int)) {
	if jobs <= 0 {
		return
	}
	limit = Limit(limit, jobs)
	if limit == 1 {
		for i := 0; i < jobs; i++ {
			fn(i)
		}

		return
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(limit)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}
	for i := 0; i < jobs; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
