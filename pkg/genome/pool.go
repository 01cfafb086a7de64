package genome

import (
	"runtime"
	"sync"
)

// maxPoolWorkers caps pool size to avoid memory exhaustion when many
// chromosome-sized payloads are in flight at once.
const maxPoolWorkers = 32

// poolSize resolves a caller-supplied worker count: non-positive means
// one worker per CPU, and the count never exceeds the job count or the
// pool cap.
func poolSize(workers, jobs int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxPoolWorkers {
		workers = maxPoolWorkers
	}
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// forEach runs fn(0..jobs-1) on a pool of the given size. Callers index
// into their own result slices, so completion order never leaks into
// output order. The first error wins and is returned once every worker
// has drained.
func forEach(workers, jobs int, fn func(i int) error) error {
	workers = poolSize(workers, jobs)
	if workers == 1 {
		for i := 0; i < jobs; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	queue := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				if err := fn(i); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}

	for i := 0; i < jobs; i++ {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return firstErr
}
