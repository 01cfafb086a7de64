package bed

import (
	"runtime"
	"sync"
)

// maxRowWorkers bounds the per-table worker pool so huge tables do not
// spawn unbounded goroutines.
const maxRowWorkers = 32

// mapRows applies fn to every row of the table on a bounded worker
// pool. Results are collected by original row index, so the returned
// slice is in input order regardless of worker completion order. The
// first error observed wins and is returned after all workers drain.
func mapRows(t Table, fn func(Interval) (Table, error)) ([]Table, error) {
	workers := runtime.NumCPU()
	if workers > maxRowWorkers {
		workers = maxRowWorkers
	}
	if workers > len(t) {
		workers = len(t)
	}
	if workers <= 1 {
		return mapRowsSequential(t, fn)
	}

	results := make([]Table, len(t))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				part, err := fn(t[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results[i] = part
			}
		}()
	}

	for i := range t {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func mapRowsSequential(t Table, fn func(Interval) (Table, error)) ([]Table, error) {
	results := make([]Table, len(t))
	for i, iv := range t {
		part, err := fn(iv)
		if err != nil {
			return nil, err
		}
		results[i] = part
	}
	return results, nil
}
