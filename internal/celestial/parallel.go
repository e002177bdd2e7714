package celestial

import "sync"

// parallelFor splits [0, n) into contiguous chunks and runs fn on each
// chunk concurrently. Chunks never overlap, so fn may write freely to
// per-index slots. The worker argument identifies the chunk (0-based) for
// per-worker scratch.
func parallelFor(n, workers int, fn func(worker, start, end int)) {
	if workers <= 1 || n <= 1 {
		fn(0, 0, n)
		return
	}

	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(id, s, e int) {
			defer wg.Done()
			fn(id, s, e)
		}(w, start, end)
	}
	wg.Wait()
}
