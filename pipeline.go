package scenegraph

import "sync"

// task fans fn out over data in contiguous chunks, one goroutine per worker.
// Callers must guarantee the fn invocations touch disjoint state.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
