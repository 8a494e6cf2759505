package pandora

import (
	"context"
	"runtime"
	"sync"

	"github.com/jpdeleon/pandora-go/params"
)

// Result pairs one bundle's Evaluate output with its index in the batch,
// so callers can match results back to the bundles they submitted.
type Result struct {
	Index int
	Flux  []float64
	Err   error
}

// Batch evaluates each bundle in bundles against the same time grid,
// concurrently, and returns one Result per bundle in submission order.
// Each bundle is fully self-contained — there is no shared, process-global
// configuration to race on.
//
// Batch stops launching new work once ctx is done; bundles not yet started
// are returned with ctx.Err() as their Err. Work already in flight runs to
// completion.
func Batch(ctx context.Context, bundles []*params.Bundle, time []float64) []Result {
	results := make([]Result, len(bundles))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(bundles) {
		workers = len(bundles)
	}
	if workers < 1 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				flux, err := Evaluate(bundles[i], time)
				results[i] = Result{Index: i, Flux: flux, Err: err}
			}
		}()
	}

	for i := range bundles {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Index: i, Err: err}
			continue
		}
		select {
		case <-ctx.Done():
			results[i] = Result{Index: i, Err: ctx.Err()}
			continue
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
