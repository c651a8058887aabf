package recommend

import (
	"context"

	"github.com/alitto/pond/v2"
)

// DefaultBatchConcurrency caps in-flight requests for Batch.
const DefaultBatchConcurrency = 4

// BatchResult pairs a profile with the state resolved for it.
type BatchResult struct {
	Profile Profile
	State   State
}

// Batch resolves suggestions for every profile, at most concurrency at a
// time. Results are returned in input order. The fetcher's tracked state
// is left alone.
func (f *Fetcher) Batch(ctx context.Context, profiles []Profile, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]BatchResult, len(profiles))
	pool := pond.NewPool(concurrency)

	for i, p := range profiles {
		pool.Submit(func() {
			st := f.Resolve(ctx, p)
			f.logger.Debug().
				Str("learner", p.Name).
				Int("count", len(Suggestions(st))).
				Msg("batch fetch done")
			results[i] = BatchResult{Profile: p, State: st}
		})
	}

	pool.StopAndWait()
	return results
}
