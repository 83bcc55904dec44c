package terrain

import (
	"context"
	"time"
)

// RunBatch runs n independent droplet simulations sequentially against
// field, in the order drawn from rng, and returns a summary report.
//
// Scheduling is single-threaded and cooperative: cancellation via ctx is
// only checked at droplet boundaries (never mid-droplet), matching the
// spec's "no preemption mid-droplet" rule — this is simply the idiomatic
// Go expression of "the caller bounds per-call latency by choosing batch
// size". A cancelled context stops the batch early and returns
// BatchReport{Cancelled: true} with the droplets completed so far still
// applied to field.
//
// params is validated once, at entry; an invalid parameter aborts the
// batch before any droplet runs and field is left untouched.
func RunBatch(ctx context.Context, field *Heightfield, params ErosionParameters, rng RNG, n int, logger Logger) (BatchReport, error) {
	if err := params.Validate(); err != nil {
		return BatchReport{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if logger != nil {
		logger.BatchStarted(n)
	}

	start := time.Now()
	var report BatchReport

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			report.Cancelled = true
		default:
		}
		if report.Cancelled {
			break
		}

		degenerate, reason := SimulateOne(field, params, rng)
		if degenerate {
			report.Degenerate++
			if logger != nil {
				logger.DropletDegenerate(reason)
			}
		}
		report.DropletsRun++
	}

	report.WallTime = time.Since(start)

	if logger != nil {
		logger.BatchFinished(report)
	}

	return report, nil
}
