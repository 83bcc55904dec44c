package terrain

import "time"

// Logger observes Batch Driver progress. A nil Logger passed to RunBatch
// disables all logging with zero overhead — no field is evaluated unless
// a Logger is attached.
//
// The default implementation (terrain/telemetry.ZerologAdapter) reports
// batch progress as structured events rather than printed text.
type Logger interface {
	BatchStarted(droplets int)
	BatchFinished(report BatchReport)
	DropletDegenerate(reason string)
}

// BatchReport summarizes one RunBatch call.
type BatchReport struct {
	DropletsRun int
	WallTime    time.Duration
	Cancelled   bool
	// Degenerate counts droplets that terminated via the NumericOverflow
	// path (non-finite capacity or a negative sqrt argument for
	// velocity). It is never fatal to the field.
	Degenerate int
}
