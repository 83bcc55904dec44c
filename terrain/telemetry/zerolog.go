// Package telemetry adapts terrain.Logger onto github.com/rs/zerolog,
// reporting droplet count, elapsed time, throughput, and degenerate
// count as structured log events.
package telemetry

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/ridgeline-sim/erosion/terrain"
)

// ZerologAdapter implements terrain.Logger by emitting structured events
// through an injected zerolog.Logger.
type ZerologAdapter struct {
	log zerolog.Logger
}

var _ terrain.Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps log.
func NewZerologAdapter(log zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{log: log}
}

// BatchStarted implements terrain.Logger.
func (a *ZerologAdapter) BatchStarted(droplets int) {
	a.log.Info().
		Int("droplets", droplets).
		Msg("erosion batch started")
}

// BatchFinished implements terrain.Logger.
func (a *ZerologAdapter) BatchFinished(report terrain.BatchReport) {
	ev := a.log.Info()
	if report.Cancelled {
		ev = a.log.Warn()
	}

	throughput := 0.0
	if report.WallTime > 0 {
		throughput = float64(report.DropletsRun) / report.WallTime.Seconds()
	}

	ev.
		Int("droplets_run", report.DropletsRun).
		Dur("wall_time", report.WallTime).
		Float64("droplets_per_sec", throughput).
		Bool("cancelled", report.Cancelled).
		Int("degenerate", report.Degenerate).
		Msg("erosion batch finished")
}

// DropletDegenerate implements terrain.Logger.
func (a *ZerologAdapter) DropletDegenerate(reason string) {
	a.log.Debug().
		Str("reason", reason).
		Msg("droplet terminated by numeric overflow")
}

// NewStderrAdapter is a convenience constructor for a console-writer
// backed adapter, the zerolog equivalent of the original's unconditional
// stdout tree-printing.
func NewStderrAdapter() *ZerologAdapter {
	console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })
	return NewZerologAdapter(zerolog.New(console).With().Timestamp().Logger())
}
