package main

import (
	"math"

	"github.com/ridgeline-sim/erosion/noise"
)

// Shaping curves, adapted from the teacher's SmoothingFunctions.go. They
// reshape a sign-symmetric value in [-1, 1] (the preview maps a [0, 1]
// noise sample into that range and back before it becomes a heightfield
// cell), producing large flat regions (greatPlains), sharp ridgelines (cliff),
// or a blend (plateau) — purely a cosmetic preprocessing step for the
// preview command, not part of the simulation's contract.
func greatPlains(height float64) float64 {
	return math.Copysign(math.Sin(math.Pi*height-math.Pi/2)/2+0.5, height)
}

func cliff(height float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(height)), height)
}

func plateau(height, level float64) float64 {
	return level*greatPlains(height) + (1-level)*cliff(height)
}

// shapedSampler wraps a noise.Sampler, passing its output through curve
// before returning it.
type shapedSampler struct {
	inner noise.Sampler
	curve func(float64) float64
}

var _ noise.Sampler = shapedSampler{}

func (s shapedSampler) Sample(seed int32, x, y float32) float32 {
	v := float64(s.inner.Sample(seed, x, y))
	return float32(s.curve(v))
}
