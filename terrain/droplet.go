package terrain

import "math"

// degenerateReason names why SimulateOne gave up on a droplet through the
// NumericOverflow path (§7): never fatal to the field, just this droplet.
type degenerateReason string

const (
	reasonNone      degenerateReason = ""
	reasonCapacity  degenerateReason = "capacity"
	reasonVelocity  degenerateReason = "velocity"
)

// SimulateOne runs the full lifecycle of one droplet against field:
// spawn, up to params.DropLifetime steps of gradient-follow/transport,
// then termination. It reads params only, mutates field via Sample/
// Deposit/Erode, and consumes exactly two RNG draws (at spawn).
//
// It returns a non-empty reason when the droplet ended via the
// NumericOverflow path rather than running out of bounds, going
// stationary, or exhausting its lifetime — callers use this to tally
// BatchReport.Degenerate.
func SimulateOne(field *Heightfield, params ErosionParameters, rng RNG) (degenerate bool, reason string) {
	w, h := field.Width(), field.Height()

	px := float32(rng.Float64()) * (float32(w-1) - 0.1)
	py := float32(rng.Float64()) * (float32(h-1) - 0.1)

	var dx, dy float32
	velocity := float32(1)
	water := float32(1)
	sediment := float32(0)

	for step := 0; step < params.DropLifetime; step++ {
		_, _, u, v, h00, h10, h01, h11 := field.corners(px, py)

		gx := (h10-h00)*(1-v) + (h11-h01)*v
		gy := (h01-h00)*(1-u) + (h11-h10)*u

		ndx := dx*params.Inertia - gx*(1-params.Inertia)
		ndy := dy*params.Inertia - gy*(1-params.Inertia)
		norm := float32(math.Sqrt(float64(ndx*ndx + ndy*ndy)))
		if norm == 0 {
			return false, "" // stationary
		}
		ndx /= norm
		ndy /= norm

		npx := px + ndx
		npy := py + ndy
		if !field.InBoundsForStep(npx, npy) {
			return false, "" // flowed off the simulated surface
		}

		oldPx, oldPy := px, py
		deltaH := field.Sample(npx, npy) - field.Sample(px, py)

		capacity := max32(-deltaH*velocity*water*params.Capacity, params.MinCapacity)
		if !isFinite32(capacity) {
			return true, string(reasonCapacity)
		}

		switch {
		case deltaH > 0:
			amt := min32(sediment, deltaH)
			field.Deposit(oldPx, oldPy, amt)
			sediment -= amt
		case sediment > capacity:
			amt := (sediment - capacity) * params.Deposition
			field.Deposit(oldPx, oldPy, amt)
			sediment -= amt
		default:
			e := min32((capacity-sediment)*params.Erosion, -deltaH)
			removed := field.Erode(oldPx, oldPy, params.Radius, e)
			sediment += removed
		}

		velocityArg := velocity*velocity + deltaH*params.Gravity
		if velocityArg < 0 {
			return true, string(reasonVelocity)
		}
		newVelocity := float32(math.Sqrt(float64(velocityArg)))
		newWater := water * (1 - params.Evaporation)

		px, py, dx, dy, velocity, water = npx, npy, ndx, ndy, newVelocity, newWater
	}

	// Lifetime exhausted; remaining sediment is intentionally discarded,
	// not deposited (design note: this is not a bug to fix).
	return false, ""
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func isFinite32(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
