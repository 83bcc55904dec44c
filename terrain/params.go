package terrain

import "math"

// ErosionParameters configures one droplet simulation run. All fields
// have the defaults the original implementation shipped (its
// EROSION_DEFAULT_DESC), preserved bit-for-bit.
type ErosionParameters struct {
	// DropLifetime is the maximum number of steps a single droplet may take.
	DropLifetime int
	// Inertia blends a droplet's prior direction against the local
	// gradient: 0 follows the gradient exactly, 1 never turns.
	Inertia float32
	// Capacity scales how much sediment a droplet can carry for a given
	// slope, velocity and water amount.
	Capacity float32
	// MinCapacity floors the capacity calculation so flats still erode.
	MinCapacity float32
	// Deposition is the fraction of excess sediment dropped per step.
	Deposition float32
	// Erosion is the fraction of free capacity eroded per step.
	Erosion float32
	// Radius is the erosion kernel's radius in cells.
	Radius int
	// Gravity scales the velocity update from height loss.
	Gravity float32
	// Evaporation is the fraction of water lost per step.
	Evaporation float32
}

// DefaultErosionParameters returns the reference parameter set.
func DefaultErosionParameters() ErosionParameters {
	return ErosionParameters{
		DropLifetime: 50,
		Inertia:      0.05,
		Capacity:     4.0,
		MinCapacity:  0.01,
		Deposition:   0.3,
		Erosion:      0.3,
		Radius:       3,
		Gravity:      4.0,
		Evaporation:  0.05,
	}
}

// Validate checks every field's admissible range, returning an
// *ErosionError naming the first offending field. Called once at
// RunBatch entry, never per step, per the spec's error-handling design.
func (p ErosionParameters) Validate() error {
	switch {
	case p.DropLifetime < 0:
		return invalidParameter("drop_lifetime", "must be >= 0")
	case math.IsNaN(float64(p.Inertia)) || p.Inertia < 0 || p.Inertia > 1:
		return invalidParameter("inertia", "must be in [0, 1]")
	case math.IsNaN(float64(p.Capacity)) || p.Capacity <= 0:
		return invalidParameter("capacity", "must be > 0")
	case math.IsNaN(float64(p.MinCapacity)) || p.MinCapacity < 0:
		return invalidParameter("min_capacity", "must be >= 0")
	case math.IsNaN(float64(p.Deposition)) || p.Deposition < 0 || p.Deposition > 1:
		return invalidParameter("deposition", "must be in [0, 1]")
	case math.IsNaN(float64(p.Erosion)) || p.Erosion < 0 || p.Erosion > 1:
		return invalidParameter("erosion", "must be in [0, 1]")
	case p.Radius < 1:
		return invalidParameter("radius", "must be >= 1")
	case math.IsNaN(float64(p.Gravity)) || p.Gravity <= 0:
		return invalidParameter("gravity", "must be > 0")
	case math.IsNaN(float64(p.Evaporation)) || p.Evaporation < 0 || p.Evaporation > 1:
		return invalidParameter("evaporation", "must be in [0, 1]")
	}
	return nil
}
