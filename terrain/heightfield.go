package terrain

import (
	"math"

	"github.com/ridgeline-sim/erosion/noise"
)

// Heightfield is a dense row-major grid of finite elevations. It is the
// sole owner of its buffer, reallocated only on Reset; the Droplet
// Simulator is the only mutator beyond Reset.
type Heightfield struct {
	width, height    int
	buf              []float32
	seed             int32
	horizontalScale  float32
	verticalScale    float32
}

// Reset (re)allocates the buffer and fills every cell from sampler,
// scaled by horizontalScale. It fails with InvalidSize if either
// dimension is below 2, leaving the Heightfield untouched.
func (h *Heightfield) Reset(seed int32, width, height int, horizontalScale, verticalScale float32, sampler noise.Sampler) error {
	if width < 2 || height < 2 {
		return invalidSize("width and height must each be >= 2")
	}

	buf := make([]float32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf[x+y*width] = sampler.Sample(seed, float32(x)*horizontalScale, float32(y)*horizontalScale)
		}
	}

	h.width = width
	h.height = height
	h.buf = buf
	h.seed = seed
	h.horizontalScale = horizontalScale
	h.verticalScale = verticalScale
	return nil
}

// Width returns the grid width.
func (h *Heightfield) Width() int { return h.width }

// Height returns the grid height.
func (h *Heightfield) Height() int { return h.height }

// Dims returns (width, height).
func (h *Heightfield) Dims() (int, int) { return h.width, h.height }

// Seed returns the seed Reset was last called with.
func (h *Heightfield) Seed() int32 { return h.seed }

// HorizontalScale returns the horizontal_scale Reset was last called with.
func (h *Heightfield) HorizontalScale() float32 { return h.horizontalScale }

// VerticalScale returns the vertical_scale Reset was last called with.
// It is an external multiplier for downstream mesh generation only; the
// simulation never reads it.
func (h *Heightfield) VerticalScale() float32 { return h.verticalScale }

// Data returns a read-only view of the row-major elevation buffer.
func (h *Heightfield) Data() []float32 { return h.buf }

func (h *Heightfield) idx(x, y int) int { return x + y*h.width }

func (h *Heightfield) at(x, y int) float32 { return h.buf[h.idx(x, y)] }

// corners returns the four integer-corner heights surrounding (px, py)
// along with the integer base (ix, iy) and fractional offsets (u, v).
// Callers (Sample, the droplet simulator) are required by the spec to
// only call this with 0 <= px <= width-1 and 0 <= py <= height-1, which
// InBoundsForStep guarantees between droplet steps.
func (h *Heightfield) corners(px, py float32) (ix, iy int, u, v float32, h00, h10, h01, h11 float32) {
	ix = int(math.Floor(float64(px)))
	iy = int(math.Floor(float64(py)))
	u = px - float32(ix)
	v = py - float32(iy)

	ix1, iy1 := ix+1, iy+1
	if ix1 > h.width-1 {
		ix1 = h.width - 1
	}
	if iy1 > h.height-1 {
		iy1 = h.height - 1
	}

	h00 = h.at(ix, iy)
	h10 = h.at(ix1, iy)
	h01 = h.at(ix, iy1)
	h11 = h.at(ix1, iy1)
	return
}

// Sample bilinearly interpolates the elevation at (px, py). The caller
// must ensure 0 <= px <= width-1 and 0 <= py <= height-1; behavior is
// undefined otherwise, per spec.
func (h *Heightfield) Sample(px, py float32) float32 {
	_, _, u, v, h00, h10, h01, h11 := h.corners(px, py)
	return h00*(1-u)*(1-v) + h10*u*(1-v) + h01*(1-u)*v + h11*u*v
}

// Deposit adds amount, split across the four bilinear corners of
// (px, py) by the same weights Sample uses. No clamping: deposits may
// grow a cell without bound.
func (h *Heightfield) Deposit(px, py, amount float32) {
	if amount == 0 {
		return
	}
	ix, iy, u, v, _, _, _, _ := h.corners(px, py)
	ix1, iy1 := clampIdx(ix+1, h.width-1), clampIdx(iy+1, h.height-1)

	h.buf[h.idx(ix, iy)] += amount * (1 - u) * (1 - v)
	h.buf[h.idx(ix1, iy)] += amount * u * (1 - v)
	h.buf[h.idx(ix, iy1)] += amount * (1 - u) * v
	h.buf[h.idx(ix1, iy1)] += amount * u * v
}

// Erode removes up to amount, distributed by a triangular-falloff kernel
// of integer radius centered at the continuous point (px, py) — not at
// an integer corner. It returns the sum actually removed, which is at
// most amount (removal from any single cell never drives it negative).
//
// The kernel iterates exactly (2*radius+1)^2 candidate cells, fixing a
// sizing bug in the original implementation (it iterated the same
// inclusive range but allocated a buffer one row/column too large).
func (h *Heightfield) Erode(px, py float32, radius int, amount float32) float32 {
	if amount <= 0 {
		return 0
	}

	ix := int(math.Floor(float64(px)))
	iy := int(math.Floor(float64(py)))

	type cell struct {
		x, y   int
		weight float32
	}
	cells := make([]cell, 0, (2*radius+1)*(2*radius+1))

	var weightSum float32
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			cx, cz := ix+dx, iy+dy
			if cx < 0 || cx >= h.width || cz < 0 || cz >= h.height {
				continue
			}

			ddx := float64(cx) - float64(px)
			ddz := float64(cz) - float64(py)
			if math.Max(math.Abs(ddx), math.Abs(ddz)) > float64(radius) {
				continue
			}

			ex := float64(cx) + 0.5 - float64(px)
			ez := float64(cz) + 0.5 - float64(py)
			dist := math.Sqrt(ex*ex + ez*ez)

			w := float32(math.Max(0, float64(radius)-dist))
			if w <= 0 {
				continue
			}

			cells = append(cells, cell{x: cx, y: cz, weight: w})
			weightSum += w
		}
	}

	if weightSum <= 0 {
		return 0
	}

	var removed float32
	for _, c := range cells {
		wn := c.weight / weightSum
		idx := h.idx(c.x, c.y)
		r := amount * wn
		if r > h.buf[idx] {
			r = h.buf[idx]
		}
		h.buf[idx] -= r
		removed += r
	}
	return removed
}

// InBoundsForStep reports whether (px, py) has four valid bilinear
// corners, i.e. 0 <= px < width-1 and 0 <= py < height-1. The droplet
// simulator uses this as its termination predicate, which is what makes
// Sample/Deposit/Erode's corner access always safe.
func (h *Heightfield) InBoundsForStep(px, py float32) bool {
	return px >= 0 && px < float32(h.width-1) && py >= 0 && py < float32(h.height-1)
}

func clampIdx(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}
