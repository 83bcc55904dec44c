package noise

import (
	"math"
	"math/rand"
)

// OpenSimplexNoise is an alternate Sampler, adapted from a simplex-noise
// generator: smoother and less grid-aligned than HashNoise, at the cost
// of not being specified to bit-reproduce across implementations — its
// permutation table is built from Go's math/rand, so it is deterministic
// only within a single implementation, not across languages.
type OpenSimplexNoise struct {
	perm [512]int
}

var _ Sampler = (*OpenSimplexNoise)(nil)

var simplexGradients = [8][2]float64{
	{1.0, 0.0}, {0.7071, 0.7071}, {0.0, 1.0}, {-0.7071, 0.7071},
	{-1.0, 0.0}, {-0.7071, -0.7071}, {0.0, -1.0}, {0.7071, -0.7071},
}

// NewOpenSimplexNoise builds a permutation table shuffled by seed.
func NewOpenSimplexNoise(seed int32) *OpenSimplexNoise {
	n := &OpenSimplexNoise{}
	r := rand.New(rand.NewSource(int64(seed)))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := 0; i < 512; i++ {
		n.perm[i] = perm[i%256]
	}
	return n
}

// Sample implements Sampler. seed is ignored beyond table construction:
// OpenSimplexNoise is stateful per-seed, built once via
// NewOpenSimplexNoise, so the Sampler call itself only needs (x, y).
func (n *OpenSimplexNoise) Sample(seed int32, x, y float32) float32 {
	const (
		f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
	)

	fx, fy := float64(x), float64(y)

	s := (fx + fy) * f2
	xs := fx + s
	ys := fy + s
	i := int(math.Floor(xs))
	j := int(math.Floor(ys))

	t := float64(i+j) * g2
	x0 := float64(i) - t
	y0 := float64(j) - t
	x0s := fx - x0
	y0s := fy - y0

	var i1, j1 int
	if x0s > y0s {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0s - float64(i1) + g2
	y1 := y0s - float64(j1) + g2
	x2 := x0s - 1.0 + 2.0*g2
	y2 := y0s - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255

	gi0 := n.perm[ii+n.perm[jj]] % 8
	gi1 := n.perm[ii+i1+n.perm[jj+j1]] % 8
	gi2 := n.perm[ii+1+n.perm[jj+1]] % 8

	var n0, n1, n2 float64
	t0 := 0.5 - x0s*x0s - y0s*y0s
	if t0 >= 0 {
		t0 *= t0
		g := simplexGradients[gi0]
		n0 = t0 * t0 * (g[0]*x0s + g[1]*y0s)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		g := simplexGradients[gi1]
		n1 = t1 * t1 * (g[0]*x1 + g[1]*y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		g := simplexGradients[gi2]
		n2 = t2 * t2 * (g[0]*x2 + g[1]*y2)
	}

	raw := 70.0 * (n0 + n1 + n2) // approximately [-1, 1]
	return float32(raw/2 + 0.5) // rescale to approximately [0, 1]
}
