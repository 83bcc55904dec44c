package noise

import "github.com/aquilax/go-perlin"

// PerlinNoise is a third alternate Sampler, wrapping go-perlin. Adapted
// from a world-generation geography package in the same vein as
// OpenSimplexNoise: a different stylization of noise, not a
// spec-reproducibility-bearing implementation.
type PerlinNoise struct {
	p *perlin.Perlin
}

var _ Sampler = (*PerlinNoise)(nil)

// NewPerlinNoise builds a generator seeded deterministically. alpha/beta/n
// are the library's persistence/lacunarity/octave-count knobs; the values
// below match its documented defaults.
func NewPerlinNoise(seed int32) *PerlinNoise {
	const (
		alpha = 2.0
		beta  = 2.0
		n     = 3
	)
	return &PerlinNoise{p: perlin.NewPerlin(alpha, beta, n, int64(seed))}
}

// Sample implements Sampler.
func (n *PerlinNoise) Sample(seed int32, x, y float32) float32 {
	raw := n.p.Noise2D(float64(x), float64(y)) // approximately [-1, 1]
	return float32(raw/2 + 0.5)                // rescale to approximately [0, 1]
}
