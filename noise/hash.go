package noise

// HashNoise is the spec-exact fractal value-noise generator: deterministic,
// continuous, and bit-identical across platforms because every
// intermediate value is carried in 32-bit arithmetic with wrap-on-overflow,
// never float64.
//
// The per-corner hash is a fixed linear-congruential mixer — multiplier
// 214013 (as in the classic MSVC rand()) with increment 2531001 (that
// rand() uses 2531011) — chosen for the original implementation and reproduced here
// unchanged so two independent implementations of this spec produce the
// same heightfield from the same seed.
type HashNoise struct{}

var _ Sampler = HashNoise{}

const (
	hashFrequency = float32(0.2)
	hashAmplitude = float32(4.0)
	hashOctaves   = 8
)

// Sample implements Sampler.
func (HashNoise) Sample(seed int32, x, y float32) float32 {
	fx := x/10 + 500
	fy := y/10 + 500

	ax := fx * hashFrequency
	ay := fy * hashFrequency

	amplitude := hashAmplitude
	var div, total float32

	for i := 0; i < hashOctaves; i++ {
		div += amplitude
		total += noise2D(seed, ax, ay) * amplitude

		amplitude /= 2
		ax *= 2
		ay *= 2
	}

	return total / div
}

// random2D hashes a seed and integer corner to a pseudo-random value in
// [0, 1]. All arithmetic is 32-bit signed with wrap-on-overflow: this must
// match bit-for-bit across implementations, so it never promotes to a
// wider integer type.
func random2D(seed, x, y int32) float32 {
	d := int32(214013)*(seed*7852+x*4153+y*y*6534) + 2531001
	d = (d >> 16) & 0x7FFF
	return float32(d) / 32767.0
}

func interpolate(a, b, w float32) float32 {
	return a + w*(b-a)
}

func smoothInterpolate(a, b, w float32) float32 {
	return interpolate(a, b, w*w*(3-2*w))
}

// noise2D is the per-octave lattice noise: hash the four integer corners
// surrounding (x, y) and smoothstep-interpolate between them.
func noise2D(seed int32, x, y float32) float32 {
	ix := int32(x)
	iy := int32(y)

	sx := x - float32(ix)
	sy := y - float32(iy)

	s := random2D(seed, ix, iy)
	t := random2D(seed, ix+1, iy)
	u := random2D(seed, ix, iy+1)
	v := random2D(seed, ix+1, iy+1)

	low := smoothInterpolate(s, t, sx)
	high := smoothInterpolate(u, v, sx)

	return smoothInterpolate(low, high, sy)
}
