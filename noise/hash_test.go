package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashNoiseDeterministic(t *testing.T) {
	var n HashNoise
	a := n.Sample(42, 3.5, 7.25)
	b := n.Sample(42, 3.5, 7.25)
	assert.Equal(t, a, b, "same (seed, x, y) must yield the same value")
}

func TestHashNoiseVariesWithSeed(t *testing.T) {
	var n HashNoise
	a := n.Sample(1, 10, 10)
	b := n.Sample(2, 10, 10)
	assert.NotEqual(t, a, b)
}

func TestHashNoiseApproximatelyUnitRange(t *testing.T) {
	var n HashNoise
	for seed := int32(0); seed < 5; seed++ {
		for x := float32(0); x < 50; x += 3.7 {
			for y := float32(0); y < 50; y += 4.1 {
				v := n.Sample(seed, x, y)
				assert.True(t, v >= -0.25 && v <= 1.25, "value %v out of expected band", v)
			}
		}
	}
}

func TestHashNoiseContinuity(t *testing.T) {
	// Adjacent samples should not jump by more than roughly 2x the max
	// per-octave amplitude contribution.
	var n HashNoise
	const step = float32(0.01)
	maxJump := float32(0)
	prev := n.Sample(7, 0, 0)
	for x := float32(0.01); x < 20; x += step {
		cur := n.Sample(7, x, 0)
		jump := float32(math.Abs(float64(cur - prev)))
		if jump > maxJump {
			maxJump = jump
		}
		prev = cur
	}
	assert.Less(t, maxJump, float32(2.0))
}

func TestHashNoisePureFunction(t *testing.T) {
	var n HashNoise
	for i := 0; i < 100; i++ {
		x, y := float32(i)*1.3, float32(i)*0.7
		assert.Equal(t, n.Sample(99, x, y), n.Sample(99, x, y))
	}
}

func TestOpenSimplexDeterministicPerInstance(t *testing.T) {
	n := NewOpenSimplexNoise(5)
	a := n.Sample(5, 2.25, 9.75)
	b := n.Sample(5, 2.25, 9.75)
	assert.Equal(t, a, b)
}

func TestPerlinNoiseDeterministicPerInstance(t *testing.T) {
	n := NewPerlinNoise(5)
	a := n.Sample(5, 2.25, 9.75)
	b := n.Sample(5, 2.25, 9.75)
	assert.Equal(t, a, b)
}
