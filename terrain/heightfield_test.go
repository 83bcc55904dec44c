package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgeline-sim/erosion/noise"
)

func constantSampler(v float32) noise.SamplerFunc {
	return func(seed int32, x, y float32) float32 { return v }
}

func TestResetRejectsTooSmallGrid(t *testing.T) {
	var hf Heightfield
	err := hf.Reset(0, 1, 5, 1, 1, constantSampler(0.5))
	require.Error(t, err)
	var ee *ErosionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, InvalidSize, ee.Kind)
}

func TestBilinearIdentityAtIntegerCorners(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(1, 8, 8, 1, 1, noise.HashNoise{}))

	w, h := hf.Dims()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := hf.Sample(float32(x), float32(y))
			want := hf.at(x, y)
			assert.InDelta(t, want, got, 1e-5)
		}
	}
}

func TestDepositSplitsAcrossFourCorners(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(0, 4, 4, 1, 1, constantSampler(0)))

	before := make([]float32, len(hf.Data()))
	copy(before, hf.Data())

	hf.Deposit(1.5, 1.5, 4.0)

	// Symmetric position: each of the four corners should get exactly 1.0.
	assert.InDelta(t, float32(1.0), hf.at(1, 1), 1e-5)
	assert.InDelta(t, float32(1.0), hf.at(2, 1), 1e-5)
	assert.InDelta(t, float32(1.0), hf.at(1, 2), 1e-5)
	assert.InDelta(t, float32(1.0), hf.at(2, 2), 1e-5)

	var total float32
	for i, v := range hf.Data() {
		total += v - before[i]
	}
	assert.InDelta(t, float32(4.0), total, 1e-4)
}

func TestErodeNormalizesAndIsSymmetric(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(0, 101, 101, 1, 1, constantSampler(10)))

	removed := hf.Erode(50.5, 50.5, 3, 1.0)
	assert.InDelta(t, float32(1.0), removed, 1e-4)

	// Weights are measured from cell centers (cx+0.5, cz+0.5), so the
	// kernel is centered on cell (50, 50). Symmetric across x about it.
	assert.InDelta(t, hf.at(49, 50), hf.at(51, 50), 1e-5)
	assert.InDelta(t, hf.at(48, 51), hf.at(52, 51), 1e-5)
	// Symmetric across y.
	assert.InDelta(t, hf.at(50, 49), hf.at(50, 51), 1e-5)
	assert.InDelta(t, hf.at(51, 48), hf.at(51, 52), 1e-5)
}

func TestErodeNeverDrivesACellNegative(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(0, 16, 16, 1, 1, constantSampler(0.001)))

	hf.Erode(8, 8, 3, 1000.0)

	for _, v := range hf.Data() {
		assert.GreaterOrEqual(t, v, float32(0))
	}
}

func TestErodeNoOpReturnsZero(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(0, 4, 4, 1, 1, constantSampler(1)))

	removed := hf.Erode(0, 0, 1, 0)
	assert.Equal(t, float32(0), removed)
}

func TestInBoundsForStep(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(0, 4, 4, 1, 1, constantSampler(0)))

	assert.True(t, hf.InBoundsForStep(0, 0))
	assert.True(t, hf.InBoundsForStep(2.999, 2.999))
	assert.False(t, hf.InBoundsForStep(3, 0))
	assert.False(t, hf.InBoundsForStep(0, 3))
	assert.False(t, hf.InBoundsForStep(-0.001, 0))
}

func TestFinitenessAfterReset(t *testing.T) {
	var hf Heightfield
	require.NoError(t, hf.Reset(42, 32, 32, 1.5, 1, noise.HashNoise{}))
	for _, v := range hf.Data() {
		assert.True(t, isFinite32(v), "non-finite cell after reset")
	}
}
