// Command preview is a downstream consumer of the core simulation: it
// generates a heightfield, erodes it, and turns the result into a mesh
// preview — the one thing spec.md names as a legitimate consumer of
// Heightfield.Data()/Dims() ("downstream consumers read the Heightfield
// to produce a mesh"). It is not part of the simulation's public
// contract; the engine itself needs no CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ridgeline-sim/erosion/noise"
	"github.com/ridgeline-sim/erosion/terrain"
	"github.com/ridgeline-sim/erosion/terrain/telemetry"
)

func main() {
	var (
		size     = flag.Int("size", 256, "grid width/height")
		seed     = flag.Int64("seed", 0, "noise and droplet seed")
		droplets = flag.Int("droplets", 200000, "number of erosion droplets")
		batch    = flag.Int("batch", 5000, "droplets per RunBatch call")
		scale    = flag.Float64("scale", 40, "horizontal noise scale")
		provider = flag.String("noise", "hash", "hash | simplex | perlin")
		outDir   = flag.String("out", "preview_out", "output directory")
	)
	flag.Parse()

	if err := run(*size, *seed, *droplets, *batch, *scale, *provider, *outDir); err != nil {
		log.Fatal(err)
	}
}

func run(size int, seed int64, droplets, batchSize int, scale float64, providerName, outDir string) error {
	sampler, err := pickSampler(providerName, int32(seed))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var field terrain.Heightfield
	if err := field.Reset(int32(seed), size, size, float32(scale), 48, sampler); err != nil {
		return fmt.Errorf("reset heightfield: %w", err)
	}

	params := terrain.DefaultErosionParameters()
	rng := terrain.NewXorshiftRNG(seed)
	logger := telemetry.NewStderrAdapter()

	ctx := context.Background()
	remaining := droplets
	for remaining > 0 {
		n := batchSize
		if n > remaining {
			n = remaining
		}
		if _, err := terrain.RunBatch(ctx, &field, params, rng, n, logger); err != nil {
			return fmt.Errorf("run batch: %w", err)
		}
		remaining -= n
	}

	vertices, colors, faces := meshFromHeightfield(&field)
	plyPath := filepath.Join(outDir, "terrain.ply")
	if err := savePLY(plyPath, vertices, faces, colors); err != nil {
		return err
	}

	pngPath := filepath.Join(outDir, "terrain.png")
	if err := renderIsometricPNG(plyPath, pngPath); err != nil {
		return err
	}

	fmt.Printf("wrote %s and %s\n", plyPath, pngPath)
	return nil
}

func pickSampler(name string, seed int32) (noise.Sampler, error) {
	var base noise.Sampler
	switch name {
	case "hash":
		base = noise.HashNoise{}
	case "simplex":
		base = noise.NewOpenSimplexNoise(seed)
	case "perlin":
		base = noise.NewPerlinNoise(seed)
	default:
		return nil, fmt.Errorf("unknown noise provider %q", name)
	}
	return shapedSampler{inner: base, curve: func(h float64) float64 { return plateau(h*2-1, 0.6)/2 + 0.5 }}, nil
}
