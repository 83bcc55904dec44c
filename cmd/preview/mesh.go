package main

import (
	"bufio"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/ridgeline-sim/erosion/terrain"
)

// colorForHeight maps a normalized [0, 1] elevation to a terrain color,
// adapted from the teacher's ColorFromValue (which operated on a
// [-1, 1] value; downstream of an eroded Heightfield, elevations are
// normalized to [0, 1] by normalizeHeights first).
func colorForHeight(normalized float64) color.RGBA {
	return color.RGBA{
		R: uint8(255 * (1 - normalized)),
		G: uint8(255 * (1 - math.Abs(normalized-0.5)*2)),
		B: uint8(255 * normalized),
		A: 255,
	}
}

// normalizeHeights rescales data to [0, 1] using its own min/max, so a
// freshly-eroded field (whose range is whatever the noise and erosion
// left it at) gets a stable color ramp.
func normalizeHeights(data []float32) (normalized []float64, lo, hi float32) {
	lo, hi = data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	normalized = make([]float64, len(data))
	for i, v := range data {
		if span == 0 {
			normalized[i] = 0.5
			continue
		}
		normalized[i] = float64((v - lo) / span)
	}
	return normalized, lo, hi
}

// meshFromHeightfield builds PLY vertex/face records from field,
// adapted from the teacher's GenerateVertices/GenerateFaces, which
// walked a [][]float64 heightmap directly; this walks
// Heightfield.Data()/Dims() instead.
func meshFromHeightfield(field *terrain.Heightfield) (vertices []string, colors []color.RGBA, faces []string) {
	w, h := field.Dims()
	data := field.Data()
	normalized, _, _ := normalizeHeights(data)

	vertices = make([]string, 0, w*h)
	colors = make([]color.RGBA, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := x + y*w
			z := float64(data[i]) * float64(field.VerticalScale())
			vertices = append(vertices, fmt.Sprintf("%d %d %.4f", x, y, z))
			colors = append(colors, colorForHeight(normalized[i]))
		}
	}

	faces = make([]string, 0, (w-1)*(h-1)*2)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			idx := y*w + x
			faces = append(faces,
				fmt.Sprintf("3 %d %d %d", idx, idx+1, idx+w),
				fmt.Sprintf("3 %d %d %d", idx+1, idx+w+1, idx+w),
			)
		}
	}
	return vertices, colors, faces
}

// savePLY writes an ASCII PLY mesh, adapted from the teacher's SavePLY.
func savePLY(filename string, vertices, faces []string, colors []color.RGBA) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create ply file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	fmt.Fprintf(w, "ply\n")
	fmt.Fprintf(w, "format ascii 1.0\n")
	fmt.Fprintf(w, "element vertex %d\n", len(vertices))
	fmt.Fprintf(w, "property float x\n")
	fmt.Fprintf(w, "property float y\n")
	fmt.Fprintf(w, "property float z\n")
	fmt.Fprintf(w, "property uchar red\n")
	fmt.Fprintf(w, "property uchar green\n")
	fmt.Fprintf(w, "property uchar blue\n")
	fmt.Fprintf(w, "element face %d\n", len(faces))
	fmt.Fprintf(w, "property list uchar int vertex_indices\n")
	fmt.Fprintf(w, "end_header\n")

	for i, v := range vertices {
		c := colors[i]
		fmt.Fprintf(w, "%s %d %d %d\n", v, c.R, c.G, c.B)
	}
	for _, f := range faces {
		fmt.Fprintln(w, f)
	}
	return nil
}
