package main

import (
	"fmt"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

// Rendering constants, adapted from the teacher's isometric renderer.
const (
	renderScale = 1
	renderWidth = 800
	renderHeight = 800
	fovy = 30
	near = 0.01
	far  = 200
)

var (
	eye    = fauxgl.V(math.Pi, math.Pi, math.Pi)
	center = fauxgl.V(0, 0, 0)
	up     = fauxgl.V(0, 0, 1)
	light  = fauxgl.V(math.Pi, math.Pi, math.Pi).Normalize()
)

// renderIsometricPNG loads a PLY mesh and rasterizes an isometric-view
// PNG, adapted from the teacher's RenderTerrainIsometric: same camera
// setup and Phong shader, generalized to any vertex-colored PLY (the
// teacher baked a fixed height->color ramp into the shader input; here
// colors already live on the mesh, written in meshFromHeightfield).
func renderIsometricPNG(plyPath, outPath string) error {
	mesh, err := fauxgl.LoadPLY(plyPath)
	if err != nil {
		return fmt.Errorf("load ply: %w", err)
	}

	mesh.BiUnitCube()
	mesh.SmoothNormalsThreshold(fauxgl.Radians(30))

	context := fauxgl.NewContext(renderWidth*renderScale, renderHeight*renderScale)
	context.ClearColorBufferWith(fauxgl.HexColor("#00000000"))

	aspect := float64(renderWidth) / float64(renderHeight)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)

	context.Shader = fauxgl.NewPhongShader(matrix, light, eye)
	context.DrawMesh(mesh)

	image := context.Image()
	image = resize.Resize(renderWidth, renderHeight, image, resize.Bilinear)

	if err := fauxgl.SavePNG(outPath, image); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
