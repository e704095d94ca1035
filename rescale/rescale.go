// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

// Package rescale turns the flat (x, y) vertex pairs emitted by package
// rtin into (x', y', z) triples, optionally rescaling the planar
// coordinates to a geographic bounding box and sampling elevation from the
// source heightmap.
package rescale

// Bounds is a geographic (or otherwise world-space) axis-aligned
// rectangle that grid coordinates [0, gridSize-1] are linearly mapped
// onto.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Options controls Positions' rescale behavior.
type Options struct {
	// Bounds, if non-nil, causes planar coordinates to be linearly
	// rescaled from grid space to this rectangle. If nil, raw grid
	// coordinates are returned unchanged.
	Bounds *Bounds
	// FlipY inverts the Y axis (grid row 0 maps to the top of the
	// output range) before any rescale is applied.
	FlipY bool
}

// Positions converts vertices (flat (x, y) uint16 pairs as emitted by
// rtin.ExtractMesh) into flat (x', y', z) float64 triples. z is always
// sampled from heightmap at (x, y) (column, row order). gridSize must be
// the grid size the heightmap and vertices were produced with.
func Positions(vertices []uint16, heightmap []float32, gridSize int, opts Options) []float64 {
	n := len(vertices) / 2
	out := make([]float64, n*3)

	for i := 0; i < n; i++ {
		x := int(vertices[2*i])
		y := int(vertices[2*i+1])

		fx, fy := float64(x), float64(y)
		if opts.FlipY {
			fy = float64(gridSize-1) - fy
		}

		if opts.Bounds != nil {
			b := opts.Bounds
			span := float64(gridSize - 1)
			fx = b.MinX + fx/span*(b.MaxX-b.MinX)
			fy = b.MinY + fy/span*(b.MaxY-b.MinY)
		}

		out[3*i+0] = fx
		out[3*i+1] = fy
		out[3*i+2] = float64(heightmap[y*gridSize+x])
	}

	return out
}
