// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package rtin

// ExtractMesh walks em top-down from the two coarsest triangles and emits a
// deduplicated indexed mesh whose triangles all satisfy
// em.At(midpoint) <= tolerance, except at the finest (unit city-block)
// level where no further subdivision is possible.
//
// ExtractMesh mutates ts's own scratch index grid; see the package doc for
// the concurrency implications of sharing one Tileset across extractions.
// Use ExtractMeshInto to supply a private scratch grid instead.
func (ts *Tileset) ExtractMesh(em *ErrorMap, tolerance float32) (vertices []uint16, triangles []uint32) {
	return ts.extractMesh(em, tolerance, ts.index)
}

// ExtractMeshInto behaves like ExtractMesh but deduplicates vertices
// against scratchIndex instead of ts's own scratch grid. scratchIndex must
// have length ts.GridSize*ts.GridSize; pass nil to fall back to ts's own
// grid. Giving each caller its own scratchIndex allows concurrent
// extractions against the same Tileset without serializing on it.
func (ts *Tileset) ExtractMeshInto(em *ErrorMap, tolerance float32, scratchIndex []uint32) (vertices []uint16, triangles []uint32) {
	if scratchIndex == nil {
		scratchIndex = ts.index
	}
	return ts.extractMesh(em, tolerance, scratchIndex)
}

func (ts *Tileset) extractMesh(em *ErrorMap, tolerance float32, index []uint32) ([]uint16, []uint32) {
	size := ts.GridSize
	max := size - 1

	for i := range index {
		index[i] = 0
	}

	c := &meshCounter{size: size, errs: em.values, index: index, tolerance: tolerance}
	c.count(0, 0, max, max, max, 0)
	c.count(max, max, 0, 0, 0, max)

	vertices := make([]uint16, c.numVertices*2)
	triangles := make([]uint32, c.numTriangles*3)

	f := &meshFiller{size: size, errs: em.values, index: index, tolerance: tolerance, vertices: vertices, triangles: triangles}
	f.fill(0, 0, max, max, max, 0)
	f.fill(max, max, 0, 0, 0, max)

	return vertices, triangles
}

// subdivides reports whether the triangle with long edge a-b and
// right-angle vertex c must be split further, given the shared
// subdivide-or-emit decision of spec: the long edge must be longer than
// unit city-block length, and the error at its midpoint must exceed
// tolerance.
func subdivides(ax, ay, cx, cy, mx, my int, errs []float32, size int, tolerance float32) bool {
	return abs(ax-cx)+abs(ay-cy) > 1 && errs[my*size+mx] > tolerance
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type meshCounter struct {
	size         int
	errs         []float32
	index        []uint32
	tolerance    float32
	numVertices  int
	numTriangles int
}

func (c *meshCounter) count(ax, ay, bx, by, cx, cy int) {
	mx := (ax + bx) >> 1
	my := (ay + by) >> 1

	if subdivides(ax, ay, cx, cy, mx, my, c.errs, c.size, c.tolerance) {
		c.count(cx, cy, ax, ay, mx, my)
		c.count(bx, by, cx, cy, mx, my)
		return
	}

	c.mark(ax, ay)
	c.mark(bx, by)
	c.mark(cx, cy)
	c.numTriangles++
}

func (c *meshCounter) mark(x, y int) {
	idx := y*c.size + x
	if c.index[idx] == 0 {
		c.numVertices++
		c.index[idx] = uint32(c.numVertices)
	}
}

type meshFiller struct {
	size      int
	errs      []float32
	index     []uint32
	tolerance float32
	vertices  []uint16
	triangles []uint32
	triIdx    int
}

func (f *meshFiller) fill(ax, ay, bx, by, cx, cy int) {
	mx := (ax + bx) >> 1
	my := (ay + by) >> 1

	if subdivides(ax, ay, cx, cy, mx, my, f.errs, f.size, f.tolerance) {
		f.fill(cx, cy, ax, ay, mx, my)
		f.fill(bx, by, cx, cy, mx, my)
		return
	}

	a := f.index[ay*f.size+ax] - 1
	b := f.index[by*f.size+bx] - 1
	c := f.index[cy*f.size+cx] - 1

	f.vertices[2*a] = uint16(ax)
	f.vertices[2*a+1] = uint16(ay)
	f.vertices[2*b] = uint16(bx)
	f.vertices[2*b+1] = uint16(by)
	f.vertices[2*c] = uint16(cx)
	f.vertices[2*c+1] = uint16(cy)

	f.triangles[f.triIdx+0] = a
	f.triangles[f.triIdx+1] = b
	f.triangles[f.triIdx+2] = c
	f.triIdx += 3
}
