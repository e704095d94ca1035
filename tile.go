// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package rtin

// Tile binds one heightmap's ErrorMap to the Tileset it was built from, the
// ergonomic single-heightmap entry point into the package.
type Tile struct {
	Tileset  *Tileset
	ErrorMap *ErrorMap
}

// Mesh extracts the mesh for this tile at the given tolerance. It is
// equivalent to t.Tileset.ExtractMesh(t.ErrorMap, tolerance).
func (t *Tile) Mesh(tolerance float32) (vertices []uint16, triangles []uint32) {
	return t.Tileset.ExtractMesh(t.ErrorMap, tolerance)
}

// Update rebuilds this tile's error map against a new heightmap of the same
// size as the one it was created with.
func (t *Tile) Update(heightmap []float32) error {
	return t.ErrorMap.Rebuild(heightmap)
}
