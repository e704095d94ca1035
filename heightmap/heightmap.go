// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

// Package heightmap decodes 8-bit RGB-encoded elevation rasters into the
// row-major float32 grids consumed by package rtin, backfilling the raster
// of side s into the grid of side s+1 that the RTIN tree expects.
package heightmap

import (
	"errors"
	"fmt"
	"image"
)

// ErrRasterTooSmall is returned when the source raster has fewer than one
// pixel on a side.
var ErrRasterTooSmall = errors.New("heightmap: raster must be at least 1x1")

// Encoding names a supported RGB-to-elevation packing.
type Encoding int

const (
	// Mapbox is the mapbox.terrain-rgb encoding:
	// height = (R*65536 + G*256 + B) / 10 - 10000.
	Mapbox Encoding = iota
	// Terrarium is the Mapzen Terrarium encoding:
	// height = R*256 + G + B/256 - 32768.
	Terrarium
)

// ErrUnknownEncoding is returned by Decode when passed an Encoding other
// than Mapbox or Terrarium.
var ErrUnknownEncoding = errors.New("heightmap: unknown encoding")

// Decode reads img, an s x s 8-bit RGB(A) raster, and returns a backfilled
// (s+1) x (s+1) row-major elevation grid together with its grid size.
func Decode(img image.Image, encoding Encoding) ([]float32, int, error) {
	bounds := img.Bounds()
	tileSize := bounds.Dx()
	if tileSize < 1 || bounds.Dy() < 1 {
		return nil, 0, ErrRasterTooSmall
	}

	gridSize := tileSize + 1
	terrain := make([]float32, gridSize*gridSize)

	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// image.Color.RGBA() returns 16-bit-scaled channels;
			// the wire encodings are defined over 8-bit channels.
			r8, g8, b8 := float32(r>>8), float32(g>>8), float32(b>>8)

			var h float32
			switch encoding {
			case Mapbox:
				h = (r8*65536+g8*256+b8)/10 - 10000
			case Terrarium:
				h = r8*256 + g8 + b8/256 - 32768
			default:
				return nil, 0, fmt.Errorf("%w: %d", ErrUnknownEncoding, encoding)
			}
			terrain[y*gridSize+x] = h
		}
	}

	Backfill(terrain, gridSize)
	return terrain, gridSize, nil
}

// DecodeMapbox decodes img using the mapbox.terrain-rgb encoding.
func DecodeMapbox(img image.Image) ([]float32, int, error) {
	return Decode(img, Mapbox)
}

// DecodeTerrarium decodes img using the Mapzen Terrarium encoding.
func DecodeTerrarium(img image.Image) ([]float32, int, error) {
	return Decode(img, Terrarium)
}

// Backfill normalizes the last row and column of a (s+1) x (s+1) grid
// (already decoded for the first s rows/columns) so that the (s+1)th
// column equals the sth, and the (s+1)th row equals the sth, with the
// bottom-right corner taking the sth row's sth column value.
func Backfill(terrain []float32, gridSize int) {
	for x := 0; x < gridSize-1; x++ {
		terrain[gridSize*(gridSize-1)+x] = terrain[gridSize*(gridSize-2)+x]
	}
	for y := 0; y < gridSize; y++ {
		terrain[gridSize*y+gridSize-1] = terrain[gridSize*y+gridSize-2]
	}
}
