// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package rtin

import (
	"errors"
	"testing"
)

func TestNewErrorMapRejectsWrongLength(t *testing.T) {
	ts, err := NewTileset(5)
	if err != nil {
		t.Fatal(err)
	}
	short := make([]float32, ts.GridSize*ts.GridSize-1)
	if _, err := NewErrorMap(ts, short); !errors.Is(err, ErrHeightmapSizeMismatch) {
		t.Fatalf("want ErrHeightmapSizeMismatch, got %v", err)
	}
}

func TestErrorMapConstantHeightmapIsZero(t *testing.T) {
	ts, err := NewTileset(5)
	if err != nil {
		t.Fatal(err)
	}
	h := make([]float32, ts.GridSize*ts.GridSize)
	for i := range h {
		h[i] = 42
	}
	em, err := NewErrorMap(ts, h)
	if err != nil {
		t.Fatal(err)
	}
	if max := em.Max(); max != 0 {
		t.Fatalf("Max() = %v, want 0", max)
	}
}

func TestErrorMapPeak(t *testing.T) {
	// G=3: a flat plane with a single spike at the center. The central
	// grid cell is the midpoint of both coarsest triangles' long edges,
	// so its error should be exactly 1 (the spike height).
	ts, err := NewTileset(3)
	if err != nil {
		t.Fatal(err)
	}
	h := []float32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	em, err := NewErrorMap(ts, h)
	if err != nil {
		t.Fatal(err)
	}
	if got := em.At(1, 1); got != 1 {
		t.Fatalf("At(1,1) = %v, want 1", got)
	}
}

func TestErrorMapRebuild(t *testing.T) {
	ts, err := NewTileset(3)
	if err != nil {
		t.Fatal(err)
	}
	flat := make([]float32, 9)
	em, err := NewErrorMap(ts, flat)
	if err != nil {
		t.Fatal(err)
	}
	if em.Max() != 0 {
		t.Fatalf("Max() = %v, want 0", em.Max())
	}

	spiked := []float32{0, 0, 0, 0, 1, 0, 0, 0, 0}
	if err := em.Rebuild(spiked); err != nil {
		t.Fatal(err)
	}
	if em.At(1, 1) != 1 {
		t.Fatalf("At(1,1) after rebuild = %v, want 1", em.At(1, 1))
	}

	if err := em.Rebuild(make([]float32, 3)); !errors.Is(err, ErrHeightmapSizeMismatch) {
		t.Fatalf("want ErrHeightmapSizeMismatch, got %v", err)
	}
}
