// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package rtin

import "errors"

// ErrInvalidGridSize is returned by NewTileset when the grid size is not
// 2^n+1 for some n >= 1.
var ErrInvalidGridSize = errors.New("rtin: grid size must be 2^n + 1")

// ErrHeightmapSizeMismatch is returned when a heightmap's length does not
// equal GridSize*GridSize for the Tileset it is bound to.
var ErrHeightmapSizeMismatch = errors.New("rtin: heightmap size mismatch")
