// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package quantized

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	vertices := []uint16{0, 0, 4, 4, 4, 0, 0, 4}
	triangles := []uint32{0, 1, 2, 0, 3, 1}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, vertices, triangles))

	gotVertices, gotTriangles, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, vertices, gotVertices)
	assert.Equal(t, triangles, gotTriangles)
}

func TestEncodeEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, nil))

	gotVertices, gotTriangles, err := Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, gotVertices)
	assert.Empty(t, gotTriangles)
}

func TestEncodeDecodePositionsRoundTrip(t *testing.T) {
	positions := []float64{0, 0, 1.5, 4, 4, 2.5, 4, 0, 0.5}
	triangles := []uint32{0, 1, 2}

	var buf bytes.Buffer
	require.NoError(t, EncodePositions(&buf, positions, triangles))

	gotPositions, gotTriangles, err := DecodePositions(&buf)
	require.NoError(t, err)
	assert.Equal(t, positions, gotPositions)
	assert.Equal(t, triangles, gotTriangles)
}
