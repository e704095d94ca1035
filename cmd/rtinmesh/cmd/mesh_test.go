// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flywave/go-rtin/heightmap"
)

func TestParseEncoding(t *testing.T) {
	enc, err := parseEncoding("mapbox")
	require.NoError(t, err)
	assert.Equal(t, heightmap.Mapbox, enc)

	enc, err = parseEncoding("Terrarium")
	require.NoError(t, err)
	assert.Equal(t, heightmap.Terrarium, enc)

	_, err = parseEncoding("bogus")
	assert.Error(t, err)
}
