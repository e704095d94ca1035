// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package cmd

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/flywave/go-rtin/heightmap"
)

var infoEncoding string

var infoCmd = &cobra.Command{
	Use:   "info TILE.png",
	Short: "print tileset and error-map statistics for a heightmap tile",
	Long: `Decode a heightmap tile, build its Tileset and ErrorMap, and print
grid size, triangle counts, and the mesh size at both the finest
(tolerance 0) and coarsest (tolerance >= max error) extraction, without
writing any output file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVar(&infoEncoding, "encoding", "mapbox", "elevation encoding: mapbox or terrarium")
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	encoding, err := parseEncoding(infoEncoding)
	if err != nil {
		return err
	}
	terrain, gridSize, err := heightmap.Decode(img, encoding)
	if err != nil {
		return err
	}

	ts, em, err := buildTileAndErrorMap(terrain, gridSize)
	if err != nil {
		return err
	}

	fmt.Printf("grid size:            %d\n", ts.GridSize)
	fmt.Printf("total triangles:      %d\n", ts.NumTriangles)
	fmt.Printf("parent triangles:     %d\n", ts.NumParentTriangles)
	fmt.Printf("max error:            %v\n", em.Max())

	finestV, finestT := ts.ExtractMesh(em, 0)
	fmt.Printf("mesh at tolerance 0:  %d vertices, %d triangles\n", len(finestV)/2, len(finestT)/3)

	coarsestV, coarsestT := ts.ExtractMesh(em, em.Max())
	fmt.Printf("mesh at max error:    %d vertices, %d triangles\n", len(coarsestV)/2, len(coarsestT)/3)

	return nil
}
