// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "rtinmesh",
	Short: "build adaptive RTIN triangle meshes from heightmap tiles",
	Long: `rtinmesh builds a right-triangulated irregular network (RTIN) mesh
approximating a square heightmap tile within a vertical error tolerance:

  - decode a mapbox or terrarium encoded PNG tile into elevations,
  - build the per-grid-cell error map once,
  - extract an indexed triangle mesh at one or more tolerances,
  - optionally rescale vertices to a geographic bounding box,
  - write the result as a compact binary file.`,
}

// Execute adds all child commands to RootCmd and runs it. It is called by
// main.main and only needs to run once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
