// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// BatchConfig drives the mesh command's batch mode: one input tile, one
// set of tolerances, one output per tolerance.
type BatchConfig struct {
	Encoding   string        `yaml:"encoding"`
	Tolerances []float64     `yaml:"tolerances"`
	FlipY      bool          `yaml:"flip_y"`
	Bounds     *BoundsConfig `yaml:"bounds,omitempty"`
}

// BoundsConfig is the YAML shape of rescale.Bounds.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

func defaultBatchConfig() BatchConfig {
	return BatchConfig{
		Encoding:   "mapbox",
		Tolerances: []float64{1, 5, 20, 50, 100, 500},
	}
}

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a template batch-config file",
	Long: `Write a batch-config file in YAML format, prefilled with default
values. If FILE is not provided, 'rtinmesh.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "rtinmesh.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file %q already exists, overwrite? [y/N]", path))
		if err != nil {
			fmt.Println("aborted,", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("aborted by user")
			return
		}

		buf, err := yaml.Marshal(defaultBatchConfig())
		if err != nil {
			fmt.Println("error,", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			fmt.Println("error,", err)
			os.Exit(1)
		}
		fmt.Printf("batch config written to %q\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func loadBatchConfig(path string) (BatchConfig, error) {
	cfg := defaultBatchConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
