// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package cmd

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/flywave/go-rtin"
	"github.com/flywave/go-rtin/heightmap"
	"github.com/flywave/go-rtin/internal/bufpool"
	"github.com/flywave/go-rtin/quantized"
	"github.com/flywave/go-rtin/rescale"
)

var (
	meshInput     string
	meshEncoding  string
	meshTolerance float64
	meshOut       string
	meshConfig    string
	meshFlipY     bool
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "extract a triangle mesh from a heightmap tile",
	Long: `Decode a heightmap tile, build its error map, and extract an
indexed triangle mesh at one or more tolerances. With --config, tolerances
and encoding come from a batch-config YAML file (see 'rtinmesh config')
and one output file is written per tolerance; otherwise --tolerance and
--encoding are used for a single extraction written to --out.`,
	RunE: runMesh,
}

func init() {
	RootCmd.AddCommand(meshCmd)

	meshCmd.Flags().StringVar(&meshInput, "input", "", "input heightmap tile PNG (required)")
	meshCmd.Flags().StringVar(&meshEncoding, "encoding", "mapbox", "elevation encoding: mapbox or terrarium")
	meshCmd.Flags().Float64Var(&meshTolerance, "tolerance", 0, "vertical error tolerance")
	meshCmd.Flags().StringVar(&meshOut, "out", "", "output mesh file (required without --config)")
	meshCmd.Flags().StringVar(&meshConfig, "config", "", "batch-config YAML file")
	meshCmd.Flags().BoolVar(&meshFlipY, "flip-y", false, "flip the Y axis of rescaled vertices")

	meshCmd.MarkFlagRequired("input")
}

func parseEncoding(name string) (heightmap.Encoding, error) {
	switch strings.ToLower(name) {
	case "mapbox":
		return heightmap.Mapbox, nil
	case "terrarium":
		return heightmap.Terrarium, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q (want mapbox or terrarium)", name)
	}
}

func runMesh(cmd *cobra.Command, args []string) error {
	f, err := os.Open(meshInput)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", meshInput, err)
	}

	if meshConfig != "" {
		cfg, err := loadBatchConfig(meshConfig)
		if err != nil {
			return fmt.Errorf("loading config %q: %w", meshConfig, err)
		}
		return runBatch(img, cfg)
	}

	if meshOut == "" {
		return fmt.Errorf("--out is required without --config")
	}

	encoding, err := parseEncoding(meshEncoding)
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

	return extractAndWrite(ts, em, terrain, gridSize, float32(meshTolerance), nil, meshFlipY, meshOut)
}

func runBatch(img image.Image, cfg BatchConfig) error {
	encoding, err := parseEncoding(cfg.Encoding)
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

	var bounds *rescale.Bounds
	if cfg.Bounds != nil {
		bounds = &rescale.Bounds{
			MinX: cfg.Bounds.MinX, MinY: cfg.Bounds.MinY,
			MaxX: cfg.Bounds.MaxX, MaxY: cfg.Bounds.MaxY,
		}
	}

	base := strings.TrimSuffix(meshOut, ".bin")
	if base == "" {
		base = strings.TrimSuffix(meshInput, ".png")
	}

	// Each tolerance is extracted against its own scratch index grid via
	// ExtractMeshInto, so the batch runs concurrently instead of
	// serializing on ts's own scratch grid.
	pool := bufpool.New(gridSize * gridSize)

	var wg sync.WaitGroup
	errs := make([]error, len(cfg.Tolerances))
	for i, tau := range cfg.Tolerances {
		wg.Add(1)
		go func(i int, tau float64) {
			defer wg.Done()
			scratch := pool.Get()
			defer pool.Put(scratch)

			out := base + "_" + strconv.FormatFloat(tau, 'g', -1, 64) + ".bin"
			vertices, triangles := ts.ExtractMeshInto(em, float32(tau), scratch)
			if err := writeMesh(vertices, triangles, terrain, gridSize, bounds, cfg.FlipY, out); err != nil {
				errs[i] = fmt.Errorf("tolerance %v: %w", tau, err)
			}
		}(i, tau)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func buildTileAndErrorMap(terrain []float32, gridSize int) (*rtin.Tileset, *rtin.ErrorMap, error) {
	ts, err := rtin.NewTileset(gridSize)
	if err != nil {
		return nil, nil, err
	}
	em, err := rtin.NewErrorMap(ts, terrain)
	if err != nil {
		return nil, nil, err
	}
	return ts, em, nil
}

func extractAndWrite(ts *rtin.Tileset, em *rtin.ErrorMap, terrain []float32, gridSize int, tolerance float32, bounds *rescale.Bounds, flipY bool, out string) error {
	vertices, triangles := ts.ExtractMesh(em, tolerance)
	return writeMesh(vertices, triangles, terrain, gridSize, bounds, flipY, out)
}

func writeMesh(vertices []uint16, triangles []uint32, terrain []float32, gridSize int, bounds *rescale.Bounds, flipY bool, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if bounds == nil && !flipY {
		if err := quantized.Encode(f, vertices, triangles); err != nil {
			return err
		}
		fmt.Printf("%s: %d vertices, %d triangles\n", out, len(vertices)/2, len(triangles)/3)
		return nil
	}

	positions := rescale.Positions(vertices, terrain, gridSize, rescale.Options{Bounds: bounds, FlipY: flipY})
	if err := quantized.EncodePositions(f, positions, triangles); err != nil {
		return err
	}
	fmt.Printf("%s: %d vertices, %d triangles (rescaled)\n", out, len(vertices)/2, len(triangles)/3)
	return nil
}
