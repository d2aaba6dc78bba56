// Package main is the cachetool command: bake, inspect, and verify
// scene collision cache files without a live scene database behind them.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/meshforge/worldcollide/collision"
	"github.com/meshforge/worldcollide/logging"
	"github.com/meshforge/worldcollide/scenecache"
)

const (
	flagOut   = "out"
	flagSize  = "size"
	flagSeed  = "seed"
	flagCell  = "cell"
	flagDebug = "debug"
)

func main() {
	var logger logging.Logger

	app := &cli.App{
		Name:  "cachetool",
		Usage: "bake, inspect, and verify scene collision caches",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = logging.NewDebugLogger("cachetool")
			} else {
				logger = logging.NewLogger("cachetool")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "bake a deterministic synthetic scene into a cache file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagOut,
						Required: true,
						Usage:    "output cache `FILE`",
					},
					&cli.IntFlag{
						Name:  flagSize,
						Value: 24,
						Usage: "number of box instances to scatter",
					},
					&cli.Int64Flag{
						Name:  flagSeed,
						Value: 1,
						Usage: "instance placement seed",
					},
					&cli.Float64Flag{
						Name:  flagCell,
						Value: 16,
						Usage: "collision grid cell size",
					},
				},
				Action: func(c *cli.Context) error {
					return runDemo(c, logger)
				},
			},
			{
				Name:      "info",
				Usage:     "print a cache file's layout and grid occupancy",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					return runInfo(c, logger)
				},
			},
			{
				Name:      "verify",
				Usage:     "structurally validate a cache file",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					return runVerify(c, logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadArg(c *cli.Context, logger logging.Logger) (*scenecache.Cache, error) {
	path := c.Args().First()
	if path == "" {
		return nil, errors.New("missing cache file argument")
	}
	return scenecache.Load(path, logger)
}

func runDemo(c *cli.Context, logger logging.Logger) error {
	sc, err := demoScene(c.Int(flagSize), c.Int64(flagSeed), logger)
	if err != nil {
		return err
	}
	eng, err := collision.NewEngine(sc, collision.DefaultConfig(), logger)
	if err != nil {
		return err
	}
	cfg := scenecache.DefaultExtractConfig()
	cfg.CellSize = c.Float64(flagCell)
	cfg.LiquidCellSize = c.Float64(flagCell)
	cache, err := scenecache.Extract(eng, cfg, logger)
	if err != nil {
		return err
	}
	out := c.String(flagOut)
	if err := cache.Save(out); err != nil {
		return err
	}
	pterm.Success.Printfln("baked %d triangles into %s", cache.TriangleCount(), out)
	return nil
}

func runInfo(c *cli.Context, logger logging.Logger) error {
	cache, err := loadArg(c, logger)
	if err != nil {
		return err
	}
	w, h := cache.GridDims()
	b := cache.Bounds()
	pterm.Info.Printfln("map %d: %d triangles, %dx%d grid at cell size %.1f",
		cache.MapID(), cache.TriangleCount(), w, h, cache.CellSize())
	pterm.Info.Printfln("bounds (%.1f, %.1f, %.1f) to (%.1f, %.1f, %.1f)",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	if lg := cache.Liquid(); lg != nil {
		lw, lh := lg.Dims()
		pterm.Info.Printfln("liquid grid %dx%d at cell size %.1f", lw, lh, lg.CellSize())
	} else {
		pterm.Info.Println("no liquid layer")
	}

	occ := cache.CellOccupancy()
	counts := make([]float64, len(occ))
	maxOcc := 0
	for i, n := range occ {
		counts[i] = float64(n)
		if n > maxOcc {
			maxOcc = n
		}
	}
	pterm.Info.Printfln("occupancy mean %.1f, stddev %.1f, max %d",
		stat.Mean(counts, nil), stat.StdDev(counts, nil), maxOcc)
	return nil
}

func runVerify(c *cli.Context, logger logging.Logger) error {
	cache, err := loadArg(c, logger)
	if err != nil {
		pterm.Error.Printfln("load: %v", err)
		return err
	}
	if err := cache.Validate(); err != nil {
		pterm.Error.Printfln("structure: %v", err)
		return err
	}
	if err := cache.VerifyGeometry(); err != nil {
		pterm.Error.Printfln("geometry: %v", err)
		return err
	}
	refs := cache.QueryTrianglesInAABB(cache.Bounds())
	if len(refs) != cache.TriangleCount() {
		pterm.Error.Printfln("full-bounds query returned %d of %d triangles",
			len(refs), cache.TriangleCount())
		return errors.New("cache verification failed")
	}
	center := cache.Bounds().Center()
	if _, ok := cache.GroundZ(center.X, center.Y, center.Z); !ok {
		pterm.Warning.Println("no ground surface under the grid center")
	}
	pterm.Success.Printfln("%s: %d triangles verified", c.Args().First(), cache.TriangleCount())
	return nil
}
