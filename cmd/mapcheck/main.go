// cmd/mapcheck/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/tilemap"

	"golang.org/x/sync/errgroup"
)

// result is the outcome of generating one map.
type result struct {
	Seed      int64
	Connected bool
	Attempts  int
	Share     float64 // obstacle share of all cells
}

type report struct {
	Maps         int
	Disconnected []int64 // seeds
	MeanAttempts float64
	MeanDensity  float64
}

// survey generates n maps with seeds baseSeed..baseSeed+n-1 on at most
// workers goroutines.
func survey(ctx context.Context, cfg tilemap.Config, n, workers int, baseSeed int64) (report, error) {
	results := make([]result, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := baseSeed + int64(i)
			m := tilemap.Generate(cfg, utils.NewPRNGService(seed))
			results[i] = result{
				Seed:      seed,
				Connected: m.Connected,
				Attempts:  m.Attempts,
				Share:     float64(m.ObstacleCount()) / float64(m.Cols*m.Rows),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report{}, fmt.Errorf("survey: %w", err)
	}

	rep := report{Maps: n}
	if n == 0 {
		return rep, nil
	}
	for _, r := range results {
		if !r.Connected {
			rep.Disconnected = append(rep.Disconnected, r.Seed)
		}
		rep.MeanAttempts += float64(r.Attempts)
		rep.MeanDensity += r.Share
	}
	rep.MeanAttempts /= float64(n)
	rep.MeanDensity /= float64(n)
	return rep, nil
}

func main() {
	n := flag.Int("n", 200, "number of maps to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent generators")
	seed := flag.Int64("seed", 1, "seed of the first map")
	cols := flag.Int("cols", config.MapCols, "map width in cells")
	rows := flag.Int("rows", config.MapRows, "map height in cells")
	density := flag.Float64("density", config.ObstacleDensity, "obstacle density in [0, 0.9]")
	flag.Parse()

	if *workers < 1 {
		*workers = 1
	}
	cfg := tilemap.Config{Cols: *cols, Rows: *rows, ObstacleDensity: *density, MaxAttempts: config.MaxMapAttempts}
	rep, err := survey(context.Background(), cfg, *n, *workers, *seed)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d maps %dx%d at density %.2f: %d connected, mean attempts %.2f, mean obstacle share %.3f\n",
		rep.Maps, *cols, *rows, *density, rep.Maps-len(rep.Disconnected), rep.MeanAttempts, rep.MeanDensity)
	if len(rep.Disconnected) > 0 {
		fmt.Printf("disconnected seeds: %v\n", rep.Disconnected)
		os.Exit(1)
	}
}
