package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/bounds/internal/config"
	"github.com/akmonengine/bounds/log"
	"github.com/akmonengine/bounds/screen"
)

func main() {
	configFile := flag.String("config", "example/simpleScene/scene.yaml", "Path to the scene file")
	seed := flag.Uint64("seed", 0, "Seed for the point sampler (default: from the scene file)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: from the scene file)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override the scene file
	cfg.Resolve(config.Flags{
		LogLevel: *logLevel,
		Seed:     *seed,
		Workers:  *workers,
	})

	logger := log.New(log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	built, err := cfg.Build(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	for _, volume := range built.World.Volumes {
		name := built.Names[volume]

		first, ok := volume.Centroid(0)
		next, nextOK := volume.NextPoint()
		center, centerOK := volume.CenterPoint()
		logger.Info("volume",
			log.String("name", name),
			log.Stringer("id", volume.ID()),
			log.Int("triangles", volume.TriangleCount()),
			log.Uint64("checksum", volume.Mesh().Checksum()),
			log.Any("centroid", screen.OrSentinel(first, ok)),
			log.Any("next", screen.OrSentinel(next, nextOK)),
			log.Any("center", screen.OrSentinel(center, centerOK)),
		)
	}

	for _, probe := range cfg.Probes {
		p := screen.Point{X: probe[0], Y: probe[1]}

		var names []string
		for _, volume := range built.World.Pick(p) {
			names = append(names, built.Names[volume])
		}
		logger.Info("probe", log.Any("point", p), log.Any("volumes", names))
	}

	visible := 0
	for _, sample := range built.World.VisiblePoints() {
		if sample.OK {
			visible++
		}
	}
	logger.Info("visible", log.Int("volumes", visible), log.Int("total", len(built.World.Volumes)))
}
