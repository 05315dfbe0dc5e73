package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"noisegen/internal/baseline"
	"noisegen/internal/config"
	"noisegen/internal/heightmap"
	"noisegen/internal/noise"
)

func main() {
	var (
		cfgPath    string
		outDir     string
		resolution int
		list       bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to noise configuration file (.json, .yaml)")
	flag.StringVar(&outDir, "out", "", "directory for preview images (overrides heightmap.outputDir)")
	flag.IntVar(&resolution, "resolution", 0, "samples per preview side (overrides heightmap.resolution)")
	flag.BoolVar(&list, "list", false, "print every supported noise configuration and exit")
	flag.Parse()

	if list {
		writeKeys(os.Stdout, noise.DefaultRegistry())
		return
	}

	if _, err := writeConfigFromEnv(cfgPath); err != nil {
		log.Fatalf("sync config: %v", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if outDir != "" {
		cfg.Heightmap.OutputDir = outDir
	}
	if resolution > 0 {
		cfg.Heightmap.Resolution = resolution
	}

	ctx, cancel := signalContext()
	defer cancel()

	paths, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("generate previews: %v", err)
	}
	for _, path := range paths {
		log.Printf("wrote %s", path)
	}
}

// run generates the configured preview and, when requested, a baseline
// preview next to it. It returns the written paths.
func run(ctx context.Context, cfg *config.Config) ([]string, error) {
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	evaluator, err := noise.DefaultRegistry().Lookup(key)
	if err != nil {
		return nil, err
	}
	gen, err := heightmap.NewGenerator(evaluator, cfg.Settings(), cfg.Transform(), cfg.Heightmap.Workers)
	if err != nil {
		return nil, err
	}

	field, err := gen.Generate(ctx, key.String(), cfg.Heightmap.Resolution)
	if err != nil {
		return nil, err
	}
	opts := heightmap.PreviewOptions{Shading: cfg.Heightmap.Shading, Caption: cfg.Heightmap.Caption}
	path := filepath.Join(cfg.Heightmap.OutputDir, heightmap.FileName(field.Name))
	if err := heightmap.SavePNG(field, path, opts); err != nil {
		return nil, err
	}
	paths := []string{path}

	if cfg.Heightmap.Baseline == "" {
		return paths, nil
	}
	src, err := baseline.New(cfg.Heightmap.Baseline, int64(cfg.Noise.Seed), float64(cfg.Noise.Frequency))
	if err != nil {
		return nil, err
	}
	// Baselines carry no derivatives, so they are never shaded.
	reference := heightmap.FromFunc("baseline/"+src.Name(), cfg.Heightmap.Resolution, src.Value)
	path = filepath.Join(cfg.Heightmap.OutputDir, heightmap.FileName(reference.Name))
	if err := heightmap.SavePNG(reference, path, heightmap.PreviewOptions{Caption: cfg.Heightmap.Caption}); err != nil {
		return nil, err
	}
	return append(paths, path), nil
}

func writeKeys(w io.Writer, registry *noise.Registry) {
	for _, key := range registry.Keys() {
		fmt.Fprintln(w, key)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
			return
		}

		// Ensure the process terminates if shutdown stalls.
		time.AfterFunc(10*time.Second, func() {
			log.Printf("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	return ctx, cancel
}
