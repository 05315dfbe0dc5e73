package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"noisegen/internal/config"
	"noisegen/internal/noise"
)

func TestWriteKeys(t *testing.T) {
	var buf bytes.Buffer
	writeKeys(&buf, noise.DefaultRegistry())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != noise.DefaultRegistry().Len() {
		t.Fatalf("listed %d keys, want %d", len(lines), noise.DefaultRegistry().Len())
	}
	if lines[0] != "value/1d" {
		t.Fatalf("unexpected first key %q", lines[0])
	}
}

func TestRunWritesPreviews(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Category = "voronoi"
	cfg.Noise.Dimensions = 2
	cfg.Noise.VoronoiFunction = "cell-as-islands"
	cfg.Heightmap.Resolution = 12
	cfg.Heightmap.Workers = 2
	cfg.Heightmap.Baseline = "opensimplex"
	cfg.Heightmap.OutputDir = filepath.Join(t.TempDir(), "out")

	paths, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"voronoi_2d_worley_cell-as-islands.png", "baseline_opensimplex.png"}
	if len(paths) != len(want) {
		t.Fatalf("wrote %v, want %v", paths, want)
	}
	for i, path := range paths {
		if filepath.Base(path) != want[i] {
			t.Fatalf("path %d = %s, want %s", i, filepath.Base(path), want[i])
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Fatalf("preview %s missing: %v", path, err)
		}
	}
}

func TestRunRejectsUnsupportedKey(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Category = "simplex"
	cfg.Noise.Tiling = true
	cfg.Heightmap.OutputDir = t.TempDir()

	if _, err := run(context.Background(), cfg); err == nil {
		t.Fatalf("expected an error for tiling simplex noise")
	}
}
