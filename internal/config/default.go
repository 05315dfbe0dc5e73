package config

import (
	"fmt"
	"os"
	"path/filepath"

	"noisegen/internal/noise"
)

// Default returns a configuration that previews single-octave 3D Perlin noise
// so the generator can run without any prior configuration.
func Default() *Config {
	settings := noise.DefaultSettings()
	return &Config{
		Noise: NoiseConfig{
			Category:        noise.CategoryPerlin.String(),
			Dimensions:      3,
			VoronoiDistance: noise.DistanceWorley.String(),
			VoronoiFunction: noise.FunctionF1.String(),
			Seed:            settings.Seed,
			Frequency:       settings.Frequency,
			Octaves:         settings.Octaves,
			Lacunarity:      settings.Lacunarity,
			Persistence:     settings.Persistence,
		},
		Domain: DomainConfig{
			Scale: [3]float64{1, 1, 1},
		},
		Heightmap: HeightmapConfig{
			Resolution: 256,
			OutputDir:  "./previews",
			Shading:    true,
			Caption:    true,
		},
	}
}

// WriteDefault writes the default configuration to the provided path, as YAML
// or JSON depending on its extension.
func WriteDefault(path string) error {
	data, err := Default().Marshal(path)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	return nil
}
