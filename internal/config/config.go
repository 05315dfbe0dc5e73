package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"noisegen/internal/noise"
)

// Config captures everything needed to evaluate one noise configuration and
// render it as a heightmap preview.
type Config struct {
	Noise     NoiseConfig     `json:"noise" yaml:"noise"`
	Domain    DomainConfig    `json:"domain" yaml:"domain"`
	Heightmap HeightmapConfig `json:"heightmap" yaml:"heightmap"`
}

type NoiseConfig struct {
	Category        string  `json:"category" yaml:"category"`                // value, perlin, voronoi, simplex, simplex-value
	Dimensions      int     `json:"dimensions" yaml:"dimensions"`            // 1, 2 or 3
	Tiling          bool    `json:"tiling" yaml:"tiling"`                    // lattice and voronoi only
	Turbulence      bool    `json:"turbulence" yaml:"turbulence"`            // not available for voronoi
	VoronoiDistance string  `json:"voronoiDistance" yaml:"voronoi_distance"` // worley or chebyshev
	VoronoiFunction string  `json:"voronoiFunction" yaml:"voronoi_function"` // f1, f2, f2-f1, smooth-f1, smooth-f2-f1, cell-as-islands
	Seed            int32   `json:"seed" yaml:"seed"`
	Frequency       int32   `json:"frequency" yaml:"frequency"`
	Octaves         int32   `json:"octaves" yaml:"octaves"`
	Lacunarity      int32   `json:"lacunarity" yaml:"lacunarity"`
	Persistence     float32 `json:"persistence" yaml:"persistence"`
}

// DomainConfig places the sampled domain. Rotation is in degrees.
type DomainConfig struct {
	Translation [3]float64 `json:"translation" yaml:"translation"`
	Rotation    [3]float64 `json:"rotation" yaml:"rotation"`
	Scale       [3]float64 `json:"scale" yaml:"scale"`
}

type HeightmapConfig struct {
	Resolution int    `json:"resolution" yaml:"resolution"` // samples per side
	Workers    int    `json:"workers" yaml:"workers"`       // 0 uses every CPU
	OutputDir  string `json:"outputDir" yaml:"output_dir"`
	Shading    bool   `json:"shading" yaml:"shading"`   // hillshade from the derivatives
	Caption    bool   `json:"caption" yaml:"caption"`   // draw the key onto the preview
	Baseline   string `json:"baseline" yaml:"baseline"` // "", opensimplex or perlin
}

// Load reads configuration from a JSON or YAML file, chosen by extension. An
// empty path returns defaults; fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration in the format implied by path.
func (c *Config) Marshal(path string) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(c)
	}
	return json.MarshalIndent(c, "", "  ")
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (c *Config) Validate() error {
	n := c.Noise
	if _, err := noise.ParseCategory(n.Category); err != nil {
		return fmt.Errorf("noise.category: %w", err)
	}
	if n.Dimensions < 1 || n.Dimensions > 3 {
		return errors.New("noise.dimensions must be 1, 2 or 3")
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	key, err := c.Key()
	if err != nil {
		return err
	}
	if _, err := noise.DefaultRegistry().Lookup(key); err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	for i, s := range c.Domain.Scale {
		if s == 0 {
			return fmt.Errorf("domain.scale[%d] cannot be zero", i)
		}
	}
	if c.Heightmap.Resolution <= 0 {
		return errors.New("heightmap.resolution must be positive")
	}
	if c.Heightmap.Workers < 0 {
		return errors.New("heightmap.workers cannot be negative")
	}
	switch c.Heightmap.Baseline {
	case "", "opensimplex", "perlin":
	default:
		return fmt.Errorf("heightmap.baseline %q must be empty, opensimplex or perlin", c.Heightmap.Baseline)
	}
	return nil
}

// Key resolves the configured names into a registry key. The Voronoi knobs
// are ignored for every other category.
func (c *Config) Key() (noise.Key, error) {
	n := c.Noise
	category, err := noise.ParseCategory(n.Category)
	if err != nil {
		return noise.Key{}, fmt.Errorf("noise.category: %w", err)
	}
	if category != noise.CategoryVoronoi {
		return noise.NewKey(category, n.Dimensions, n.Tiling, n.Turbulence), nil
	}

	distance, err := noise.ParseVoronoiDistance(n.VoronoiDistance)
	if err != nil {
		return noise.Key{}, fmt.Errorf("noise.voronoiDistance: %w", err)
	}
	function, err := noise.ParseVoronoiFunction(n.VoronoiFunction)
	if err != nil {
		return noise.Key{}, fmt.Errorf("noise.voronoiFunction: %w", err)
	}
	key := noise.NewVoronoiKey(n.Dimensions, n.Tiling, distance, function)
	// Kept so the registry rejects it instead of silently dropping it.
	key.Turbulence = n.Turbulence
	return key, nil
}

func (c *Config) Settings() noise.Settings {
	return noise.Settings{
		Seed:        c.Noise.Seed,
		Frequency:   c.Noise.Frequency,
		Octaves:     c.Noise.Octaves,
		Lacunarity:  c.Noise.Lacunarity,
		Persistence: c.Noise.Persistence,
	}
}

func (c *Config) Transform() noise.Transform {
	return noise.Transform{
		Translation: mgl64.Vec3(c.Domain.Translation),
		Rotation:    mgl64.Vec3(c.Domain.Rotation),
		Scale:       mgl64.Vec3(c.Domain.Scale),
	}
}
