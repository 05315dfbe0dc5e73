// Package baseline wraps off-the-shelf 2D noise libraries so their output can
// be previewed next to the engine's own fields.
package baseline

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a scalar field over the X-Z plane.
type Source interface {
	Name() string
	Value(x, z float64) float64
}

// New returns the named source. frequency scales the input like the
// engine's frequency setting does.
func New(name string, seed int64, frequency float64) (Source, error) {
	switch name {
	case "opensimplex":
		return &openSimplexSource{noise: opensimplex.New(seed), frequency: frequency}, nil
	case "perlin":
		return &perlinSource{noise: perlin.NewPerlin(2, 2, 3, seed), frequency: frequency}, nil
	}
	return nil, fmt.Errorf("unknown baseline source %q", name)
}

type openSimplexSource struct {
	noise     opensimplex.Noise
	frequency float64
}

func (s *openSimplexSource) Name() string { return "opensimplex" }

// Value is in [-1, 1].
func (s *openSimplexSource) Value(x, z float64) float64 {
	return s.noise.Eval2(x*s.frequency, z*s.frequency)
}

type perlinSource struct {
	noise     *perlin.Perlin
	frequency float64
}

func (s *perlinSource) Name() string { return "perlin" }

func (s *perlinSource) Value(x, z float64) float64 {
	return s.noise.Noise2D(x*s.frequency, z*s.frequency)
}
