package heightmap

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"noisegen/internal/noise"
)

// Field is a square grid of samples taken on the X-Z plane, row by row along
// Z. Derivatives are with respect to plane coordinates.
type Field struct {
	Name       string
	Resolution int
	Samples    []noise.Sample
}

func newField(name string, resolution int) *Field {
	return &Field{
		Name:       name,
		Resolution: resolution,
		Samples:    make([]noise.Sample, resolution*resolution),
	}
}

// At returns the sample in column x of row z.
func (f *Field) At(x, z int) noise.Sample {
	return f.Samples[z*f.Resolution+x]
}

// Range returns the smallest and largest value in the field.
func (f *Field) Range() (lo, hi float64) {
	if len(f.Samples) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range f.Samples {
		lo = math.Min(lo, s.V)
		hi = math.Max(hi, s.V)
	}
	return lo, hi
}

// PlanePositions returns the centres of a resolution x resolution grid
// covering the unit square around the origin at y = 0.
func PlanePositions(resolution int) []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, 0, resolution*resolution)
	inv := 1 / float64(resolution)
	for z := 0; z < resolution; z++ {
		for x := 0; x < resolution; x++ {
			positions = append(positions, mgl64.Vec3{
				(float64(x)+0.5)*inv - 0.5,
				0,
				(float64(z)+0.5)*inv - 0.5,
			})
		}
	}
	return positions
}

// FromFunc samples fn over the plane grid. The field carries values only.
func FromFunc(name string, resolution int, fn func(x, z float64) float64) *Field {
	field := newField(name, resolution)
	for i, p := range PlanePositions(resolution) {
		field.Samples[i] = noise.Sample{V: fn(p.X(), p.Z())}
	}
	return field
}

// FileName turns a field name such as "perlin/3d/tiling" into a file name.
func FileName(name string) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(name) + ".png"
}
