package noise

import "math"

// Gradient computes the contribution of one lattice or simplex corner. The
// offsets are measured from the corner to the sample point, so derivatives
// are taken with respect to the sample position.
type Gradient interface {
	Evaluate1(h Hash, x float64) Sample
	Evaluate2(h Hash, x, z float64) Sample
	Evaluate3(h Hash, x, y, z float64) Sample
	// Combine post-processes the sum of all corner contributions.
	Combine(s Sample) Sample
}

// Value assigns a constant in [-1, 1] to every corner.
type Value struct{}

func (Value) Evaluate1(h Hash, x float64) Sample { return Sample{V: h.Floats01A()*2 - 1} }
func (Value) Evaluate2(h Hash, x, z float64) Sample { return Sample{V: h.Floats01A()*2 - 1} }
func (Value) Evaluate3(h Hash, x, y, z float64) Sample { return Sample{V: h.Floats01A()*2 - 1} }
func (Value) Combine(s Sample) Sample { return s }

var (
	diag = math.Sqrt(0.5)

	gradients2 = [8][2]float64{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{diag, diag}, {-diag, diag}, {diag, -diag}, {-diag, -diag},
	}

	// Cube edge directions; the last four repeat so the index is a plain mask.
	gradients3 = [16][3]float64{
		{diag, diag, 0}, {-diag, diag, 0}, {diag, -diag, 0}, {-diag, -diag, 0},
		{diag, 0, diag}, {-diag, 0, diag}, {diag, 0, -diag}, {-diag, 0, -diag},
		{0, diag, diag}, {0, -diag, diag}, {0, diag, -diag}, {0, -diag, -diag},
		{diag, diag, 0}, {-diag, diag, 0}, {0, -diag, diag}, {0, -diag, -diag},
	}
)

func line(h Hash, x float64) Sample {
	g := 1.0
	if h.Bits()&(1<<8) != 0 {
		g = -1
	}
	return Sample{V: g * x, DX: g}
}

func square(h Hash, x, z float64) Sample {
	g := gradients2[h.Bits()&7]
	return Sample{V: g[0]*x + g[1]*z, DX: g[0], DZ: g[1]}
}

func cube(h Hash, x, y, z float64) Sample {
	g := gradients3[h.Bits()&15]
	return Sample{V: g[0]*x + g[1]*y + g[2]*z, DX: g[0], DY: g[1], DZ: g[2]}
}

// Perlin is classic gradient noise: the dot product of a hashed unit
// direction with the corner offset.
type Perlin struct{}

func (Perlin) Evaluate1(h Hash, x float64) Sample { return line(h, x).Scale(2) }
func (Perlin) Evaluate2(h Hash, x, z float64) Sample { return square(h, x, z).Scale(math.Sqrt2) }
func (Perlin) Evaluate3(h Hash, x, y, z float64) Sample { return cube(h, x, y, z).Scale(math.Sqrt2) }
func (Perlin) Combine(s Sample) Sample { return s }

var (
	simplexScale1 = 64.0 / 27.0
	simplexScale2 = 5.832 / math.Sqrt2
	simplexScale3 = 1024.0 / (125.0 * math.Sqrt(3))
)

// Simplex uses the Perlin directions scaled so simplex sums stay near [-1, 1].
type Simplex struct{}

func (Simplex) Evaluate1(h Hash, x float64) Sample { return line(h, x).Scale(simplexScale1) }
func (Simplex) Evaluate2(h Hash, x, z float64) Sample { return square(h, x, z).Scale(simplexScale2) }
func (Simplex) Evaluate3(h Hash, x, y, z float64) Sample {
	return cube(h, x, y, z).Scale(simplexScale3)
}
func (Simplex) Combine(s Sample) Sample { return s }

// Turbulence folds the combined sample of its inner gradient into |v|.
type Turbulence struct {
	Inner Gradient
}

func (t Turbulence) Evaluate1(h Hash, x float64) Sample { return t.Inner.Evaluate1(h, x) }
func (t Turbulence) Evaluate2(h Hash, x, z float64) Sample { return t.Inner.Evaluate2(h, x, z) }
func (t Turbulence) Evaluate3(h Hash, x, y, z float64) Sample {
	return t.Inner.Evaluate3(h, x, y, z)
}

func (t Turbulence) Combine(s Sample) Sample {
	return Fold(t.Inner.Combine(s))
}

// Fold returns |v| with the derivatives flipped where v is negative.
func Fold(s Sample) Sample {
	if s.V < 0 {
		return s.Neg()
	}
	return s
}

// Smoothstep remaps v, clamped to [0, 1], through 3v²-2v³ and scales the
// derivatives by the remap's slope.
func Smoothstep(s Sample) Sample {
	v := math.Min(math.Max(s.V, 0), 1)
	slope := 6 * v * (1 - v)
	return Sample{
		V:  v * v * (3 - 2*v),
		DX: s.DX * slope,
		DY: s.DY * slope,
		DZ: s.DZ * slope,
	}
}
