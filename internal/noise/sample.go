package noise

import "github.com/go-gl/mathgl/mgl64"

// Sample is a noise value together with its partial derivatives.
type Sample struct {
	V  float64
	DX float64
	DY float64
	DZ float64
}

func (s Sample) Add(o Sample) Sample {
	return Sample{V: s.V + o.V, DX: s.DX + o.DX, DY: s.DY + o.DY, DZ: s.DZ + o.DZ}
}

func (s Sample) Sub(o Sample) Sample {
	return Sample{V: s.V - o.V, DX: s.DX - o.DX, DY: s.DY - o.DY, DZ: s.DZ - o.DZ}
}

func (s Sample) Scale(f float64) Sample {
	return Sample{V: s.V * f, DX: s.DX * f, DY: s.DY * f, DZ: s.DZ * f}
}

func (s Sample) Div(f float64) Sample {
	return Sample{V: s.V / f, DX: s.DX / f, DY: s.DY / f, DZ: s.DZ / f}
}

func (s Sample) Neg() Sample {
	return Sample{V: -s.V, DX: -s.DX, DY: -s.DY, DZ: -s.DZ}
}

// Lerp interpolates every component between s and o.
func (s Sample) Lerp(o Sample, t float64) Sample {
	return Sample{
		V:  lerp(s.V, o.V, t),
		DX: lerp(s.DX, o.DX, t),
		DY: lerp(s.DY, o.DY, t),
		DZ: lerp(s.DZ, o.DZ, t),
	}
}

// ScaleDerivatives multiplies only the derivatives, applying the chain rule
// for an input that was multiplied by f.
func (s Sample) ScaleDerivatives(f float64) Sample {
	s.DX *= f
	s.DY *= f
	s.DZ *= f
	return s
}

// Gradient returns the derivatives as a vector.
func (s Sample) Gradient() mgl64.Vec3 {
	return mgl64.Vec3{s.DX, s.DY, s.DZ}
}

// Sample4 is one batch of samples, one per lane.
type Sample4 [4]Sample

func (s Sample4) Add(o Sample4) Sample4 {
	for i := range s {
		s[i] = s[i].Add(o[i])
	}
	return s
}

func (s Sample4) Scale(f float64) Sample4 {
	for i := range s {
		s[i] = s[i].Scale(f)
	}
	return s
}

func (s Sample4) Div(f float64) Sample4 {
	for i := range s {
		s[i] = s[i].Div(f)
	}
	return s
}

// Position4 is one batch of sample positions.
type Position4 [4]mgl64.Vec3

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
