package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// latticeSpan brackets one scaled coordinate between two lattice points.
type latticeSpan struct {
	p0, p1 int32
	// g0 and g1 are the offsets from p0 and p1 to the coordinate.
	g0, g1 float64
	// t is the quintic blend weight, dt its derivative.
	t, dt float64
}

// LatticeMode decides how integer lattice coordinates are addressed.
type LatticeMode interface {
	span(coordinate float64, frequency int) latticeSpan
	// step maps p0±1 of a span back into the addressable range.
	step(point int32, frequency int) int32
}

// LatticeNormal addresses an unbounded lattice.
type LatticeNormal struct{}

// LatticeTiling wraps lattice coordinates with a period equal to the
// frequency, so the field repeats every unit of input.
type LatticeTiling struct{}

func newSpan(coordinate, points float64) latticeSpan {
	t := coordinate - points
	return latticeSpan{
		g0: t,
		g1: t - 1,
		t:  t * t * t * (t*(t*6-15) + 10),
		dt: t * t * 30 * (t*t - 2*t + 1),
	}
}

func (LatticeNormal) span(coordinate float64, frequency int) latticeSpan {
	coordinate *= float64(frequency)
	points := math.Floor(coordinate)
	s := newSpan(coordinate, points)
	s.p0 = int32(points)
	s.p1 = s.p0 + 1
	return s
}

func (LatticeNormal) step(point int32, frequency int) int32 {
	return point
}

func (LatticeTiling) span(coordinate float64, frequency int) latticeSpan {
	coordinate *= float64(frequency)
	points := math.Floor(coordinate)
	s := newSpan(coordinate, points)
	period := int64(frequency)
	p0 := int64(points) % period
	if p0 < 0 {
		p0 += period
	}
	s.p0 = int32(p0)
	s.p1 = s.p0 + 1
	if int64(s.p1) == period {
		s.p1 = 0
	}
	return s
}

func (LatticeTiling) step(point int32, frequency int) int32 {
	switch {
	case point == int32(frequency):
		return 0
	case point == -1:
		return int32(frequency) - 1
	}
	return point
}

// blend interpolates two samples along one axis and adds the derivative of
// the weight to that axis.
func blend(a, b Sample, t, dt float64, axis int) Sample {
	s := a.Lerp(b, t)
	d := (b.V - a.V) * dt
	switch axis {
	case 0:
		s.DX += d
	case 1:
		s.DY += d
	default:
		s.DZ += d
	}
	return s
}

// Lattice1D interpolates corner contributions along X.
type Lattice1D struct {
	Mode     LatticeMode
	Gradient Gradient
}

func (l Lattice1D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(l, positions, hash, frequency)
}

func (l Lattice1D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := l.Mode.span(p.X(), frequency)
	a := l.Gradient.Evaluate1(h.Eat(x.p0), x.g0)
	b := l.Gradient.Evaluate1(h.Eat(x.p1), x.g1)
	s := blend(a, b, x.t, x.dt, 0)
	return l.Gradient.Combine(s.ScaleDerivatives(float64(frequency)))
}

// Lattice2D interpolates corner contributions on the X-Z plane.
type Lattice2D struct {
	Mode     LatticeMode
	Gradient Gradient
}

func (l Lattice2D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(l, positions, hash, frequency)
}

func (l Lattice2D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := l.Mode.span(p.X(), frequency)
	z := l.Mode.span(p.Z(), frequency)
	h0, h1 := h.Eat(x.p0), h.Eat(x.p1)
	g := l.Gradient

	a := g.Evaluate2(h0.Eat(z.p0), x.g0, z.g0)
	b := g.Evaluate2(h0.Eat(z.p1), x.g0, z.g1)
	c := g.Evaluate2(h1.Eat(z.p0), x.g1, z.g0)
	d := g.Evaluate2(h1.Eat(z.p1), x.g1, z.g1)

	s := blend(blend(a, b, z.t, z.dt, 2), blend(c, d, z.t, z.dt, 2), x.t, x.dt, 0)
	return g.Combine(s.ScaleDerivatives(float64(frequency)))
}

// Lattice3D interpolates the eight corners of a cube.
type Lattice3D struct {
	Mode     LatticeMode
	Gradient Gradient
}

func (l Lattice3D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(l, positions, hash, frequency)
}

func (l Lattice3D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := l.Mode.span(p.X(), frequency)
	y := l.Mode.span(p.Y(), frequency)
	z := l.Mode.span(p.Z(), frequency)
	h0, h1 := h.Eat(x.p0), h.Eat(x.p1)
	h00, h01 := h0.Eat(y.p0), h0.Eat(y.p1)
	h10, h11 := h1.Eat(y.p0), h1.Eat(y.p1)
	g := l.Gradient

	edge := func(hy Hash, gx, gy float64) Sample {
		return blend(
			g.Evaluate3(hy.Eat(z.p0), gx, gy, z.g0),
			g.Evaluate3(hy.Eat(z.p1), gx, gy, z.g1),
			z.t, z.dt, 2,
		)
	}

	s := blend(
		blend(edge(h00, x.g0, y.g0), edge(h01, x.g0, y.g1), y.t, y.dt, 1),
		blend(edge(h10, x.g1, y.g0), edge(h11, x.g1, y.g1), y.t, y.dt, 1),
		x.t, x.dt, 0,
	)
	return g.Combine(s.ScaleDerivatives(float64(frequency)))
}
