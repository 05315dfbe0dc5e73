package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	simplexFrequency2 = 1 / math.Sqrt(3)
	skew2             = (math.Sqrt(3) - 1) / 2
	unskew2           = (3 - math.Sqrt(3)) / 6
)

const (
	simplexFrequency3 = 0.6
	skew3             = 1.0 / 3.0
	unskew3           = 1.0 / 6.0
)

// Simplex1D sums the two surrounding lattice points with a (1-x²)³ falloff.
type Simplex1D struct {
	Gradient Gradient
}

func (n Simplex1D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(n, positions, hash, frequency)
}

func (n Simplex1D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := p.X() * float64(frequency)
	x0 := int32(math.Floor(x))
	x1 := x0 + 1
	s := n.kernel(h.Eat(x0), x0, x).Add(n.kernel(h.Eat(x1), x1, x))
	return n.Gradient.Combine(s.ScaleDerivatives(float64(frequency)))
}

func (n Simplex1D) kernel(h Hash, lx int32, px float64) Sample {
	x := px - float64(lx)
	f := 1 - x*x
	if f <= 0 {
		return Sample{}
	}
	g := n.Gradient.Evaluate1(h, x)
	return Sample{
		V:  f * f * f * g.V,
		DX: f * f * (f*g.DX - 6*x*g.V),
	}
}

// Simplex2D evaluates triangle simplices on the X-Z plane.
type Simplex2D struct {
	Gradient Gradient
}

func (n Simplex2D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(n, positions, hash, frequency)
}

func (n Simplex2D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	scale := float64(frequency) * simplexFrequency2
	px, pz := p.X()*scale, p.Z()*scale
	skew := (px + pz) * skew2
	sx, sz := px+skew, pz+skew

	fx, fz := math.Floor(sx), math.Floor(sz)
	x0, z0 := int32(fx), int32(fz)
	x1, z1 := x0+1, z0+1

	// The third corner depends on which half of the skewed cell holds the point.
	xc, zc := x0, z1
	h0, h1 := h.Eat(x0), h.Eat(x1)
	hc := h0
	if sx-fx > sz-fz {
		xc, zc = x1, z0
		hc = h1
	}

	s := n.kernel(h0.Eat(z0), x0, z0, px, pz).
		Add(n.kernel(h1.Eat(z1), x1, z1, px, pz)).
		Add(n.kernel(hc.Eat(zc), xc, zc, px, pz))
	return n.Gradient.Combine(s.ScaleDerivatives(scale))
}

func (n Simplex2D) kernel(h Hash, lx, lz int32, px, pz float64) Sample {
	unskew := float64(lx+lz) * unskew2
	x := px - float64(lx) + unskew
	z := pz - float64(lz) + unskew
	f := 0.5 - x*x - z*z
	if f < 0 {
		return Sample{}
	}
	g := n.Gradient.Evaluate2(h, x, z)
	return Sample{
		V:  f * g.V,
		DX: f*g.DX - 6*x*g.V,
		DZ: f*g.DZ - 6*z*g.V,
	}.Scale(f * f * 8)
}

// Simplex3D evaluates tetrahedral simplices.
type Simplex3D struct {
	Gradient Gradient
}

func (n Simplex3D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(n, positions, hash, frequency)
}

func (n Simplex3D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	scale := float64(frequency) * simplexFrequency3
	pos := p.Mul(scale)
	skew := (pos[0] + pos[1] + pos[2]) * skew3
	sx, sy, sz := pos[0]+skew, pos[1]+skew, pos[2]+skew

	fx, fy, fz := math.Floor(sx), math.Floor(sy), math.Floor(sz)
	x0, y0, z0 := int32(fx), int32(fy), int32(fz)
	x1, y1, z1 := x0+1, y0+1, z0+1

	// Ordering of the fractional parts selects one of six tetrahedra.
	xGy := sx-fx > sy-fy
	xGz := sx-fx > sz-fz
	yGz := sy-fy > sz-fz

	xA := xGy && xGz
	xB := xGy || (xGz && yGz)
	yA := !xGy && yGz
	yB := !xGy || (xGz && yGz)
	zA := (xGy && !xGz) || (!xGy && !yGz)
	zB := !(xGz && yGz)

	h0, h1 := h.Eat(x0), h.Eat(x1)
	hA, hB := h0, h0
	if xA {
		hA = h1
	}
	if xB {
		hB = h1
	}
	xCA, yCA, zCA := pick(x0, x1, xA), pick(y0, y1, yA), pick(z0, z1, zA)
	xCB, yCB, zCB := pick(x0, x1, xB), pick(y0, y1, yB), pick(z0, z1, zB)

	s := n.kernel(h0.Eat(y0).Eat(z0), x0, y0, z0, pos).
		Add(n.kernel(h1.Eat(y1).Eat(z1), x1, y1, z1, pos)).
		Add(n.kernel(hA.Eat(yCA).Eat(zCA), xCA, yCA, zCA, pos)).
		Add(n.kernel(hB.Eat(yCB).Eat(zCB), xCB, yCB, zCB, pos))
	return n.Gradient.Combine(s.ScaleDerivatives(scale))
}

func (n Simplex3D) kernel(h Hash, lx, ly, lz int32, pos mgl64.Vec3) Sample {
	unskew := float64(lx+ly+lz) * unskew3
	x := pos[0] - float64(lx) + unskew
	y := pos[1] - float64(ly) + unskew
	z := pos[2] - float64(lz) + unskew
	f := 0.5 - x*x - y*y - z*z
	if f < 0 {
		return Sample{}
	}
	g := n.Gradient.Evaluate3(h, x, y, z)
	return Sample{
		V:  f * g.V,
		DX: f*g.DX - 6*x*g.V,
		DY: f*g.DY - 6*y*g.V,
		DZ: f*g.DZ - 6*z*g.V,
	}.Scale(f * f * 8)
}

func pick(a, b int32, useB bool) int32 {
	if useB {
		return b
	}
	return a
}
