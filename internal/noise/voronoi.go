package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// smoothSharpness controls how closely the log-sum-exp minimum follows F1.
const smoothSharpness = 16.0

// VoronoiMetric measures the distance from a sample to a feature point. The
// offsets point from the sample to the feature point and the returned
// derivatives are taken with respect to the sample position.
type VoronoiMetric interface {
	Distance1(x float64) Sample
	Distance2(x, z float64) Sample
	Distance3(x, y, z float64) Sample
}

// Worley is the Euclidean distance.
type Worley struct{}

func (Worley) Distance1(x float64) Sample {
	return Sample{V: math.Abs(x), DX: -sign(x)}
}

func (Worley) Distance2(x, z float64) Sample {
	d := math.Sqrt(x*x + z*z)
	if d == 0 {
		return Sample{}
	}
	return Sample{V: d, DX: -x / d, DZ: -z / d}
}

func (Worley) Distance3(x, y, z float64) Sample {
	d := math.Sqrt(x*x + y*y + z*z)
	if d == 0 {
		return Sample{}
	}
	return Sample{V: d, DX: -x / d, DY: -y / d, DZ: -z / d}
}

// Chebyshev is the largest per-axis distance. Equal axes resolve to the
// later axis.
type Chebyshev struct{}

func (Chebyshev) Distance1(x float64) Sample {
	return Worley{}.Distance1(x)
}

func (Chebyshev) Distance2(x, z float64) Sample {
	if math.Abs(x) > math.Abs(z) {
		return Sample{V: math.Abs(x), DX: -sign(x)}
	}
	return Sample{V: math.Abs(z), DZ: -sign(z)}
}

func (Chebyshev) Distance3(x, y, z float64) Sample {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case ax > ay && ax > az:
		return Sample{V: ax, DX: -sign(x)}
	case ay > az:
		return Sample{V: ay, DY: -sign(y)}
	}
	return Sample{V: az, DZ: -sign(z)}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// VoronoiData collects the nearest and second nearest distances of one scan
// plus the accumulators of a smooth minimum over every candidate.
type VoronoiData struct {
	F1, F2 Sample

	weight   float64
	weighted Sample
}

func newVoronoiData() VoronoiData {
	return VoronoiData{
		F1: Sample{V: math.Inf(1)},
		F2: Sample{V: math.Inf(1)},
	}
}

// add ranks one candidate. Ties keep the earlier candidate.
func (d *VoronoiData) add(s Sample) {
	switch {
	case s.V < d.F1.V:
		d.F2 = d.F1
		d.F1 = s
	case s.V < d.F2.V:
		d.F2 = s
	}
	w := math.Exp(-smoothSharpness * s.V)
	d.weight += w
	d.weighted = d.weighted.Add(s.Scale(w))
}

// SmoothF1 is the log-sum-exp minimum over all candidates. Its derivative is
// the weight-averaged derivative of the candidates.
func (d VoronoiData) SmoothF1() Sample {
	if d.weight <= 0 {
		return d.F1
	}
	s := d.weighted.Div(d.weight)
	s.V = -math.Log(d.weight) / smoothSharpness
	return s
}

// Ranking turns the scanned distances into a sample.
type Ranking interface {
	Evaluate(data VoronoiData) Sample
}

type (
	RankF1              struct{}
	RankF2              struct{}
	RankF2MinusF1       struct{}
	RankSmoothF1        struct{}
	RankSmoothF2MinusF1 struct{}
	RankCellAsIslands   struct{}
)

func (RankF1) Evaluate(d VoronoiData) Sample { return d.F1 }
func (RankF2) Evaluate(d VoronoiData) Sample { return d.F2 }
func (RankF2MinusF1) Evaluate(d VoronoiData) Sample { return d.F2.Sub(d.F1) }
func (RankSmoothF1) Evaluate(d VoronoiData) Sample { return d.SmoothF1() }

func (RankSmoothF2MinusF1) Evaluate(d VoronoiData) Sample {
	return Smoothstep(d.F2.Sub(d.F1))
}

// Evaluate turns the smooth F1 distance into a height field that peaks at
// the cell centres.
func (RankCellAsIslands) Evaluate(d VoronoiData) Sample {
	return Islands(d.SmoothF1())
}

// Islands returns 1-v with every derivative negated.
func Islands(s Sample) Sample {
	s = s.Neg()
	s.V += 1
	return s
}

// Voronoi1D scans the three cells around the sample along X.
type Voronoi1D struct {
	Mode    LatticeMode
	Metric  VoronoiMetric
	Ranking Ranking
}

func (n Voronoi1D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(n, positions, hash, frequency)
}

func (n Voronoi1D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := n.Mode.span(p.X(), frequency)
	data := newVoronoiData()
	for u := int32(-1); u <= 1; u++ {
		hx := h.Eat(n.Mode.step(x.p0+u, frequency))
		data.add(n.Metric.Distance1(hx.Floats01A() + float64(u) - x.g0))
	}
	return n.Ranking.Evaluate(data).ScaleDerivatives(float64(frequency))
}

// Voronoi2D scans the 3x3 cells around the sample on the X-Z plane.
type Voronoi2D struct {
	Mode    LatticeMode
	Metric  VoronoiMetric
	Ranking Ranking
}

func (n Voronoi2D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(n, positions, hash, frequency)
}

func (n Voronoi2D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := n.Mode.span(p.X(), frequency)
	z := n.Mode.span(p.Z(), frequency)
	data := newVoronoiData()
	for u := int32(-1); u <= 1; u++ {
		hx := h.Eat(n.Mode.step(x.p0+u, frequency))
		ox := float64(u) - x.g0
		for v := int32(-1); v <= 1; v++ {
			hz := hx.Eat(n.Mode.step(z.p0+v, frequency))
			oz := float64(v) - z.g0
			data.add(n.Metric.Distance2(hz.Floats01A()+ox, hz.Floats01B()+oz))
		}
	}
	return n.Ranking.Evaluate(data).ScaleDerivatives(float64(frequency))
}

// Voronoi3D scans the 3x3x3 cells around the sample.
type Voronoi3D struct {
	Mode    LatticeMode
	Metric  VoronoiMetric
	Ranking Ranking
}

func (n Voronoi3D) Noise4(positions Position4, hash Hash4, frequency int) Sample4 {
	return sampleLanes(n, positions, hash, frequency)
}

func (n Voronoi3D) sample(p mgl64.Vec3, h Hash, frequency int) Sample {
	x := n.Mode.span(p.X(), frequency)
	y := n.Mode.span(p.Y(), frequency)
	z := n.Mode.span(p.Z(), frequency)
	data := newVoronoiData()
	for u := int32(-1); u <= 1; u++ {
		hx := h.Eat(n.Mode.step(x.p0+u, frequency))
		ox := float64(u) - x.g0
		for v := int32(-1); v <= 1; v++ {
			hy := hx.Eat(n.Mode.step(y.p0+v, frequency))
			oy := float64(v) - y.g0
			for w := int32(-1); w <= 1; w++ {
				hz := hy.Eat(n.Mode.step(z.p0+w, frequency))
				oz := float64(w) - z.g0
				data.add(n.Metric.Distance3(hz.Floats01A()+ox, hz.Floats01B()+oy, hz.Floats01C()+oz))
			}
		}
	}
	return n.Ranking.Evaluate(data).ScaleDerivatives(float64(frequency))
}
