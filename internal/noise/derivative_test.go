package noise

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// smoothDerivatives reports whether the field of key is continuously
// differentiable almost everywhere, so central differences must agree with
// the analytic derivatives at every random point.
func smoothDerivatives(key Key) bool {
	if key.Turbulence {
		return false
	}
	if key.Category != CategoryVoronoi {
		return true
	}
	switch key.Function {
	case FunctionSmoothF1, FunctionCellAsIslands:
		return key.Distance == DistanceWorley || key.Dimensions == 1
	}
	return false
}

func centralDifference(e Evaluator, settings Settings, p mgl64.Vec3, eps float64) mgl64.Vec3 {
	var g mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		a, b := p, p
		a[axis] += eps
		b[axis] -= eps
		g[axis] = (evaluateAt(e, settings, a).V - evaluateAt(e, settings, b).V) / (2 * eps)
	}
	return g
}

func derivativesAgree(analytic, numeric mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if math.Abs(analytic[axis]-numeric[axis]) > 1e-3+1e-2*math.Abs(numeric[axis]) {
			return false
		}
	}
	return true
}

func TestDerivativesMatchFiniteDifferences(t *testing.T) {
	settings := Settings{Seed: 17, Frequency: 2, Octaves: 2, Lacunarity: 2, Persistence: 0.5}
	const points = 200

	for _, key := range DefaultRegistry().Keys() {
		e := mustEvaluator(t, key)
		r := rand.New(rand.NewSource(int64(key.Dimensions)*1000 + int64(key.Category)))
		agree := 0
		for i := 0; i < points; i++ {
			p := mgl64.Vec3{r.Float64()*4 - 2, r.Float64()*4 - 2, r.Float64()*4 - 2}
			analytic := evaluateAt(e, settings, p).Gradient()
			numeric := centralDifference(e, settings, p, 1e-5)
			if derivativesAgree(analytic, numeric) {
				agree++
			} else if smoothDerivatives(key) {
				t.Fatalf("%s at %v: analytic %v numeric %v", key, p, analytic, numeric)
			}
		}
		// Folds and hard cell borders leave creases; away from them the
		// derivatives still have to be right.
		if agree < points*8/10 {
			t.Fatalf("%s: only %d of %d points agree with finite differences", key, agree, points)
		}
	}
}

func TestUnusedAxesHaveZeroDerivatives(t *testing.T) {
	settings := DefaultSettings()
	r := rand.New(rand.NewSource(3))
	for _, key := range DefaultRegistry().Keys() {
		if key.Dimensions == 3 {
			continue
		}
		e := mustEvaluator(t, key)
		for i := 0; i < 20; i++ {
			s := evaluateAt(e, settings, randomPosition(r, 3))
			if s.DY != 0 {
				t.Fatalf("%s: DY = %f, want 0", key, s.DY)
			}
			if key.Dimensions == 1 && s.DZ != 0 {
				t.Fatalf("%s: DZ = %f, want 0", key, s.DZ)
			}
		}
	}
}

func TestProjectDerivativesFollowsRotatedDomain(t *testing.T) {
	settings := Settings{Seed: 2, Frequency: 2, Octaves: 1, Lacunarity: 2, Persistence: 0.5}
	domain := Transform{
		Translation: mgl64.Vec3{0.3, -1.2, 4},
		Rotation:    mgl64.Vec3{30, 45, 10},
		Scale:       mgl64.Vec3{1.5, 0.75, 2},
	}
	m := domain.Matrix()
	e := mustEvaluator(t, NewKey(CategoryPerlin, 3, false, false))

	at := func(p mgl64.Vec3) Sample {
		return e.Evaluate4(Position4{p, p, p, p}, settings, m)[0]
	}

	r := rand.New(rand.NewSource(11))
	const eps = 1e-6
	for i := 0; i < 50; i++ {
		p := randomPosition(r, 3)
		projected := domain.ProjectDerivatives(at(p)).Gradient()
		var numeric mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			a, b := p, p
			a[axis] += eps
			b[axis] -= eps
			numeric[axis] = (at(a).V - at(b).V) / (2 * eps)
		}
		if !derivativesAgree(projected, numeric) {
			t.Fatalf("at %v: projected %v numeric %v", p, projected, numeric)
		}
	}
}
