package noise

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFractalSingleOctaveIsBaseNoise(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, key := range DefaultRegistry().Keys() {
		n := mustEvaluator(t, key).Noise()
		var positions Position4
		for i := range positions {
			positions[i] = randomPosition(r, 3)
		}
		base := n.Noise4(positions, SeedHash4(12), 6)
		for _, persistence := range []float32{0, 0.5, 1} {
			settings := Settings{Seed: 12, Frequency: 6, Octaves: 1, Lacunarity: 4, Persistence: persistence}
			if got := Fractal4(n, positions, settings); got != base {
				t.Fatalf("%s persistence %g: fractal %+v, base %+v", key, persistence, got, base)
			}
		}
	}
}

func TestFractalZeroPersistenceKeepsFirstOctave(t *testing.T) {
	n := mustEvaluator(t, NewKey(CategoryPerlin, 3, false, false)).Noise()
	positions := Position4{{0.1, 0.2, 0.3}, {1, 2, 3}, {-0.5, 0.5, 0.25}, {7, -7, 0}}
	one := Settings{Seed: 3, Frequency: 2, Octaves: 1, Lacunarity: 2}
	many := one
	many.Octaves = 5

	if a, b := Fractal4(n, positions, one), Fractal4(n, positions, many); a != b {
		t.Fatalf("zero persistence changed the result: %+v vs %+v", a, b)
	}
}

func TestFractalWeightsOctaves(t *testing.T) {
	n := mustEvaluator(t, NewKey(CategoryValue, 2, false, false)).Noise()
	positions := Position4{{0.3, 0, 0.7}, {1.1, 0, -0.2}, {2.5, 0, 2.5}, {-3.3, 0, 0.9}}
	settings := Settings{Seed: 10, Frequency: 3, Octaves: 2, Lacunarity: 2, Persistence: 0.5}

	first := n.Noise4(positions, SeedHash4(10), 3)
	second := n.Noise4(positions, SeedHash4(11), 6)
	want := first.Add(second.Scale(0.5)).Div(1.5)

	got := Fractal4(n, positions, settings)
	for i := range got {
		if !closeSamples(got[i], want[i], 1e-12) {
			t.Fatalf("lane %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestFractalSeedChangesField(t *testing.T) {
	e := mustEvaluator(t, NewKey(CategorySimplex, 3, false, false))
	p := mgl64.Vec3{0.41, 0.17, -0.63}
	a := evaluateAt(e, Settings{Seed: 1, Frequency: 4, Octaves: 3, Lacunarity: 2, Persistence: 0.5}, p)
	b := evaluateAt(e, Settings{Seed: 2, Frequency: 4, Octaves: 3, Lacunarity: 2, Persistence: 0.5}, p)
	if a == b {
		t.Fatalf("different seeds produced the same sample %+v", a)
	}
}
