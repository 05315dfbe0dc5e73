package baseline

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewSources(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{name: "opensimplex", ok: true},
		{name: "perlin", ok: true},
		{name: "worley"},
		{name: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(tt.name, 7, 4)
			if !tt.ok {
				if err == nil {
					t.Fatalf("expected an error for %q", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("new source: %v", err)
			}
			if src.Name() != tt.name {
				t.Fatalf("source name %q, want %q", src.Name(), tt.name)
			}
		})
	}
}

func TestSourcesAreDeterministic(t *testing.T) {
	for _, name := range []string{"opensimplex", "perlin"} {
		a, _ := New(name, 42, 4)
		b, _ := New(name, 42, 4)
		other, _ := New(name, 43, 4)

		r := rand.New(rand.NewSource(1))
		differs := false
		for i := 0; i < 200; i++ {
			x, z := r.Float64()-0.5, r.Float64()-0.5
			va := a.Value(x, z)
			if math.IsNaN(va) || math.IsInf(va, 0) {
				t.Fatalf("%s: non-finite value at (%f, %f)", name, x, z)
			}
			if vb := b.Value(x, z); va != vb {
				t.Fatalf("%s: same seed differs at (%f, %f): %f vs %f", name, x, z, va, vb)
			}
			if other.Value(x, z) != va {
				differs = true
			}
		}
		if !differs {
			t.Fatalf("%s: seed has no effect", name)
		}
	}
}

func TestOpenSimplexRange(t *testing.T) {
	src, _ := New("opensimplex", 3, 8)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		if v := src.Value(r.Float64()*4-2, r.Float64()*4-2); v < -1 || v > 1 {
			t.Fatalf("value %f outside [-1,1]", v)
		}
	}
}
