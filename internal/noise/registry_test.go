package noise

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRegistrySize(t *testing.T) {
	r := DefaultRegistry()
	// lattice 2*3*2*2, simplex 2*3*2, voronoi 3*2*2*6
	if got, want := r.Len(), 24+12+72; got != want {
		t.Fatalf("registry holds %d evaluators, want %d", got, want)
	}
	if len(r.Keys()) != r.Len() {
		t.Fatalf("keys and entries disagree")
	}
	if DefaultRegistry() != r {
		t.Fatalf("default registry rebuilt on second call")
	}
}

func TestRegistryLookup(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		ok   bool
	}{
		{name: "perlin 3d tiling turbulence", key: NewKey(CategoryPerlin, 3, true, true), ok: true},
		{name: "value 1d", key: NewKey(CategoryValue, 1, false, false), ok: true},
		{name: "simplex value 2d turbulence", key: NewKey(CategorySimplexValue, 2, false, true), ok: true},
		{name: "voronoi 3d chebyshev islands", key: NewVoronoiKey(3, true, DistanceChebyshev, FunctionCellAsIslands), ok: true},
		{name: "voronoi 1d chebyshev", key: NewVoronoiKey(1, false, DistanceChebyshev, FunctionF2), ok: true},
		{name: "simplex tiling", key: NewKey(CategorySimplex, 2, true, false)},
		{name: "voronoi turbulence", key: Key{Category: CategoryVoronoi, Dimensions: 2, Turbulence: true}},
		{name: "zero dimensions", key: NewKey(CategoryPerlin, 0, false, false)},
		{name: "four dimensions", key: NewKey(CategoryValue, 4, false, false)},
		{name: "unknown category", key: NewKey(Category(42), 2, false, false)},
		{name: "unknown function", key: NewVoronoiKey(2, false, DistanceWorley, VoronoiFunction(9))},
	}
	r := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := r.Lookup(tt.key)
			if !tt.ok {
				if !errors.Is(err, ErrUnsupportedKey) {
					t.Fatalf("expected ErrUnsupportedKey, got %v", err)
				}
				if _, ok := r.TryGet(tt.key); ok {
					t.Fatalf("TryGet found %s", tt.key)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if e.Key() != tt.key {
				t.Fatalf("evaluator key %s, want %s", e.Key(), tt.key)
			}
		})
	}
}

func TestRegistryConcurrentLookups(t *testing.T) {
	keys := DefaultRegistry().Keys()
	settings := DefaultSettings()
	p := mgl64.Vec3{0.3, 0.6, 0.9}

	want := make([]Sample, len(keys))
	for i, key := range keys {
		want[i] = evaluateAt(mustEvaluator(t, key), settings, p)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, key := range keys {
				e, ok := DefaultRegistry().TryGet(key)
				if !ok {
					errs <- key.String() + ": missing"
					return
				}
				if got := evaluateAt(e, settings, p); got != want[i] {
					errs <- key.String() + ": result changed"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatalf("%s", msg)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{key: NewKey(CategoryPerlin, 3, true, true), want: "perlin/3d/tiling/turbulence"},
		{key: NewKey(CategorySimplexValue, 1, false, false), want: "simplex-value/1d"},
		{key: NewVoronoiKey(2, false, DistanceChebyshev, FunctionF2MinusF1), want: "voronoi/2d/chebyshev/f2-f1"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Fatalf("got %q want %q", got, tt.want)
		}
	}
}

func TestParseNames(t *testing.T) {
	c, err := ParseCategory(" Simplex-Value ")
	if err != nil || c != CategorySimplexValue {
		t.Fatalf("ParseCategory: %v %v", c, err)
	}
	d, err := ParseVoronoiDistance("chebyshev")
	if err != nil || d != DistanceChebyshev {
		t.Fatalf("ParseVoronoiDistance: %v %v", d, err)
	}
	f, err := ParseVoronoiFunction("cell-as-islands")
	if err != nil || f != FunctionCellAsIslands {
		t.Fatalf("ParseVoronoiFunction: %v %v", f, err)
	}
	if _, err := ParseCategory("fbm"); err == nil {
		t.Fatalf("expected an error for an unknown category")
	}
}
