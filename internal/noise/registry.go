package noise

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupportedKey reports a configuration without a registered evaluator.
var ErrUnsupportedKey = errors.New("unsupported noise configuration")

// Registry maps keys to fully specialised evaluators. It is filled once by
// NewRegistry and only read afterwards, so concurrent lookups need no lock.
type Registry struct {
	entries map[Key]Evaluator
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the process-wide registry, building it on first use.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

var (
	dimensions = []int{1, 2, 3}
	toggles    = []bool{false, true}
	distances  = []VoronoiDistance{DistanceWorley, DistanceChebyshev}
	functions  = []VoronoiFunction{
		FunctionF1, FunctionF2, FunctionF2MinusF1,
		FunctionSmoothF1, FunctionSmoothF2MinusF1, FunctionCellAsIslands,
	}
)

// NewRegistry enumerates every supported configuration.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[Key]Evaluator, 256)}

	lattice := map[Category]Gradient{
		CategoryValue:  Value{},
		CategoryPerlin: Perlin{},
	}
	for category, gradient := range lattice {
		for _, dim := range dimensions {
			for _, tiling := range toggles {
				for _, turbulence := range toggles {
					r.add(NewKey(category, dim, tiling, turbulence),
						latticeNoise(dim, latticeMode(tiling), withTurbulence(gradient, turbulence)))
				}
			}
		}
	}

	// Skewed simplex lattices cannot wrap on an axis-aligned period, so the
	// simplex families have no tiling entries.
	simplex := map[Category]Gradient{
		CategorySimplex:      Simplex{},
		CategorySimplexValue: Value{},
	}
	for category, gradient := range simplex {
		for _, dim := range dimensions {
			for _, turbulence := range toggles {
				r.add(NewKey(category, dim, false, turbulence),
					simplexNoise(dim, withTurbulence(gradient, turbulence)))
			}
		}
	}

	// In one dimension both metrics reduce to |x| and share one evaluator.
	for _, dim := range dimensions {
		for _, tiling := range toggles {
			for _, distance := range distances {
				for _, function := range functions {
					r.add(NewVoronoiKey(dim, tiling, distance, function),
						voronoiNoise(dim, latticeMode(tiling), voronoiMetric(distance), ranking(function)))
				}
			}
		}
	}
	return r
}

func (r *Registry) add(key Key, n Noise) {
	r.entries[key] = Evaluator{key: key, noise: n}
}

// TryGet returns the evaluator registered for key.
func (r *Registry) TryGet(key Key) (Evaluator, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Lookup is TryGet with an error wrapping ErrUnsupportedKey.
func (r *Registry) Lookup(key Key) (Evaluator, error) {
	e, ok := r.entries[key]
	if !ok {
		return Evaluator{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, key)
	}
	return e, nil
}

// Len returns the number of registered evaluators.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keys returns every registered key in a stable order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch {
		case a.Category != b.Category:
			return a.Category < b.Category
		case a.Dimensions != b.Dimensions:
			return a.Dimensions < b.Dimensions
		case a.Tiling != b.Tiling:
			return !a.Tiling
		case a.Turbulence != b.Turbulence:
			return !a.Turbulence
		case a.Distance != b.Distance:
			return a.Distance < b.Distance
		}
		return a.Function < b.Function
	})
	return keys
}

func latticeMode(tiling bool) LatticeMode {
	if tiling {
		return LatticeTiling{}
	}
	return LatticeNormal{}
}

func withTurbulence(g Gradient, turbulence bool) Gradient {
	if turbulence {
		return Turbulence{Inner: g}
	}
	return g
}

func latticeNoise(dim int, mode LatticeMode, g Gradient) Noise {
	switch dim {
	case 1:
		return Lattice1D{Mode: mode, Gradient: g}
	case 2:
		return Lattice2D{Mode: mode, Gradient: g}
	}
	return Lattice3D{Mode: mode, Gradient: g}
}

func simplexNoise(dim int, g Gradient) Noise {
	switch dim {
	case 1:
		return Simplex1D{Gradient: g}
	case 2:
		return Simplex2D{Gradient: g}
	}
	return Simplex3D{Gradient: g}
}

func voronoiNoise(dim int, mode LatticeMode, metric VoronoiMetric, rank Ranking) Noise {
	switch dim {
	case 1:
		return Voronoi1D{Mode: mode, Metric: Worley{}, Ranking: rank}
	case 2:
		return Voronoi2D{Mode: mode, Metric: metric, Ranking: rank}
	}
	return Voronoi3D{Mode: mode, Metric: metric, Ranking: rank}
}

func voronoiMetric(d VoronoiDistance) VoronoiMetric {
	if d == DistanceChebyshev {
		return Chebyshev{}
	}
	return Worley{}
}

func ranking(f VoronoiFunction) Ranking {
	switch f {
	case FunctionF2:
		return RankF2{}
	case FunctionF2MinusF1:
		return RankF2MinusF1{}
	case FunctionSmoothF1:
		return RankSmoothF1{}
	case FunctionSmoothF2MinusF1:
		return RankSmoothF2MinusF1{}
	case FunctionCellAsIslands:
		return RankCellAsIslands{}
	}
	return RankF1{}
}
