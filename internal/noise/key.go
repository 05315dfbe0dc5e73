package noise

import (
	"fmt"
	"strings"
)

// Category selects the noise family.
type Category int

const (
	CategoryValue Category = iota
	CategoryPerlin
	CategoryVoronoi
	CategorySimplex
	CategorySimplexValue
)

var categoryNames = map[Category]string{
	CategoryValue:        "value",
	CategoryPerlin:       "perlin",
	CategoryVoronoi:      "voronoi",
	CategorySimplex:      "simplex",
	CategorySimplexValue: "simplex-value",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// SupportsTurbulence reports whether the family can be folded into turbulence.
func (c Category) SupportsTurbulence() bool {
	return c != CategoryVoronoi
}

// VoronoiDistance selects the Voronoi distance metric.
type VoronoiDistance int

const (
	DistanceWorley VoronoiDistance = iota
	DistanceChebyshev
)

var distanceNames = map[VoronoiDistance]string{
	DistanceWorley:    "worley",
	DistanceChebyshev: "chebyshev",
}

func (d VoronoiDistance) String() string {
	if name, ok := distanceNames[d]; ok {
		return name
	}
	return fmt.Sprintf("distance(%d)", int(d))
}

// VoronoiFunction selects the Voronoi ranking function.
type VoronoiFunction int

const (
	FunctionF1 VoronoiFunction = iota
	FunctionF2
	FunctionF2MinusF1
	FunctionSmoothF1
	FunctionSmoothF2MinusF1
	FunctionCellAsIslands
)

var functionNames = map[VoronoiFunction]string{
	FunctionF1:              "f1",
	FunctionF2:              "f2",
	FunctionF2MinusF1:       "f2-f1",
	FunctionSmoothF1:        "smooth-f1",
	FunctionSmoothF2MinusF1: "smooth-f2-f1",
	FunctionCellAsIslands:   "cell-as-islands",
}

func (f VoronoiFunction) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("function(%d)", int(f))
}

// ParseCategory resolves a category name such as "perlin".
func ParseCategory(name string) (Category, error) {
	return parseName(categoryNames, name, "category")
}

// ParseVoronoiDistance resolves a distance name such as "worley".
func ParseVoronoiDistance(name string) (VoronoiDistance, error) {
	return parseName(distanceNames, name, "voronoi distance")
}

// ParseVoronoiFunction resolves a ranking function name such as "f2-f1".
func ParseVoronoiFunction(name string) (VoronoiFunction, error) {
	return parseName(functionNames, name, "voronoi function")
}

func parseName[T comparable](names map[T]string, name, kind string) (T, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for value, candidate := range names {
		if candidate == name {
			return value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, name)
}

// Key identifies one specialised evaluator. Keys compare structurally; the
// Voronoi fields are zero for every other category.
type Key struct {
	Category   Category
	Dimensions int
	Tiling     bool
	Turbulence bool
	Distance   VoronoiDistance
	Function   VoronoiFunction
}

// NewKey builds the key of a lattice or simplex family.
func NewKey(category Category, dimensions int, tiling, turbulence bool) Key {
	return Key{Category: category, Dimensions: dimensions, Tiling: tiling, Turbulence: turbulence}
}

// NewVoronoiKey builds the key of a Voronoi evaluator.
func NewVoronoiKey(dimensions int, tiling bool, distance VoronoiDistance, function VoronoiFunction) Key {
	return Key{
		Category:   CategoryVoronoi,
		Dimensions: dimensions,
		Tiling:     tiling,
		Distance:   distance,
		Function:   function,
	}
}

// String renders the key as e.g. "perlin/3d/tiling/turbulence" or
// "voronoi/2d/chebyshev/f2-f1".
func (k Key) String() string {
	parts := []string{k.Category.String(), fmt.Sprintf("%dd", k.Dimensions)}
	if k.Tiling {
		parts = append(parts, "tiling")
	}
	if k.Turbulence {
		parts = append(parts, "turbulence")
	}
	if k.Category == CategoryVoronoi {
		parts = append(parts, k.Distance.String(), k.Function.String())
	}
	return strings.Join(parts, "/")
}
