// Package noise evaluates deterministic, seed-driven scalar fields (value,
// gradient, simplex and Voronoi noise) together with their analytic
// derivatives, four sample positions at a time.
//
// Every evaluator is a pure function of its inputs and may be called from
// any number of goroutines.
package noise

import "github.com/go-gl/mathgl/mgl64"

// Noise is a single-frequency noise function over a batch of positions.
// Returned derivatives are taken with respect to the positions as passed in,
// i.e. the evaluator applies its own frequency factor.
type Noise interface {
	Noise4(positions Position4, hash Hash4, frequency int) Sample4
}

type laneSampler interface {
	sample(p mgl64.Vec3, h Hash, frequency int) Sample
}

func sampleLanes(n laneSampler, positions Position4, hash Hash4, frequency int) Sample4 {
	var out Sample4
	for i := range positions {
		out[i] = n.sample(positions[i], hash[i], frequency)
	}
	return out
}
