package noise

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// batchesPerTask groups batches handed to one Fill goroutine at a time.
const batchesPerTask = 64

// Evaluator is the registry entry for one key: a specialised noise run
// through the domain transform and the fractal combiner.
type Evaluator struct {
	key   Key
	noise Noise
}

func (e Evaluator) Key() Key {
	return e.key
}

// Noise returns the single-frequency noise behind the evaluator.
func (e Evaluator) Noise() Noise {
	return e.noise
}

// Evaluate4 transforms the positions by domain and returns the fractal sum.
// Derivatives are relative to the transformed positions; see
// Transform.ProjectDerivatives.
func (e Evaluator) Evaluate4(positions Position4, settings Settings, domain mgl64.Mat4) Sample4 {
	return Fractal4(e.noise, TransformPositions(domain, positions), settings)
}

// Fill evaluates positions into out, which must be at least as long. Batches
// of four are spread over workers goroutines (GOMAXPROCS when workers <= 0).
// Once parent is cancelled no further batches start and its error is
// returned.
func (e Evaluator) Fill(parent context.Context, positions []mgl64.Vec3, out []Sample, settings Settings, domain mgl64.Mat4, workers int) error {
	if len(out) < len(positions) {
		return fmt.Errorf("fill: output holds %d samples, need %d", len(out), len(positions))
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	batches := (len(positions) + 3) / 4
	group, ctx := errgroup.WithContext(parent)
	group.SetLimit(workers)

	for first := 0; first < batches; first += batchesPerTask {
		if err := ctx.Err(); err != nil {
			break
		}
		first := first
		last := first + batchesPerTask
		if last > batches {
			last = batches
		}
		group.Go(func() error {
			for b := first; b < last; b++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				e.fillBatch(positions, out, b*4, settings, domain)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	return parent.Err()
}

// fillBatch evaluates the batch starting at offset, padding a short tail by
// repeating its last position.
func (e Evaluator) fillBatch(positions []mgl64.Vec3, out []Sample, offset int, settings Settings, domain mgl64.Mat4) {
	var batch Position4
	n := copy(batch[:], positions[offset:])
	for i := n; i < len(batch); i++ {
		batch[i] = batch[n-1]
	}
	samples := e.Evaluate4(batch, settings, domain)
	copy(out[offset:offset+n], samples[:n])
}

// Evaluate validates settings, looks key up in the default registry and
// evaluates one batch.
func Evaluate(positions Position4, settings Settings, key Key, domain mgl64.Mat4) (Sample4, error) {
	if err := settings.Validate(); err != nil {
		return Sample4{}, err
	}
	e, err := DefaultRegistry().Lookup(key)
	if err != nil {
		return Sample4{}, err
	}
	return e.Evaluate4(positions, settings, domain), nil
}
