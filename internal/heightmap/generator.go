package heightmap

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"noisegen/internal/noise"
)

// Generator samples one registered evaluator over the preview plane.
type Generator struct {
	evaluator noise.Evaluator
	settings  noise.Settings
	domain    noise.Transform
	matrix    mgl64.Mat4
	workers   int
}

// NewGenerator validates settings up front so rows never see bad input.
// workers <= 0 uses twice GOMAXPROCS.
func NewGenerator(evaluator noise.Evaluator, settings noise.Settings, domain noise.Transform, workers int) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("heightmap generator: %w", err)
	}
	return &Generator{
		evaluator: evaluator,
		settings:  settings,
		domain:    domain,
		matrix:    domain.Matrix(),
		workers:   workers,
	}, nil
}

// Generate evaluates a resolution x resolution field. Rows are spread over the
// worker pool and progress is logged in 10% steps. Derivatives are projected
// back through the domain transform so they describe slopes on the plane.
func (g *Generator) Generate(ctx context.Context, name string, resolution int) (*Field, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("heightmap %s: resolution %d must be positive", name, resolution)
	}
	field := newField(name, resolution)
	positions := PlanePositions(resolution)

	log.Printf("heightmap %s generation progress: 0%%", name)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(g.workerCount(resolution))

	done := make(chan int, resolution)
	errc := make(chan error, 1)
	go func() {
		for z := 0; z < resolution; z++ {
			if groupCtx.Err() != nil {
				break
			}
			z := z
			group.Go(func() error {
				if err := g.fillRow(groupCtx, field, positions, z); err != nil {
					return err
				}
				done <- z
				return nil
			})
		}
		errc <- group.Wait()
		close(done)
	}()

	generatedRows := 0
	nextLogPercent := 10
	loggedComplete := false
	for range done {
		generatedRows++
		progress := generatedRows * 100 / resolution
		if progress >= nextLogPercent {
			log.Printf("heightmap %s generation progress: %d%%", name, progress)
			if progress >= 100 {
				loggedComplete = true
				nextLogPercent = 110
			} else {
				nextLogPercent = (progress/10 + 1) * 10
			}
		}
	}

	if err := <-errc; err != nil {
		return nil, fmt.Errorf("heightmap %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("heightmap %s: %w", name, err)
	}

	if !loggedComplete {
		log.Printf("heightmap %s generation progress: 100%%", name)
	}
	return field, nil
}

func (g *Generator) fillRow(ctx context.Context, field *Field, positions []mgl64.Vec3, z int) error {
	start, end := z*field.Resolution, (z+1)*field.Resolution
	row := field.Samples[start:end]
	if err := g.evaluator.Fill(ctx, positions[start:end], row, g.settings, g.matrix, 1); err != nil {
		return err
	}
	for i, s := range row {
		row[i] = g.domain.ProjectDerivatives(s)
	}
	return nil
}

func (g *Generator) workerCount(rows int) int {
	workers := g.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0) * 2
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 0 {
		workers = 1
	}
	return workers
}
