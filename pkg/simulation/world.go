package simulation

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/thomashancock/Solar-System-Simulator/pkg/physics"
)

const (
	// Day is the default time step: one tick is one simulated day.
	Day = 24 * 60.0 * 60.0
	// DefaultRenderRadius is the pixel radius bodies are drawn with.
	DefaultRenderRadius = 5.0

	secondsPerYear = Day * 365.25
)

var (
	ErrEmptyCatalog    = errors.New("simulation: body catalog is empty")
	ErrInvalidTimeStep = errors.New("simulation: time step must be positive and finite")
	ErrDuplicateBody   = errors.New("simulation: duplicate body name")
)

// Snapshot is what the renderer receives for one body after a tick.
type Snapshot struct {
	Name         string
	Position     physics.Vec2
	Color        color.RGBA
	RenderRadius float64
}

// World owns the bodies of a run and advances them with a fixed time step.
// It is not safe for concurrent use.
type World struct {
	bodies    []*physics.Body
	dt        float64
	elapsed   float64
	maxRadius float64

	renderRadius float64
	logger       log.Logger
}

type Option func(*World)

func WithLogger(l log.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

func WithRenderRadius(r float64) Option {
	return func(w *World) {
		w.renderRadius = r
	}
}

// NewWorld builds one body per catalog entry, in catalog order. Every body
// references central.
func NewWorld(catalog []Planet, central *physics.Central, dt float64, opts ...Option) (*World, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeStep, dt)
	}

	w := &World{
		dt:           dt,
		renderRadius: DefaultRenderRadius,
		logger:       log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := make(map[string]struct{}, len(catalog))
	w.bodies = make([]*physics.Body, 0, len(catalog))
	for _, p := range catalog {
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBody, p.Name)
		}
		seen[p.Name] = struct{}{}

		b, err := physics.NewBody(p.Name, p.Color, physics.Vec2{X: 0, Y: p.Radius}, physics.Vec2{X: p.Speed, Y: 0}, central)
		if err != nil {
			return nil, fmt.Errorf("creating body %q: %w", p.Name, err)
		}
		b.Radius = w.renderRadius
		w.bodies = append(w.bodies, b)

		level.Info(w.logger).Log("msg", "created body", "name", p.Name, "color", fmt.Sprintf("%v", p.Color))
	}
	w.maxRadius = MaxOrbitRadius(catalog)
	if !(w.maxRadius > 0) {
		return nil, fmt.Errorf("simulation: catalog has no positive orbit radius")
	}
	return w, nil
}

// Tick advances every body by the time step, adds it to the elapsed time
// and returns the state to render.
func (w *World) Tick() []Snapshot {
	physics.IntegrateEulerSymplectic(w.bodies, w.dt)
	w.elapsed += w.dt
	level.Debug(w.logger).Log("msg", "tick", "elapsed", w.elapsed)
	return w.Snapshot()
}

// Snapshot returns the current state without advancing it.
func (w *World) Snapshot() []Snapshot {
	out := make([]Snapshot, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = Snapshot{
			Name:         b.Name,
			Position:     b.Pos,
			Color:        b.ColorC,
			RenderRadius: b.Radius,
		}
	}
	return out
}

// Run ticks until n ticks have been applied or ctx is done, handing every
// snapshot to render. n <= 0 runs until ctx is done. Cancellation is checked
// before each tick and is not reported as an error.
func (w *World) Run(ctx context.Context, n int, render func([]Snapshot)) int {
	ticks := 0
	for n <= 0 || ticks < n {
		if ctx.Err() != nil {
			level.Info(w.logger).Log("msg", "simulation terminated", "ticks", ticks)
			break
		}
		frame := w.Tick()
		ticks++
		if render != nil {
			render(frame)
		}
	}
	return ticks
}

func (w *World) Bodies() []*physics.Body {
	return w.bodies
}

func (w *World) TimeStep() float64 {
	return w.dt
}

// Elapsed returns the simulated seconds applied so far.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// ElapsedYears returns the elapsed time in Julian years.
func (w *World) ElapsedYears() float64 {
	return w.elapsed / secondsPerYear
}

// MaxOrbitRadius is the largest initial orbit radius, fixed at construction.
func (w *World) MaxOrbitRadius() float64 {
	return w.maxRadius
}

// Projection returns the projection of this world onto a size x size surface.
func (w *World) Projection(size int) (Projection, error) {
	return NewProjection(size, w.maxRadius)
}
