package physics

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrZeroRadius is returned when a body would start at the central focus.
var ErrZeroRadius = errors.New("physics: body position is at the central focus")

// --- Orbiting body ---
type Body struct {
	Name string

	Pos Vec2
	Vel Vec2
	Acc Vec2 // last computed value, kept for inspection

	Central *Central

	// Draw options, not used by the physics.
	Radius float64
	ColorC color.RGBA
}

// NewBody returns a body with the given initial state. The position must
// not be the origin.
func NewBody(name string, c color.RGBA, pos, vel Vec2, central *Central) (*Body, error) {
	if name == "" {
		return nil, errors.New("physics: body name is empty")
	}
	if err := central.Validate(); err != nil {
		return nil, err
	}
	if !pos.IsFinite() || !vel.IsFinite() {
		return nil, fmt.Errorf("physics: body %q has a non-finite initial state", name)
	}
	if pos.Len() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrZeroRadius, name)
	}
	return &Body{
		Name:    name,
		Pos:     pos,
		Vel:     vel,
		Central: central,
		ColorC:  c,
	}, nil
}

// OrbitRadius is the distance from the body to the central focus.
func (b *Body) OrbitRadius() float64 {
	return b.Pos.Len()
}

// Update advances the body by one semi-implicit Euler step: the velocity is
// updated first and the new velocity moves the position. dt must be
// positive and the body must not sit on the focus; both are programmer
// errors and panic.
func (b *Body) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("physics: body %q updated with invalid time step %v", b.Name, dt))
	}
	r := b.OrbitRadius()
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("physics: body %q has invalid orbital radius %v", b.Name, r))
	}

	b.Acc = b.Central.Acceleration(b.Pos, r)

	b.Vel.X = b.Vel.X + b.Acc.X*dt
	b.Pos.X = b.Pos.X + b.Vel.X*dt

	b.Vel.Y = b.Vel.Y + b.Acc.Y*dt
	b.Pos.Y = b.Pos.Y + b.Vel.Y*dt
}

func (b *Body) Color() color.Color {
	return b.ColorC
}
