package simulation

import (
	"fmt"
	"math"
)

// marginFactor leaves 10% of empty space around the outermost orbit on each
// side.
const marginFactor = 2.2

// Projection maps kilometre coordinates centred on the focus to pixels of a
// square surface. It is fixed for the life of a World.
type Projection struct {
	scale  float64
	offset float64
}

func NewProjection(size int, maxRadius float64) (Projection, error) {
	if size <= 0 {
		return Projection{}, fmt.Errorf("simulation: surface size must be positive, got %d", size)
	}
	if !(maxRadius > 0) || math.IsInf(maxRadius, 0) {
		return Projection{}, fmt.Errorf("simulation: max orbit radius must be positive, got %v", maxRadius)
	}
	return Projection{
		scale:  float64(size) / (maxRadius * marginFactor),
		offset: float64(size) / 2.0,
	}, nil
}

// Project returns the pixel coordinate of (x, y). Each axis is clamped at 0
// but not at the surface size.
func (p Projection) Project(x, y float64) (int, int) {
	return p.axis(x), p.axis(y)
}

func (p Projection) axis(c float64) int {
	px := math.Floor(c*p.scale + p.offset)
	if px < 0 {
		return 0
	}
	return int(px)
}
