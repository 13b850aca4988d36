package physics

import "fmt"

const (
	// G in km³ / kg / s².
	G = 6.674e-20
	// SolarMass in kg.
	SolarMass = 1.989e30
)

// Central holds the constants of the implicit, stationary mass sitting at
// the origin. Every Body of a simulation points at the same Central.
type Central struct {
	G    float64
	Mass float64
}

// Sun returns the central constants used by the solar system catalog.
func Sun() *Central {
	return &Central{G: G, Mass: SolarMass}
}

func (c *Central) Validate() error {
	if c == nil {
		return fmt.Errorf("physics: central mass is nil")
	}
	if !(c.G > 0) {
		return fmt.Errorf("physics: gravitational constant must be positive, got %v", c.G)
	}
	if !(c.Mass > 0) {
		return fmt.Errorf("physics: central mass must be positive, got %v", c.Mass)
	}
	return nil
}

// Acceleration returns -G*M*pos/r³ for a body at pos whose orbital radius
// r was computed once for the whole step.
func (c *Central) Acceleration(pos Vec2, r float64) Vec2 {
	r3 := r * r * r
	return Vec2{
		X: -c.G * c.Mass * pos.X / r3,
		Y: -c.G * c.Mass * pos.Y / r3,
	}
}
