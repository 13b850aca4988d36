package simulation

import (
	"image/color"
	"math"
)

// AU in km.
const AU = 149.6e6

var (
	White       = color.RGBA{255, 255, 255, 255}
	Grey        = color.RGBA{128, 128, 128, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Red         = color.RGBA{255, 0, 0, 255}
	Orange      = color.RGBA{255, 165, 0, 255}
	Green       = color.RGBA{0, 255, 0, 255}
	Blue        = color.RGBA{0, 0, 255, 255}
	SaddleBrown = color.RGBA{139, 69, 19, 255}
	RosyBrown   = color.RGBA{188, 143, 143, 255}
	Cyan        = color.RGBA{0, 255, 255, 255}
)

// namedColors maps the config colour names to their values.
var namedColors = map[string]color.RGBA{
	"white":       White,
	"grey":        Grey,
	"gray":        Grey,
	"black":       Black,
	"red":         Red,
	"orange":      Orange,
	"green":       Green,
	"blue":        Blue,
	"saddlebrown": SaddleBrown,
	"rosybrown":   RosyBrown,
	"cyan":        Cyan,
}

// Planet is one catalog entry. The body starts at (0, Radius) moving with
// velocity (Speed, 0).
type Planet struct {
	Name   string
	Color  color.RGBA
	Speed  float64 // km/s
	Radius float64 // km
}

// DefaultCatalog returns the eight planets of the solar system, innermost
// first.
func DefaultCatalog() []Planet {
	return []Planet{
		{"mercury", SaddleBrown, 47.87, 0.39 * AU},
		{"venus", RosyBrown, 35.02, 0.723 * AU},
		{"earth", Green, 29.78, 1.0 * AU},
		{"mars", Red, 24.077, 1.524 * AU},
		{"jupiter", Orange, 13.07, 5.203 * AU},
		{"saturn", White, 9.69, 9.539 * AU},
		{"uranus", Cyan, 6.81, 19.18 * AU},
		{"neptune", Blue, 5.43, 30.06 * AU},
	}
}

// MaxOrbitRadius returns the largest initial orbit radius in the catalog,
// or 0 when it is empty.
func MaxOrbitRadius(catalog []Planet) float64 {
	maxRad := 0.0
	for _, p := range catalog {
		if r := math.Abs(p.Radius); r > maxRad {
			maxRad = r
		}
	}
	return maxRad
}
