package tray

import (
	"math"

	"github.com/trayforge/trayforge/pkg/csg"
)

// cutOvershoot stretches every subtraction prism 10% past the cavity
// depth so the cut punches cleanly through the top face instead of
// leaving a coincident surface for the CSG engine to resolve.
const cutOvershoot = 1.1

// Cavity is a single grid cell: a subtractive shape positioned in tray
// coordinates. Cavities are constructed by [Build] during layout; the
// origin is the cell's lower-left corner, already offset by the
// surrounding walls.
//
// Cavity trusts its inputs. Validation happens once, in [Build], before
// any cavity is constructed.
type Cavity struct {
	OriginX, OriginY float64 // placement offset within the tray
	SizeX, SizeY     float64 // interior footprint
	Depth            float64 // interior depth above the floor
	RoundDepth       float64 // height of the rounded bottom region (<= 0 for flat)
	Floor            float64 // floor thickness the cavity sits on
}

// Solid builds the CSG expression for the cavity, ready to be subtracted
// from the tray base block.
//
// Flat-bottomed cavities are a single overshot prism. Rounded cavities are
// built in a square sizeX x sizeX working frame and only then stretched to
// the true aspect ratio: the rounded profile must be a true spherical cap,
// and scaling before the intersection would distort the sphere into an
// ellipsoid with a different cap profile. Order matters here.
func (c Cavity) Solid() csg.Solid {
	if c.RoundDepth <= 0 {
		return csg.Translated(
			csg.Box{X: c.SizeX, Y: c.SizeY, Z: c.Depth * cutOvershoot},
			c.OriginX, c.OriginY, c.Floor,
		)
	}

	// Square working frame, corner at the local origin.
	fullPrism := csg.Box{X: c.SizeX, Y: c.SizeX, Z: c.Depth * cutOvershoot}

	// The same prism raised by the round depth keeps the straight walls
	// above the rounded region intact.
	partPrism := csg.Translated(fullPrism, 0, 0, c.RoundDepth)

	// Sphere circumscribing the square footprint's diagonal, flattened in
	// Z so its equator sits exactly roundDepth above the cavity bottom.
	radius := math.Sqrt2 * c.SizeX / 2
	dome := csg.Translated(
		csg.Scaled(csg.Sphere{R: radius}, 1, 1, c.RoundDepth/radius),
		c.SizeX/2, c.SizeX/2, c.RoundDepth,
	)

	// The full prism clamps the dome to the square cross-section; the
	// union with the raised prism restores the walls above it.
	shape := csg.IntersectionOf(fullPrism, csg.UnionOf(partPrism, dome))

	return csg.Translated(
		csg.Scaled(shape, 1, c.SizeY/c.SizeX, 1),
		c.OriginX, c.OriginY, c.Floor,
	)
}
