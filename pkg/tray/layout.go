package tray

import (
	"github.com/trayforge/trayforge/pkg/calibration"
	"github.com/trayforge/trayforge/pkg/csg"
	"github.com/trayforge/trayforge/pkg/errors"
)

// Tray is the assembled result: the CSG expression for the whole solid
// plus the outer footprint including all walls. Trays are immutable once
// built; the solid is ready for serialization.
type Tray struct {
	Width  float64 // total X extent including perimeter walls
	Height float64 // total Y extent including perimeter walls
	Solid  csg.Solid
}

// Build lays out a grid of cavities and assembles the tray solid.
//
// xSizes gives the interior width of each column (left to right), ySizes
// the interior height of each row (bottom to top). Every cell is separated
// from its neighbors and from the tray edge by exactly one wall thickness.
// The cavities are unioned, subtracted from a base block sized to enclose
// the grid, and the whole result is wrapped in the calibration scale.
//
// Build validates everything before constructing any geometry: both size
// lists must be non-empty with strictly positive entries
// (INVALID_DIMENSION), and the parameters must satisfy [Params.Validate].
// On error no partial tray is produced.
func Build(xSizes, ySizes []float64, p Params, scale calibration.Scale) (*Tray, error) {
	if err := ValidateDimensions(xSizes, ySizes); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	slots := make([]csg.Solid, 0, len(xSizes)*len(ySizes))
	xOff, yOff := p.Wall, p.Wall

	for _, ySize := range ySizes {
		xOff = p.Wall
		for _, xSize := range xSizes {
			c := Cavity{
				OriginX:    xOff,
				OriginY:    yOff,
				SizeX:      xSize,
				SizeY:      ySize,
				Depth:      p.Depth,
				RoundDepth: p.RoundDepth,
				Floor:      p.Floor,
			}
			slots = append(slots, c.Solid())
			xOff += p.Wall + xSize
		}
		yOff += p.Wall + ySize
	}

	// The walk advances one wall past each cell, so after the last cell
	// the offsets already include the closing perimeter wall: they ARE
	// the outer footprint. The width/height invariants in the tests rely
	// on this, not on a separate summation.
	width, height := xOff, yOff

	base := csg.Box{X: width, Y: height, Z: p.Floor + p.Depth}
	solid := csg.Scaled(
		csg.Subtract(base, csg.UnionOf(slots...)),
		scale.X, scale.Y, scale.Z,
	)

	return &Tray{Width: width, Height: height, Solid: solid}, nil
}

// ValidateDimensions checks both size lists: each must be non-empty and
// contain only strictly positive values. Reporting-only callers (capacity
// tables) use this to validate without building geometry.
func ValidateDimensions(xSizes, ySizes []float64) error {
	if err := validateSizes("column", xSizes); err != nil {
		return err
	}
	return validateSizes("row", ySizes)
}

// validateSizes rejects empty dimension lists and non-positive entries.
func validateSizes(kind string, sizes []float64) error {
	if len(sizes) == 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "%s size list must not be empty", kind)
	}
	for i, s := range sizes {
		if s <= 0 {
			return errors.New(errors.ErrCodeInvalidDimension,
				"%s %d: size must be positive, got %g", kind, i+1, s)
		}
	}
	return nil
}
