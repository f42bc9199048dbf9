package tray

import "github.com/trayforge/trayforge/pkg/errors"

// ClampMargin is the minimum clearance, in millimeters, kept between the
// rounded region and the cavity rim when a too-deep round depth is clamped.
// A dome that reaches the rim leaves no straight wall for the slicer to
// seat against, so the clamp stops short of the full depth.
const ClampMargin = 5.0

// Params holds the tray-wide geometry parameters shared by every cavity.
type Params struct {
	// Depth is the cavity interior depth above the floor. Must be > 0.
	Depth float64
	// Floor is the material thickness below the cavities. Must be >= 0.
	Floor float64
	// Wall is the material thickness between and around cavities. Must be >= 0.
	Wall float64
	// RoundDepth is the height of the rounded (spherical-cap) bottom
	// region. Zero or negative means a flat bottom. Must not exceed Depth.
	RoundDepth float64
}

// DefaultParams returns the stock tray parameters: 38mm deep cavities with
// a 30mm rounded bottom, 1mm floor and 1.5mm walls.
func DefaultParams() Params {
	return Params{Depth: 38, Floor: 1, Wall: 1.5, RoundDepth: 30}
}

// Validate checks the parameter invariants. A RoundDepth greater than
// Depth is reported as INVALID_ROUND_DEPTH so callers can distinguish the
// recoverable clamp-or-abort case from plainly bad input; see
// [ClampRoundDepth] for the recovery policy.
func (p Params) Validate() error {
	if p.Depth <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "depth must be positive, got %g", p.Depth)
	}
	if p.Floor < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "floor thickness must not be negative, got %g", p.Floor)
	}
	if p.Wall < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "wall thickness must not be negative, got %g", p.Wall)
	}
	if p.RoundDepth > p.Depth {
		return errors.New(errors.ErrCodeInvalidRoundDepth,
			"round depth %g exceeds cavity depth %g", p.RoundDepth, p.Depth)
	}
	return nil
}

// NeedsClamp reports whether roundDepth encroaches on the clamp margin
// below depth. This is the condition under which the CLI asks the operator
// whether to shorten the rounding.
func NeedsClamp(depth, roundDepth float64) bool {
	return roundDepth > depth-ClampMargin
}

// ClampRoundDepth shortens roundDepth to leave [ClampMargin] of straight
// wall below the rim, flooring at zero. The second return value reports
// whether a change was made. The core itself never clamps silently; this
// helper exists for callers that have obtained the operator's consent.
func ClampRoundDepth(depth, roundDepth float64) (float64, bool) {
	if !NeedsClamp(depth, roundDepth) {
		return roundDepth, false
	}
	clamped := depth - ClampMargin
	if clamped < 0 {
		clamped = 0
	}
	return clamped, true
}
