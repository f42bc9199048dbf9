package tray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestVolumeFlatBottomIsBoxVolume(t *testing.T) {
	v := Volume(40, 40, 38, 0)
	assert.Equal(t, 60.8, v.Milliliters, "40*40*38/1000 must be exact")

	cases := []struct{ x, y, d float64 }{
		{10, 10, 10},
		{40, 25, 38},
		{70, 100, 55},
		{3.5, 7.25, 12.1},
	}
	for _, c := range cases {
		v := Volume(c.x, c.y, c.d, 0)
		assert.InEpsilon(t, c.x*c.y*c.d/1000, v.Milliliters, 1e-12)
	}
}

func TestVolumeNegativeRoundDepthTreatedAsFlat(t *testing.T) {
	flat := Volume(40, 30, 38, 0)
	neg := Volume(40, 30, 38, -5)
	assert.Equal(t, flat, neg)
}

func TestVolumeCupsConversion(t *testing.T) {
	v := Volume(40, 40, 38, 0)
	// 60800 mm^3 over the US legal cup.
	assert.InEpsilon(t, 60800.0/236588.0, v.Cups, 1e-12)
}

func TestVolumeRoundingRemovesMaterial(t *testing.T) {
	flat := Volume(40, 40, 38, 0)
	for _, rd := range []float64{1, 5, 15, 30, 38} {
		rounded := Volume(40, 40, 38, rd)
		assert.Less(t, rounded.Milliliters, flat.Milliliters,
			"roundDepth=%g must remove material versus a flat bottom", rd)
	}
}

func TestVolumeRoundedContributionBelowBox(t *testing.T) {
	// For a square cavity the rounded region must hold strictly less than
	// an s x s x roundDepth box for every admissible round depth.
	const s, depth = 40.0, 38.0
	for _, rd := range []float64{0.5, 5, 20, 30, depth} {
		v := Volume(s, s, depth, rd)
		roundedMM3 := v.Milliliters*1000 - (depth-rd)*s*s
		assert.Greater(t, roundedMM3, 0.0)
		assert.Less(t, roundedMM3, s*s*rd)
	}
}

func TestVolumeMonotonicInDepth(t *testing.T) {
	prev := Volume(40, 25, 31, 30)
	for _, d := range []float64{32, 35, 40, 55, 80} {
		v := Volume(40, 25, d, 30)
		assert.Greater(t, v.Milliliters, prev.Milliliters)
		prev = v
	}
}

func TestVolumeMonotonicDecreasingInRoundDepth(t *testing.T) {
	prev := Volume(40, 25, 38, 0)
	for _, rd := range []float64{1, 5, 10, 20, 30, 38} {
		v := Volume(40, 25, 38, rd)
		assert.Less(t, v.Milliliters, prev.Milliliters,
			"more rounding must remove more material (roundDepth=%g)", rd)
		prev = v
	}
}

func TestVolumeAspectScalesLinearly(t *testing.T) {
	// The Y stretch is a pure linear scale of the rounded region, so
	// doubling sizeY must exactly double the total volume.
	base := Volume(40, 30, 38, 30)
	doubled := Volume(40, 60, 38, 30)
	assert.InEpsilon(t, 2*base.Milliliters, doubled.Milliliters, 1e-12)
}

// clippedDiscArea is the area of a disc of radius rho centered on a square
// of half-side a, clipped to the square. Independent of the cap-subtraction
// derivation used by Volume, so it can serve as a cross-check.
func clippedDiscArea(rho, a float64) float64 {
	if rho <= a {
		return math.Pi * rho * rho
	}
	segment := rho*rho*math.Acos(a/rho) - a*math.Sqrt(rho*rho-a*a)
	return math.Pi*rho*rho - 4*segment
}

// roundedRegionByIntegration integrates the clipped-disc cross sections of
// the lower hemisphere and applies the same Y and Z scaling as the solid.
func roundedRegionByIntegration(sizeX, sizeY, roundDepth float64) float64 {
	radius := math.Sqrt2 * sizeX / 2
	a := sizeX / 2
	f := func(z float64) float64 {
		return clippedDiscArea(math.Sqrt(radius*radius-z*z), a)
	}
	hemisphere := quad.Fixed(f, -radius, 0, 400, nil, 0)
	return hemisphere * (roundDepth / radius) * (sizeY / sizeX)
}

func TestVolumeMatchesNumericalIntegration(t *testing.T) {
	cases := []struct {
		name                string
		x, y, depth, rdepth float64
	}{
		{"square", 40, 40, 38, 30},
		{"wide", 40, 100, 38, 30},
		{"shallow rounding", 25, 60, 38, 5},
		{"full-depth rounding", 40, 40, 38, 38},
		{"large non-square", 70, 30, 55, 50},
		{"tiny", 3, 8, 6, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Volume(c.x, c.y, c.depth, c.rdepth)
			wantMM3 := (c.depth-c.rdepth)*c.x*c.y + roundedRegionByIntegration(c.x, c.y, c.rdepth)
			require.InEpsilon(t, wantMM3/1000, v.Milliliters, 1e-6)
		})
	}
}

func TestCapacitiesGrid(t *testing.T) {
	p := Params{Depth: 38, Floor: 1, Wall: 1.5, RoundDepth: 0}
	grid := Capacities([]float64{40, 25}, []float64{30, 100, 60}, p)

	require.Len(t, grid, 3)
	for _, row := range grid {
		require.Len(t, row, 2)
	}
	assert.InEpsilon(t, 40*30*38.0/1000, grid[0][0].Milliliters, 1e-12)
	assert.InEpsilon(t, 25*100*38.0/1000, grid[1][1].Milliliters, 1e-12)
}
