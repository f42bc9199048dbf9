package tray

import "math"

// Conversion constants for capacity reporting.
const (
	mm3PerMilliliter = 1000.0   // 1 cm^3 == 1 mL
	mm3PerCup        = 236588.0 // US legal cup
)

// Capacity is the liquid capacity of one cavity.
type Capacity struct {
	Milliliters float64
	Cups        float64
}

// Volume computes the exact interior volume of a cavity in closed form.
// It integrates the same shape [Cavity.Solid] builds: a straight-walled
// prism above a spherical-cap bottom, stretched to the sizeY/sizeX aspect
// ratio and compressed in Z so the cap height equals roundDepth.
//
// The rounded region is the lower half of the circumscribing sphere with
// the four side overhangs cut away. With radius sqrt(2)/2*sizeX the four
// caps touch only at the footprint corners, so subtracting them never
// double-counts; halving the result keeps just the hemisphere's share.
// A roundDepth <= 0 short-circuits to the plain box volume - the sphere
// construction is ill-defined for a flat bottom.
func Volume(sizeX, sizeY, depth, roundDepth float64) Capacity {
	if roundDepth <= 0 {
		return capacityFromMM3(sizeX * sizeY * depth)
	}

	radius := math.Sqrt2 * sizeX / 2
	a := sizeX / 2     // cap base radius (equals the center-to-face distance here)
	h := radius - a    // cap height

	capVol := math.Pi * h * (3*a*a + h*h) / 6
	sphereVol := 4 * math.Pi * radius * radius * radius / 3

	roundedVol := (sphereVol - 4*capVol) / 2
	roundedVol *= sizeY / sizeX       // Y-aspect stretch
	roundedVol *= roundDepth / radius // Z compression matching the solid

	prismVol := (depth - roundDepth) * sizeX * sizeY

	return capacityFromMM3(prismVol + roundedVol)
}

func capacityFromMM3(mm3 float64) Capacity {
	return Capacity{
		Milliliters: mm3 / mm3PerMilliliter,
		Cups:        mm3 / mm3PerCup,
	}
}

// Capacities computes the per-cell capacity grid for a tray layout.
// The outer index is the row (ySizes order, bottom row first), the inner
// index the column. Inputs are assumed validated; see [Build].
func Capacities(xSizes, ySizes []float64, p Params) [][]Capacity {
	grid := make([][]Capacity, len(ySizes))
	for j, ySize := range ySizes {
		row := make([]Capacity, len(xSizes))
		for i, xSize := range xSizes {
			row[i] = Volume(xSize, ySize, p.Depth, p.RoundDepth)
		}
		grid[j] = row
	}
	return grid
}
