package tray_test

import (
	"fmt"

	"github.com/trayforge/trayforge/pkg/calibration"
	"github.com/trayforge/trayforge/pkg/tray"
)

func ExampleBuild() {
	// A 3x4 tray: three column widths, four row heights, default walls.
	p := tray.Params{Depth: 38, Floor: 1, Wall: 1.5, RoundDepth: 30}

	result, err := tray.Build(
		[]float64{40, 25, 70},
		[]float64{30, 100, 60, 60},
		p,
		calibration.Identity(),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1fmm by %.1fmm\n", result.Width, result.Height)
	// Output:
	// 141.0mm by 257.5mm
}

func ExampleVolume() {
	// Flat-bottomed cavities reduce to plain box volume.
	flat := tray.Volume(40, 40, 38, 0)
	fmt.Printf("flat: %.1f mL\n", flat.Milliliters)

	// Rounding the bottom removes material.
	rounded := tray.Volume(40, 40, 38, 30)
	fmt.Printf("rounded: %.1f mL\n", rounded.Milliliters)
	// Output:
	// flat: 60.8 mL
	// rounded: 51.4 mL
}
