package csg_test

import (
	"os"

	"github.com/trayforge/trayforge/pkg/csg"
)

func ExampleWriteSCAD() {
	// A 20mm hollow cube: outer box minus an inset inner box.
	hollow := csg.Subtract(
		csg.Box{X: 20, Y: 20, Z: 20},
		csg.Translated(csg.Box{X: 16, Y: 16, Z: 22}, 2, 2, 2),
	)

	_ = csg.WriteSCAD(os.Stdout, hollow, "")
	// Output:
	// difference() {
	//   cube([20, 20, 20]);
	//   translate([2, 2, 2]) {
	//     cube([16, 16, 22]);
	//   }
	// }
}
