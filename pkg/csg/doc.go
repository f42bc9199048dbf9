// Package csg models constructive solid geometry as an explicit expression
// tree.
//
// A solid is either a primitive ([Box], [Sphere]) or an operation over child
// solids ([Translate], [Scale], [Union], [Intersection], [Difference]).
// Expressions are immutable value objects: construction helpers return new
// nodes and never mutate their children, so subtrees can be shared freely.
//
// The tree carries no rendering behavior of its own. [WriteSCAD] serializes
// an expression to the OpenSCAD language; other serializers can walk the
// same tree with a type switch.
//
// # Example
//
//	tray := csg.Subtract(
//	    csg.Box{X: 100, Y: 60, Z: 40},
//	    csg.Translated(csg.Box{X: 90, Y: 50, Z: 44}, 5, 5, 2),
//	)
//	err := csg.ExportSCAD("tray.scad", tray, csg.DefaultHeader)
package csg
