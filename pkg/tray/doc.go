// Package tray is the geometry core of trayforge: it lays out a rectangular
// grid of cavities, builds the CSG expression for the tray solid, and
// computes the exact liquid capacity of each cavity in closed form.
//
// The package is purely computational. All functions are synchronous and
// side-effect free; inputs are validated up front and either a complete,
// consistent tray is produced or an error is returned with no partial
// state. Serialization of the resulting [csg.Solid] and any interaction
// with the operator (round-depth clamping, calibration lookup) belong to
// the caller.
//
// Coordinates: X runs along the columns (left to right), Y along the rows
// (bottom to top), Z upward from the underside of the floor. All lengths
// are millimeters.
package tray
