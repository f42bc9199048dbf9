// Package scad drives the external OpenSCAD renderer.
//
// Mesh generation is explicitly not implemented here: the generated
// geometry description is handed to the openscad binary, which owns
// triangulation and STL output. Renders can take minutes for smooth
// spheres, so results are memoized in a content-addressed cache keyed by
// the SCAD source and the renderer binary.
package scad
