package csg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultHeader is the directive block prepended to generated OpenSCAD
// files. $fn controls sphere tessellation; 64 segments keeps rounded
// cavity bottoms smooth at typical tray sizes.
const DefaultHeader = "$fn=64;"

// WriteSCAD serializes a solid expression to OpenSCAD source and writes it
// to w. The header is emitted verbatim before the expression; pass
// [DefaultHeader] unless the caller needs different directives.
//
// Output is deterministic: identical trees always produce identical bytes,
// which downstream render caching relies on.
func WriteSCAD(w io.Writer, s Solid, header string) error {
	var buf bytes.Buffer
	if header != "" {
		buf.WriteString(header)
		buf.WriteString("\n")
	}
	writeSolid(&buf, s, 0)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write scad: %w", err)
	}
	return nil
}

// ExportSCAD writes a solid expression to an OpenSCAD file at path.
// This is a convenience wrapper around [WriteSCAD] for file-based output.
func ExportSCAD(path string, s Solid, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSCAD(f, s, header)
}

// writeSolid recursively serializes one node at the given indent depth.
func writeSolid(buf *bytes.Buffer, s Solid, depth int) {
	indent(buf, depth)
	switch n := s.(type) {
	case Box:
		fmt.Fprintf(buf, "cube([%s, %s, %s]);\n", num(n.X), num(n.Y), num(n.Z))
	case Sphere:
		fmt.Fprintf(buf, "sphere(r=%s);\n", num(n.R))
	case Translate:
		fmt.Fprintf(buf, "translate([%s, %s, %s]) {\n", num(n.X), num(n.Y), num(n.Z))
		writeSolid(buf, n.Child, depth+1)
		indent(buf, depth)
		buf.WriteString("}\n")
	case Scale:
		fmt.Fprintf(buf, "scale([%s, %s, %s]) {\n", num(n.X), num(n.Y), num(n.Z))
		writeSolid(buf, n.Child, depth+1)
		indent(buf, depth)
		buf.WriteString("}\n")
	case Union:
		writeGroup(buf, "union", n.Children, depth)
	case Intersection:
		writeGroup(buf, "intersection", n.Children, depth)
	case Difference:
		writeGroup(buf, "difference", n.Children, depth)
	}
}

func writeGroup(buf *bytes.Buffer, op string, children []Solid, depth int) {
	fmt.Fprintf(buf, "%s() {\n", op)
	for _, c := range children {
		writeSolid(buf, c, depth+1)
	}
	indent(buf, depth)
	buf.WriteString("}\n")
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

// num formats a coordinate with the shortest representation that
// round-trips, avoiding trailing zeros in the generated file.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
