package csg

// Solid is a node in a constructive-solid-geometry expression tree.
// Implementations are the primitive and operation types in this package;
// the interface is sealed so serializers can type-switch exhaustively.
type Solid interface {
	solid()
}

// Box is an axis-aligned rectangular prism with one corner at the origin,
// extending into the positive octant. Dimensions are in millimeters.
type Box struct {
	X, Y, Z float64
}

// Sphere is a sphere of radius R centered at the origin.
type Sphere struct {
	R float64
}

// Translate moves its child by the given offset.
type Translate struct {
	X, Y, Z float64
	Child   Solid
}

// Scale multiplies its child by per-axis factors. Factors need not be
// uniform; non-uniform scaling is how rounded cavities are stretched to
// non-square aspect ratios.
type Scale struct {
	X, Y, Z float64
	Child   Solid
}

// Union is the boolean union of its children.
type Union struct {
	Children []Solid
}

// Intersection is the boolean intersection of its children.
type Intersection struct {
	Children []Solid
}

// Difference subtracts all later children from the first child.
type Difference struct {
	Children []Solid
}

func (Box) solid()          {}
func (Sphere) solid()       {}
func (Translate) solid()    {}
func (Scale) solid()        {}
func (Union) solid()        {}
func (Intersection) solid() {}
func (Difference) solid()   {}

// Translated wraps s in a [Translate] node.
func Translated(s Solid, x, y, z float64) Solid {
	return Translate{X: x, Y: y, Z: z, Child: s}
}

// Scaled wraps s in a [Scale] node.
func Scaled(s Solid, x, y, z float64) Solid {
	return Scale{X: x, Y: y, Z: z, Child: s}
}

// UnionOf combines solids into a single [Union]. A union of one solid is
// returned as-is.
func UnionOf(solids ...Solid) Solid {
	if len(solids) == 1 {
		return solids[0]
	}
	return Union{Children: solids}
}

// IntersectionOf combines solids into a single [Intersection].
func IntersectionOf(solids ...Solid) Solid {
	if len(solids) == 1 {
		return solids[0]
	}
	return Intersection{Children: solids}
}

// Subtract removes each cut from base.
func Subtract(base Solid, cuts ...Solid) Solid {
	return Difference{Children: append([]Solid{base}, cuts...)}
}
