package compose

// ShapeKind identifies which renderer produced a Geometry.
type ShapeKind int

const (
	// KindRect is an axis-aligned (possibly rounded) rectangle.
	KindRect ShapeKind = iota + 1
	// KindCircle is a circle.
	KindCircle
	// KindTriangle is an isoceles triangle pointing up.
	KindTriangle
	// KindLine is a straight line segment.
	KindLine
	// KindText is a run of text segments.
	KindText
	// KindButton is a rounded rectangle with a centered label.
	KindButton
)

// String returns the lowercase name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// centerAnchored reports whether positions for this kind name the shape's
// center rather than its top-left corner. Rectangles, buttons, and text
// anchor at the top-left; circles, triangles, and lines at their center.
func (k ShapeKind) centerAnchored() bool {
	switch k {
	case KindCircle, KindTriangle, KindLine:
		return true
	default:
		return false
	}
}

// Geometry is the bounding box and kind of a rendered shape. It is an
// immutable snapshot returned by every drawing call and is the unit of
// inter-shape coupling: pass it (or the [Auto] sentinel) as a later call's
// Reference to position relative to it.
//
// X and Y are always the top-left corner of the bounding box, regardless
// of the shape's own anchor convention.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Kind   ShapeKind

	// Radius is set for circles (the circle radius) and zero otherwise.
	Radius float64
}

// Right returns the x coordinate of the right edge.
func (g Geometry) Right() float64 { return g.X + g.Width }

// Bottom returns the y coordinate of the bottom edge.
func (g Geometry) Bottom() float64 { return g.Y + g.Height }

// CenterX returns the x coordinate of the bounding box center.
func (g Geometry) CenterX() float64 { return g.X + g.Width/2 }

// CenterY returns the y coordinate of the bounding box center.
func (g Geometry) CenterY() float64 { return g.Y + g.Height/2 }

// refKind discriminates the Ref variant.
type refKind int

const (
	refNone refKind = iota
	refAuto
	refGeometry
)

// Ref is a positioning reference: either no reference (the zero value),
// the [Auto] sentinel meaning "the most recently drawn shape in this
// session", or a captured [Geometry] via [At].
type Ref struct {
	kind refKind
	geom Geometry
}

// Auto refers to the session's most recently returned Geometry. If
// nothing has been drawn yet, Auto behaves as no reference.
var Auto = Ref{kind: refAuto}

// At captures a Geometry as a positioning reference.
func At(g Geometry) Ref {
	return Ref{kind: refGeometry, geom: g}
}
