package compose

import "strings"

// axisKind discriminates the axisSpec variant.
type axisKind int

const (
	axisAbsolute axisKind = iota
	axisCentered
)

// axisSpec is the closed variant for a single-axis position:
// an absolute pixel value or the "center" keyword. Whether centering is
// relative to the canvas or a reference is decided at resolve time.
type axisSpec struct {
	kind  axisKind
	value float64
}

// parseAxis converts a heterogeneous position input to an axisSpec.
// Accepted inputs: nil (absolute 0), numbers, pixel strings, and the
// literal "center" (case-insensitive). Anything unparseable warns and
// falls back to absolute 0.
func parseAxis(name string, v any) axisSpec {
	if s, ok := v.(string); ok {
		if strings.EqualFold(strings.TrimSpace(s), "center") {
			return axisSpec{kind: axisCentered}
		}
	}
	if v == nil {
		return axisSpec{}
	}
	f, ok := normalizeScalar(v)
	if !ok {
		Logger().Warn("unparseable position", "axis", name, "value", v)
		return axisSpec{}
	}
	return axisSpec{value: f}
}

// resolveAxis computes the absolute coordinate for one axis.
//
// Anchor asymmetry, preserved deliberately: top-left-anchored shapes
// (rect, button, text) center by offsetting (refSize-ownSize)/2 from the
// reference origin, while center-anchored shapes (circle, triangle, line)
// center onto the reference's own center.
//
// A reference that carries no usable geometry resolves to coordinate 0
// for the axis. This is permissive on purpose: a bad reference shifts the
// shape rather than failing the whole render.
func resolveAxis(spec axisSpec, centerAnchored bool, own, surface float64, ref *Geometry, horizontal bool) float64 {
	if spec.kind == axisAbsolute {
		return spec.value
	}

	if ref == nil {
		if centerAnchored {
			return surface / 2
		}
		return (surface - own) / 2
	}

	if *ref == (Geometry{}) {
		return 0
	}

	refOrigin, refSize := ref.Y, ref.Height
	if horizontal {
		refOrigin, refSize = ref.X, ref.Width
	}
	if centerAnchored {
		return refOrigin + refSize/2
	}
	return refOrigin + (refSize-own)/2
}

// resolvePoint computes the absolute anchor coordinates for a shape.
// For top-left-anchored kinds the result is the bounding box origin; for
// center-anchored kinds it is the shape center.
func resolvePoint(kind ShapeKind, x, y axisSpec, ownW, ownH, surfW, surfH float64, ref *Geometry) (float64, float64) {
	ca := kind.centerAnchored()
	px := resolveAxis(x, ca, ownW, surfW, ref, true)
	py := resolveAxis(y, ca, ownH, surfH, ref, false)
	return px, py
}

// resolveRef materializes a Ref against the session's last geometry.
// Auto with an empty session degrades to no reference.
func (c *Canvas) resolveRef(r Ref) *Geometry {
	switch r.kind {
	case refGeometry:
		g := r.geom
		return &g
	case refAuto:
		if g, ok := c.session.LastGeometry(); ok {
			return &g
		}
		Logger().Debug("auto reference with no prior geometry")
	}
	return nil
}
