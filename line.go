package compose

import (
	"context"
	"math"

	"github.com/gogpu/gg"
)

// LineOptions configures DrawLine.
//
// X and Y name the segment midpoint and accept a number, a pixel string,
// or "center". Angle is in degrees, 0 meaning horizontal, rotating
// clockwise.
type LineOptions struct {
	X, Y   any
	Length float64
	Angle  float64

	LineWidth float64
	Color     string
	Gradient  *Gradient
	Style     BorderStyle

	// Opacity is the composite opacity in (0, 1]. Zero means opaque.
	Opacity float64

	Reference Ref
}

// DrawLine renders a straight segment and composites it onto the canvas.
// The returned Geometry is the rotated segment's bounding box.
func (c *Canvas) DrawLine(ctx context.Context, o LineOptions) (Geometry, error) {
	lw := o.LineWidth
	if lw <= 0 {
		lw = 1
	}

	rad := o.Angle * math.Pi / 180
	dx := math.Cos(rad) * o.Length / 2
	dy := math.Sin(rad) * o.Length / 2

	// Bounding box padded by the stroke width so caps are not clipped.
	w := 2*math.Abs(dx) + lw
	h := 2*math.Abs(dy) + lw

	key := newKey(KindLine).
		f("len", o.Length).
		f("angle", o.Angle).
		f("lw", lw).
		s("color", o.Color).
		grad("grad", o.Gradient).
		s("style", o.Style.String())

	pos := c.resolveRef(o.Reference)
	x := parseAxis("x", o.X)
	y := parseAxis("y", o.Y)
	cx, cy := resolvePoint(KindLine, x, y, w, h, float64(c.width), float64(c.height), pos)

	buf, err := c.session.getOrRender(key.String(), int(math.Ceil(w)), int(math.Ceil(h)), func(dc *gg.Context) error {
		if o.Gradient != nil {
			brush, err := o.Gradient.brush(w/2, h/2, w/2, h/2)
			if err != nil {
				return err
			}
			dc.SetStrokeBrush(brush)
		} else {
			dc.SetStrokeBrush(gg.Solid(parseColor(o.Color)))
		}
		dc.SetLineWidth(lw)
		applyDash(dc, o.Style, lw)
		dc.DrawLine(w/2-dx, h/2-dy, w/2+dx, h/2+dy)
		return dc.Stroke()
	})
	if err != nil {
		return Geometry{}, err
	}

	c.composite(buf, cx-w/2, cy-h/2, o.Opacity)
	g := Geometry{X: cx - w/2, Y: cy - h/2, Width: w, Height: h, Kind: KindLine}
	c.session.setLast(g)
	return g, nil
}
