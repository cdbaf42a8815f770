package compose

import (
	"context"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/compose/imageload"
)

// TriangleOptions configures DrawTriangle.
//
// X and Y name the triangle's bounding box center and accept a number, a
// pixel string, or "center". Size is the side length of the square
// bounding box.
type TriangleOptions struct {
	X, Y any
	Size float64

	BackgroundColor    string
	BackgroundImage    string
	BackgroundOptions  imageload.Options
	BackgroundGradient *Gradient

	BorderColor    string
	BorderGradient *Gradient
	BorderWidth    float64
	BorderStyle    BorderStyle

	// Opacity is the composite opacity in (0, 1]. Zero means opaque.
	Opacity float64

	Reference Ref
}

func (o *TriangleOptions) surface() surfaceStyle {
	return surfaceStyle{
		bgColor:        o.BackgroundColor,
		bgImage:        o.BackgroundImage,
		bgOptions:      o.BackgroundOptions,
		bgGradient:     o.BackgroundGradient,
		borderColor:    o.BorderColor,
		borderGradient: o.BorderGradient,
		borderWidth:    o.BorderWidth,
		borderStyle:    o.BorderStyle,
	}
}

// DrawTriangle renders an isoceles triangle pointing up, inscribed in a
// Size-by-Size bounding box, and composites it onto the canvas.
func (c *Canvas) DrawTriangle(ctx context.Context, o TriangleOptions) (Geometry, error) {
	size := o.Size
	st := o.surface()

	key := newKey(KindTriangle).f("size", size)
	st.appendKey(key)

	pos := c.resolveRef(o.Reference)
	x := parseAxis("x", o.X)
	y := parseAxis("y", o.Y)
	cx, cy := resolvePoint(KindTriangle, x, y, size, size, float64(c.width), float64(c.height), pos)

	buf, err := c.session.getOrRender(key.String(), int(math.Ceil(size)), int(math.Ceil(size)), func(dc *gg.Context) error {
		outline := func(dc *gg.Context, inset float64) {
			trianglePath(dc, size, inset)
		}
		return c.paintSurface(ctx, dc, outline, size, size, st)
	})
	if err != nil {
		return Geometry{}, err
	}

	half := size / 2
	c.composite(buf, cx-half, cy-half, o.Opacity)
	g := Geometry{X: cx - half, Y: cy - half, Width: size, Height: size, Kind: KindTriangle}
	c.session.setLast(g)
	return g, nil
}

// trianglePath appends an upward triangle inscribed in a size-by-size
// box. Insetting shrinks the triangle toward its centroid, approximating
// an edge offset so strokes stay inside the bounding box.
func trianglePath(dc *gg.Context, size, inset float64) {
	if size <= 0 {
		return
	}
	// Centroid of the full triangle.
	cx := size / 2
	cy := size * 2 / 3

	scale := 1.0
	if inset > 0 && size > 0 {
		scale = math.Max((size-2*inset)/size, 0)
	}

	shrink := func(x, y float64) (float64, float64) {
		return cx + (x-cx)*scale, cy + (y-cy)*scale
	}

	x0, y0 := shrink(size/2, 0)
	x1, y1 := shrink(size, size)
	x2, y2 := shrink(0, size)

	dc.MoveTo(x0, y0)
	dc.LineTo(x1, y1)
	dc.LineTo(x2, y2)
	dc.ClosePath()
}
