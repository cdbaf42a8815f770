package compose

import (
	"context"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/compose/imageload"
)

// bezierCircle approximates a quarter circle with a cubic bezier.
const bezierCircle = 0.5522847498307936

// RectOptions configures DrawRect.
//
// X and Y accept a number, a pixel string ("12px"), or "center"; they name
// the rectangle's top-left corner. BorderRadius accepts a number, a CSS
// shorthand string ("4 8 12 16"), or a []float64 and is expanded to the
// four corners top-left, top-right, bottom-right, bottom-left.
type RectOptions struct {
	X, Y   any
	Width  float64
	Height float64

	BackgroundColor    string
	BackgroundImage    string
	BackgroundOptions  imageload.Options
	BackgroundGradient *Gradient

	BorderColor    string
	BorderGradient *Gradient
	BorderWidth    float64
	BorderStyle    BorderStyle
	BorderRadius   any

	// Opacity is the composite opacity in (0, 1]. Zero means opaque.
	Opacity float64

	Reference Ref
}

// surface collects the shared fill/stroke fields.
func (o *RectOptions) surface() surfaceStyle {
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

// DrawRect renders a rectangle with optional rounded corners, background
// image, fill, and border, and composites it onto the canvas. The
// returned Geometry can be used as a reference for later shapes.
func (c *Canvas) DrawRect(ctx context.Context, o RectOptions) (Geometry, error) {
	w, h := o.Width, o.Height
	radii := expandShorthand("borderRadius", o.BorderRadius)
	st := o.surface()

	key := newKey(KindRect).f("w", w).f("h", h).f4("r", radii)
	st.appendKey(key)

	pos := c.resolveRef(o.Reference)
	x := parseAxis("x", o.X)
	y := parseAxis("y", o.Y)
	posX, posY := resolvePoint(KindRect, x, y, w, h, float64(c.width), float64(c.height), pos)

	buf, err := c.session.getOrRender(key.String(), int(math.Ceil(w)), int(math.Ceil(h)), func(dc *gg.Context) error {
		outline := func(dc *gg.Context, inset float64) {
			roundedRectPath(dc, inset, inset, w-2*inset, h-2*inset, insetRadii(radii, inset))
		}
		return c.paintSurface(ctx, dc, outline, w, h, st)
	})
	if err != nil {
		return Geometry{}, err
	}

	c.composite(buf, posX, posY, o.Opacity)
	g := Geometry{X: posX, Y: posY, Width: w, Height: h, Kind: KindRect}
	c.session.setLast(g)
	return g, nil
}

// insetRadii shrinks corner radii when the path is inset for stroking.
func insetRadii(radii [4]float64, inset float64) [4]float64 {
	if inset == 0 {
		return radii
	}
	for i, r := range radii {
		if r > 0 {
			radii[i] = math.Max(r-inset, 0)
		}
	}
	return radii
}

// roundedRectPath appends a rectangle outline with four independent
// corner radii, ordered top-left, top-right, bottom-right, bottom-left.
// Straight edges are joined by quarter-arc bezier curves; a zero radius
// produces a sharp corner. Radii are clamped so adjacent corners never
// overlap.
func roundedRectPath(dc *gg.Context, x, y, w, h float64, radii [4]float64) {
	if w <= 0 || h <= 0 {
		return
	}
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]

	// Clamp each radius to half the adjoining edges.
	limit := math.Min(w, h) / 2
	tl = clampRadius(tl, limit)
	tr = clampRadius(tr, limit)
	br = clampRadius(br, limit)
	bl = clampRadius(bl, limit)

	k := bezierCircle

	dc.MoveTo(x+tl, y)
	dc.LineTo(x+w-tr, y)
	if tr > 0 {
		dc.CubicTo(x+w-tr+k*tr, y, x+w, y+tr-k*tr, x+w, y+tr)
	}
	dc.LineTo(x+w, y+h-br)
	if br > 0 {
		dc.CubicTo(x+w, y+h-br+k*br, x+w-br+k*br, y+h, x+w-br, y+h)
	}
	dc.LineTo(x+bl, y+h)
	if bl > 0 {
		dc.CubicTo(x+bl-k*bl, y+h, x, y+h-bl+k*bl, x, y+h-bl)
	}
	dc.LineTo(x, y+tl)
	if tl > 0 {
		dc.CubicTo(x, y+tl-k*tl, x+tl-k*tl, y, x+tl, y)
	}
	dc.ClosePath()
}

// clampRadius bounds a radius to [0, limit].
func clampRadius(r, limit float64) float64 {
	if r < 0 {
		return 0
	}
	return math.Min(r, limit)
}
