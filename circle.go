package compose

import (
	"context"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/compose/imageload"
)

// CircleOptions configures DrawCircle.
//
// X and Y name the circle's center and accept a number, a pixel string,
// or "center".
type CircleOptions struct {
	X, Y   any
	Radius float64

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

func (o *CircleOptions) surface() surfaceStyle {
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

// DrawCircle renders a circle and composites it onto the canvas.
// Background images are cover-fit scaled and clipped to the circular
// outline. The returned Geometry's X and Y are the bounding box origin;
// Radius carries the circle radius.
func (c *Canvas) DrawCircle(ctx context.Context, o CircleOptions) (Geometry, error) {
	r := o.Radius
	d := 2 * r
	st := o.surface()

	key := newKey(KindCircle).f("r", r)
	st.appendKey(key)

	pos := c.resolveRef(o.Reference)
	x := parseAxis("x", o.X)
	y := parseAxis("y", o.Y)
	cx, cy := resolvePoint(KindCircle, x, y, d, d, float64(c.width), float64(c.height), pos)

	buf, err := c.session.getOrRender(key.String(), int(math.Ceil(d)), int(math.Ceil(d)), func(dc *gg.Context) error {
		outline := func(dc *gg.Context, inset float64) {
			dc.DrawCircle(r, r, math.Max(r-inset, 0))
		}
		return c.paintSurface(ctx, dc, outline, d, d, st)
	})
	if err != nil {
		return Geometry{}, err
	}

	c.composite(buf, cx-r, cy-r, o.Opacity)
	g := Geometry{X: cx - r, Y: cy - r, Width: d, Height: d, Kind: KindCircle, Radius: r}
	c.session.setLast(g)
	return g, nil
}
