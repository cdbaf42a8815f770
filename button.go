package compose

import (
	"context"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/compose/imageload"
)

// ButtonOptions configures DrawButton, a composite of a rounded
// rectangle and a centered label.
//
// When Width or Height is zero, the button auto-sizes from the label's
// text metrics plus Padding. Padding accepts a number, a CSS shorthand
// string, or a []float64, expanded to top, right, bottom, left.
type ButtonOptions struct {
	X, Y   any
	Width  float64
	Height float64

	Label    string
	Segments []Segment
	Font     text.Face
	Color    string

	Padding any

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

func (o *ButtonOptions) surface() surfaceStyle {
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

// DrawButton renders a rounded rectangle with a label centered inside the
// padded content box and composites it onto the canvas.
func (c *Canvas) DrawButton(ctx context.Context, o ButtonOptions) (Geometry, error) {
	run, err := measureRun(&TextOptions{
		Text:     o.Label,
		Segments: o.Segments,
		Font:     o.Font,
		Color:    o.Color,
	})
	if err != nil {
		return Geometry{}, err
	}

	// Padding order: top, right, bottom, left.
	pad := expandShorthand("padding", o.Padding)
	textH := run.ascent + run.descent

	w := o.Width
	if w <= 0 {
		w = run.width + pad[1] + pad[3]
	}
	h := o.Height
	if h <= 0 {
		h = textH + pad[0] + pad[2]
	}

	radii := expandShorthand("borderRadius", o.BorderRadius)
	st := o.surface()

	key := newKey(KindButton).f("w", w).f("h", h).f4("r", radii).f4("pad", pad)
	st.appendKey(key)
	for _, seg := range run.segments {
		key.s("t", seg.Text).
			s("f", seg.Face.Source().Name()).
			f("size", seg.Face.Size()).
			s("c", seg.Color)
	}

	pos := c.resolveRef(o.Reference)
	x := parseAxis("x", o.X)
	y := parseAxis("y", o.Y)
	posX, posY := resolvePoint(KindButton, x, y, w, h, float64(c.width), float64(c.height), pos)

	buf, err := c.session.getOrRender(key.String(), int(math.Ceil(w)), int(math.Ceil(h)), func(dc *gg.Context) error {
		outline := func(dc *gg.Context, inset float64) {
			roundedRectPath(dc, inset, inset, w-2*inset, h-2*inset, insetRadii(radii, inset))
		}
		if err := c.paintSurface(ctx, dc, outline, w, h, st); err != nil {
			return err
		}

		// Center the label within the padded content box.
		innerW := w - pad[1] - pad[3]
		innerH := h - pad[0] - pad[2]
		penX := pad[3] + (innerW-run.width)/2
		baseY := pad[0] + (innerH-textH)/2 + run.ascent

		for i, seg := range run.segments {
			dc.SetFont(seg.Face)
			col := gg.Black
			if seg.Color != "" {
				col = parseColor(seg.Color)
			}
			dc.SetColor(col.Color())
			dc.DrawString(seg.Text, penX, baseY)
			penX += run.advances[i]
		}
		return nil
	})
	if err != nil {
		return Geometry{}, err
	}

	c.composite(buf, posX, posY, o.Opacity)
	g := Geometry{X: posX, Y: posY, Width: w, Height: h, Kind: KindButton}
	c.session.setLast(g)
	return g, nil
}
