package compose

import (
	"context"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Align is the horizontal anchoring of a text run at its resolved
// position. It applies to absolute coordinates; "center" positioning
// already centers the run.
type Align int

const (
	// AlignLeft anchors the run's left edge at the resolved x.
	AlignLeft Align = iota
	// AlignCenter anchors the run's midpoint at the resolved x.
	AlignCenter
	// AlignRight anchors the run's right edge at the resolved x.
	AlignRight
)

// Baseline is the vertical anchoring of a text run at its resolved
// position.
type Baseline int

const (
	// BaselineTop anchors the top of the run's box at the resolved y.
	BaselineTop Baseline = iota
	// BaselineMiddle anchors the vertical midpoint at the resolved y.
	BaselineMiddle
	// BaselineAlphabetic anchors the alphabetic baseline at the resolved y.
	BaselineAlphabetic
	// BaselineBottom anchors the bottom of the run's box at the resolved y.
	BaselineBottom
)

// Segment is one styled piece of a text run. Face and Color fall back to
// the TextOptions defaults when unset.
type Segment struct {
	Text  string
	Face  text.Face
	Color string
}

// TextOptions configures DrawText.
//
// Either Text (a single run using Font and Color) or Segments (an ordered
// list of styled runs drawn left-to-right with accumulating advance) must
// be provided. X and Y name the top-left of the run's bounding box,
// subject to Align and Baseline.
type TextOptions struct {
	X, Y any

	Text     string
	Segments []Segment

	Font  text.Face
	Color string

	Align    Align
	Baseline Baseline

	// Opacity is the composite opacity in (0, 1]. Zero means opaque.
	Opacity float64

	Reference Ref
}

// measuredRun is a text run with resolved faces and metrics.
type measuredRun struct {
	segments []Segment
	advances []float64
	width    float64
	ascent   float64
	descent  float64
}

// measureRun resolves per-segment faces and measures advance width and
// ascent/descent across the whole run. A segment without any face fails
// with ErrNoFont.
func measureRun(o *TextOptions) (*measuredRun, error) {
	segments := o.Segments
	if len(segments) == 0 {
		segments = []Segment{{Text: o.Text}}
	}

	run := &measuredRun{
		segments: make([]Segment, len(segments)),
		advances: make([]float64, len(segments)),
	}
	for i, seg := range segments {
		if seg.Face == nil {
			seg.Face = o.Font
		}
		if seg.Face == nil {
			return nil, ErrNoFont
		}
		if seg.Color == "" {
			seg.Color = o.Color
		}

		adv := seg.Face.Advance(seg.Text)
		m := seg.Face.Metrics()
		run.ascent = math.Max(run.ascent, m.Ascent)
		run.descent = math.Max(run.descent, m.Descent)
		run.width += adv

		run.segments[i] = seg
		run.advances[i] = adv
	}
	return run, nil
}

// DrawText renders a text run and composites it onto the canvas. The run
// is measured before drawing so it can be centered on both axes; the
// returned Geometry's Width is the total rendered advance, ready for
// caller-side chaining.
func (c *Canvas) DrawText(ctx context.Context, o TextOptions) (Geometry, error) {
	run, err := measureRun(&o)
	if err != nil {
		return Geometry{}, err
	}

	w := run.width
	h := run.ascent + run.descent

	key := newKey(KindText).f("asc", run.ascent).f("desc", run.descent)
	for _, seg := range run.segments {
		key.s("t", seg.Text).
			s("f", seg.Face.Source().Name()).
			f("size", seg.Face.Size()).
			s("c", seg.Color)
	}

	pos := c.resolveRef(o.Reference)
	x := parseAxis("x", o.X)
	y := parseAxis("y", o.Y)
	posX, posY := resolvePoint(KindText, x, y, w, h, float64(c.width), float64(c.height), pos)

	// Align and Baseline shift absolute anchors only; centered axes are
	// already centered.
	if x.kind == axisAbsolute {
		switch o.Align {
		case AlignCenter:
			posX -= w / 2
		case AlignRight:
			posX -= w
		}
	}
	if y.kind == axisAbsolute {
		switch o.Baseline {
		case BaselineMiddle:
			posY -= h / 2
		case BaselineAlphabetic:
			posY -= run.ascent
		case BaselineBottom:
			posY -= h
		}
	}

	buf, err := c.session.getOrRender(key.String(), int(math.Ceil(w)), int(math.Ceil(h)), func(dc *gg.Context) error {
		penX := 0.0
		for i, seg := range run.segments {
			dc.SetFont(seg.Face)
			col := gg.Black
			if seg.Color != "" {
				col = parseColor(seg.Color)
			}
			dc.SetColor(col.Color())
			dc.DrawString(seg.Text, penX, run.ascent)
			penX += run.advances[i]
		}
		return nil
	})
	if err != nil {
		return Geometry{}, err
	}

	c.composite(buf, posX, posY, o.Opacity)
	g := Geometry{X: posX, Y: posY, Width: w, Height: h, Kind: KindText}
	c.session.setLast(g)
	return g, nil
}
