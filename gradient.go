package compose

import (
	"math"
	"sort"
	"strings"

	"github.com/gogpu/gg"
)

// Stop is a color at a position in a gradient. A negative Offset means
// "unspecified": such stops are distributed evenly across [0, 1].
type Stop struct {
	Offset float64
	Color  string
}

// Gradient describes a linear gradient for fills and strokes.
//
// Either Stops or Colors supplies the color sequence; when both are set,
// Stops wins. Angle is in degrees with 0 meaning top-to-bottom, rotating
// clockwise. The endpoint geometry is derived from the target shape's
// bounding box at render time, with the same formula for every shape
// kind, so a given gradient looks identical on a rectangle, circle, or
// triangle.
type Gradient struct {
	Angle  float64
	Stops  []Stop
	Colors []string
}

// GradientOf builds a gradient from an ordered color list with evenly
// distributed stops.
func GradientOf(colors ...string) *Gradient {
	return &Gradient{Colors: colors}
}

// ParseGradient builds a gradient from a space-separated color string,
// e.g. "red #00ff00 blue". Returns nil for a blank string.
func ParseGradient(s string) *Gradient {
	colors := strings.Fields(s)
	if len(colors) == 0 {
		return nil
	}
	return &Gradient{Colors: colors}
}

// WithAngle returns a copy of the gradient rotated to the given angle in
// degrees.
func (g *Gradient) WithAngle(deg float64) *Gradient {
	out := *g
	out.Angle = deg
	return &out
}

// resolveStops normalizes the gradient spec into ordered color stops.
// Explicit non-negative offsets are honored; unspecified offsets are
// distributed evenly. Zero resolved stops is an error, not a fallback.
func (g *Gradient) resolveStops() ([]gg.ColorStop, error) {
	var raw []Stop
	switch {
	case len(g.Stops) > 0:
		raw = g.Stops
	case len(g.Colors) > 0:
		raw = make([]Stop, len(g.Colors))
		for i, c := range g.Colors {
			raw[i] = Stop{Offset: -1, Color: c}
		}
	}
	if len(raw) == 0 {
		return nil, ErrNoStops
	}

	stops := make([]gg.ColorStop, len(raw))
	for i, s := range raw {
		offset := s.Offset
		if offset < 0 {
			if len(raw) == 1 {
				offset = 0
			} else {
				offset = float64(i) / float64(len(raw)-1)
			}
		}
		stops[i] = gg.ColorStop{Offset: offset, Color: parseColor(s.Color)}
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
	return stops, nil
}

// endpoints computes the two gradient endpoints for a bounding box with
// center (cx, cy) and half-extents (hw, hh). The fixed vertical axis
// (0 degrees = top-to-bottom) is rotated by the gradient angle; both
// points lie one half-extent from the center, on opposite sides.
func (g *Gradient) endpoints(cx, cy, hw, hh float64) (x0, y0, x1, y1 float64) {
	rad := g.Angle * math.Pi / 180
	dx := math.Sin(rad) * hw
	dy := math.Cos(rad) * hh
	return cx - dx, cy - dy, cx + dx, cy + dy
}

// brush builds a gg linear gradient brush spanning the bounding box with
// center (cx, cy) and half-extents (hw, hh).
func (g *Gradient) brush(cx, cy, hw, hh float64) (*gg.LinearGradientBrush, error) {
	stops, err := g.resolveStops()
	if err != nil {
		return nil, err
	}
	x0, y0, x1, y1 := g.endpoints(cx, cy, hw, hh)
	b := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, s := range stops {
		b.AddColorStop(s.Offset, s.Color)
	}
	return b, nil
}

// key serializes the gradient for cache keys. Nil-safe.
func (g *Gradient) key() string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatFloat(g.Angle))
	for _, s := range g.Stops {
		b.WriteByte(';')
		b.WriteString(formatFloat(s.Offset))
		b.WriteByte(':')
		b.WriteString(s.Color)
	}
	for _, c := range g.Colors {
		b.WriteByte(',')
		b.WriteString(c)
	}
	return b.String()
}
