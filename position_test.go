package compose

import (
	"context"
	"testing"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		centered bool
		value    float64
	}{
		{"number", 42.0, false, 42},
		{"int", 7, false, 7},
		{"px string", "30px", false, 30},
		{"center", "center", true, 0},
		{"center mixed case", "CeNtEr", true, 0},
		{"nil", nil, false, 0},
		{"garbage", "sideways", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAxis("x", tt.in)
			if (got.kind == axisCentered) != tt.centered || got.value != tt.value {
				t.Errorf("parseAxis(%v) = %+v, want centered=%v value=%v", tt.in, got, tt.centered, tt.value)
			}
		})
	}
}

func TestResolvePointCentering(t *testing.T) {
	// A 50x50 rectangle centered on a 200x100 surface lands at (75, 25).
	center := axisSpec{kind: axisCentered}
	x, y := resolvePoint(KindRect, center, center, 50, 50, 200, 100, nil)
	if x != 75 || y != 25 {
		t.Errorf("centered rect = (%v, %v), want (75, 25)", x, y)
	}

	// Center-anchored shapes center on the surface midpoint.
	x, y = resolvePoint(KindCircle, center, center, 50, 50, 200, 100, nil)
	if x != 100 || y != 50 {
		t.Errorf("centered circle = (%v, %v), want (100, 50)", x, y)
	}
}

func TestResolvePointReference(t *testing.T) {
	ref := &Geometry{X: 10, Y: 10, Width: 100, Height: 60, Kind: KindRect}
	center := axisSpec{kind: axisCentered}

	// Top-left-anchored: offset (refSize - ownSize)/2 from the reference
	// origin.
	x, _ := resolvePoint(KindRect, center, center, 20, 20, 500, 500, ref)
	if x != 50 {
		t.Errorf("rect x = %v, want 50", x)
	}

	// Center-anchored: the reference's own center.
	x, y := resolvePoint(KindCircle, center, center, 20, 20, 500, 500, ref)
	if x != 60 || y != 40 {
		t.Errorf("circle center = (%v, %v), want (60, 40)", x, y)
	}

	// Absolute values ignore the reference.
	x, _ = resolvePoint(KindRect, axisSpec{value: 7}, center, 20, 20, 500, 500, ref)
	if x != 7 {
		t.Errorf("absolute x = %v, want 7", x)
	}
}

func TestResolvePointEmptyReference(t *testing.T) {
	// A reference with no usable geometry falls back to coordinate 0.
	empty := &Geometry{}
	center := axisSpec{kind: axisCentered}
	x, y := resolvePoint(KindRect, center, center, 20, 20, 500, 500, empty)
	if x != 0 || y != 0 {
		t.Errorf("empty reference = (%v, %v), want (0, 0)", x, y)
	}
}

func TestAutoReferenceChaining(t *testing.T) {
	s := NewSession()
	defer func() { _ = s.Close() }()
	cv := s.NewCanvas(500, 500)
	ctx := context.Background()

	a, err := cv.DrawRect(ctx, RectOptions{
		X: 10, Y: 10, Width: 100, Height: 60,
		BackgroundColor: "red",
	})
	if err != nil {
		t.Fatalf("DrawRect A: %v", err)
	}
	if a.X != 10 || a.Width != 100 {
		t.Fatalf("A geometry = %+v", a)
	}

	b, err := cv.DrawRect(ctx, RectOptions{
		X: "center", Y: "center", Width: 20, Height: 20,
		BackgroundColor: "blue",
		Reference:       Auto,
	})
	if err != nil {
		t.Fatalf("DrawRect B: %v", err)
	}
	if b.X != 50 {
		t.Errorf("B.X = %v, want 50", b.X)
	}
	if b.Y != 30 {
		t.Errorf("B.Y = %v, want 30", b.Y)
	}
}

func TestAutoReferenceWithEmptySession(t *testing.T) {
	// Auto with nothing drawn behaves as no reference: canvas centering.
	s := NewSession()
	defer func() { _ = s.Close() }()
	cv := s.NewCanvas(200, 100)

	g, err := cv.DrawRect(context.Background(), RectOptions{
		X: "center", Y: "center", Width: 50, Height: 50,
		BackgroundColor: "green",
		Reference:       Auto,
	})
	if err != nil {
		t.Fatalf("DrawRect: %v", err)
	}
	if g.X != 75 || g.Y != 25 {
		t.Errorf("geometry = (%v, %v), want (75, 25)", g.X, g.Y)
	}
}

func TestGeometryHelpers(t *testing.T) {
	g := Geometry{X: 10, Y: 20, Width: 30, Height: 40}
	if g.Right() != 40 || g.Bottom() != 60 {
		t.Errorf("Right/Bottom = (%v, %v), want (40, 60)", g.Right(), g.Bottom())
	}
	if g.CenterX() != 25 || g.CenterY() != 40 {
		t.Errorf("Center = (%v, %v), want (25, 40)", g.CenterX(), g.CenterY())
	}
}
