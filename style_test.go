package compose

import (
	"reflect"
	"testing"
)

func TestExpandShorthand(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want [4]float64
	}{
		{"nil", nil, [4]float64{}},
		{"single number", 4.0, [4]float64{4, 4, 4, 4}},
		{"int", 6, [4]float64{6, 6, 6, 6}},
		{"one token", "4", [4]float64{4, 4, 4, 4}},
		{"two tokens", "4 8", [4]float64{4, 8, 4, 8}},
		{"three tokens", "4 8 12", [4]float64{4, 8, 12, 8}},
		{"four tokens", "4 8 12 16", [4]float64{4, 8, 12, 16}},
		{"five tokens invalid", "1 2 3 4 5", [4]float64{}},
		{"px suffixes", "4px 8px", [4]float64{4, 8, 4, 8}},
		{"empty string", "", [4]float64{}},
		{"unparseable token", "4 banana", [4]float64{}},
		{"slice", []float64{1, 2}, [4]float64{1, 2, 1, 2}},
		{"array", [4]float64{1, 2, 3, 4}, [4]float64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandShorthand("test", tt.in)
			if got != tt.want {
				t.Errorf("expandShorthand(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeScalar(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{12.5, 12.5, true},
		{12, 12, true},
		{"12", 12, true},
		{"12px", 12, true},
		{" 12px ", 12, true},
		{"center", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, ok := normalizeScalar(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeScalar(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	// One resolvable token yields a scalar.
	if got := normalizeValue("f", "7px"); got != 7.0 {
		t.Errorf("single token = %v, want 7", got)
	}

	// Several tokens yield an ordered slice.
	got := normalizeValue("f", "4 8px 12")
	want := []float64{4, 8, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("multi token = %v, want %v", got, want)
	}

	// An unparseable token returns the input unmodified.
	if got := normalizeValue("f", "4 oops"); got != "4 oops" {
		t.Errorf("bad token = %v, want original string", got)
	}

	// Non-string numerics normalize to float64.
	if got := normalizeValue("f", 3); got != 3.0 {
		t.Errorf("int = %v, want 3", got)
	}

	// Unknown types pass through.
	g := &Gradient{}
	if got := normalizeValue("f", g); got != any(g) {
		t.Errorf("gradient did not pass through")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b float64
	}{
		{"#ff0000", 1, 0, 0},
		{"ff0000", 1, 0, 0},
		{"#0f0", 0, 1, 0},
		{"red", 1, 0, 0},
		{"RED", 1, 0, 0},
		{"no-such-color", 0, 0, 0}, // safe default: black
	}

	for _, tt := range tests {
		got := parseColor(tt.in)
		if got.R != tt.r || got.G != tt.g || got.B != tt.b {
			t.Errorf("parseColor(%q) = %+v, want (%v, %v, %v)", tt.in, got, tt.r, tt.g, tt.b)
		}
	}
}

func TestIsTransparent(t *testing.T) {
	for _, s := range []string{"", "transparent", "TRANSPARENT", "none", " transparent "} {
		if !isTransparent(s) {
			t.Errorf("isTransparent(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"red", "#fff"} {
		if isTransparent(s) {
			t.Errorf("isTransparent(%q) = true, want false", s)
		}
	}
}

func TestParseBorderStyle(t *testing.T) {
	tests := []struct {
		in   string
		want BorderStyle
	}{
		{"dashed", BorderDashed},
		{"Dotted", BorderDotted},
		{"solid", BorderSolid},
		{"", BorderSolid},
		{"wavy", BorderSolid},
	}
	for _, tt := range tests {
		if got := ParseBorderStyle(tt.in); got != tt.want {
			t.Errorf("ParseBorderStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
