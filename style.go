package compose

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// BorderStyle selects how strokes are drawn.
type BorderStyle int

const (
	// BorderSolid draws an unbroken stroke.
	BorderSolid BorderStyle = iota
	// BorderDashed draws a stroke of dashes three border-widths long.
	BorderDashed
	// BorderDotted draws a stroke of square dots one border-width long.
	BorderDotted
)

// String returns the CSS name of the border style.
func (b BorderStyle) String() string {
	switch b {
	case BorderDashed:
		return "dashed"
	case BorderDotted:
		return "dotted"
	default:
		return "solid"
	}
}

// ParseBorderStyle maps "dashed" and "dotted" (case-insensitive) to their
// styles. Anything else is solid.
func ParseBorderStyle(s string) BorderStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dashed":
		return BorderDashed
	case "dotted":
		return BorderDotted
	default:
		return BorderSolid
	}
}

// parsePixels parses a numeric string with an optional "px" suffix.
func parsePixels(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// normalizeScalar converts a heterogeneous style value to a float64.
// Accepted inputs: Go numeric types, numeric strings, and pixel strings
// ("12px"). Returns false for anything else, including nil.
func normalizeScalar(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		return parsePixels(n)
	default:
		return 0, false
	}
}

// normalizeValue resolves a style value to a numeric scalar or an ordered
// numeric slice. Multi-value strings split on whitespace and each token is
// parsed; exactly one token yields a scalar, several yield a slice. If any
// token fails to parse the whole value is returned unmodified and a
// warning is logged: unknown inputs pass through rather than hard-fail.
func normalizeValue(name string, v any) any {
	if s, ok := v.(string); ok {
		tokens := strings.Fields(s)
		if len(tokens) == 0 {
			return v
		}
		parsed := make([]float64, 0, len(tokens))
		for _, tok := range tokens {
			f, ok := parsePixels(tok)
			if !ok {
				Logger().Warn("unparseable style value", "field", name, "value", s)
				return v
			}
			parsed = append(parsed, f)
		}
		if len(parsed) == 1 {
			return parsed[0]
		}
		return parsed
	}
	if f, ok := normalizeScalar(v); ok {
		return f
	}
	return v
}

// expandShorthand resolves a CSS-style directional shorthand to four
// values ordered top-left/top, top-right/right, bottom-right/bottom,
// bottom-left/left:
//
//	1 value  -> all four sides
//	2 values -> (first, second, first, second)
//	3 values -> (first, second, third, second)
//	4 values -> used positionally
//
// Accepted inputs: nil (all zero), a single number, a whitespace-separated
// string, a []float64, or a [4]float64. Any other count or an unparseable
// token warns and yields all-zero defaults.
func expandShorthand(name string, v any) [4]float64 {
	switch s := v.(type) {
	case nil:
		return [4]float64{}
	case [4]float64:
		return s
	case []float64:
		return spreadShorthand(name, s)
	case string:
		switch n := normalizeValue(name, s).(type) {
		case float64:
			return [4]float64{n, n, n, n}
		case []float64:
			return spreadShorthand(name, n)
		default:
			// normalizeValue already warned about the bad token.
			return [4]float64{}
		}
	default:
		if f, ok := normalizeScalar(v); ok {
			return [4]float64{f, f, f, f}
		}
		Logger().Warn("unparseable shorthand value", "field", name)
		return [4]float64{}
	}
}

// spreadShorthand applies the 1/2/3/4-value CSS expansion rule.
func spreadShorthand(name string, vals []float64) [4]float64 {
	switch len(vals) {
	case 1:
		return [4]float64{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return [4]float64{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return [4]float64{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		return [4]float64{vals[0], vals[1], vals[2], vals[3]}
	default:
		Logger().Warn("invalid shorthand count", "field", name, "count", len(vals))
		return [4]float64{}
	}
}

// isTransparent reports whether a fill color string means "draw nothing".
func isTransparent(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "" || s == "transparent" || s == "none"
}

// parseColor resolves a color string to an RGBA value. Hex forms ("#f53",
// "#ff5733", with optional alpha digits) and CSS color keywords are
// supported. Unknown colors warn and default to opaque black.
func parseColor(s string) gg.RGBA {
	t := strings.TrimSpace(s)
	if t == "" {
		return gg.Black
	}
	if t[0] == '#' {
		return gg.Hex(t)
	}
	if len(t) == 3 || len(t) == 4 || len(t) == 6 || len(t) == 8 {
		if isHexDigits(t) {
			return gg.Hex(t)
		}
	}
	if c, ok := colornames.Map[strings.ToLower(t)]; ok {
		return gg.FromColor(c)
	}
	Logger().Warn("unknown color", "value", s)
	return gg.Black
}

// isHexDigits reports whether s consists only of hexadecimal digits.
func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
