package compose

import (
	"strconv"
	"strings"
)

// formatFloat renders a float compactly and deterministically.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// keyBuilder assembles a deterministic cache key from labeled fields.
// A key is a pure function of the visual inputs it records: two shapes
// with identical geometry and style always produce identical keys.
// Session state (the last-reference chain, the target canvas) never
// enters a key.
type keyBuilder struct {
	b strings.Builder
}

// newKey starts a key for the given shape kind.
func newKey(kind ShapeKind) *keyBuilder {
	k := &keyBuilder{}
	k.b.WriteString(kind.String())
	return k
}

// f appends a labeled float field.
func (k *keyBuilder) f(name string, v float64) *keyBuilder {
	k.b.WriteByte('|')
	k.b.WriteString(name)
	k.b.WriteByte('=')
	k.b.WriteString(formatFloat(v))
	return k
}

// s appends a labeled string field.
func (k *keyBuilder) s(name, v string) *keyBuilder {
	k.b.WriteByte('|')
	k.b.WriteString(name)
	k.b.WriteByte('=')
	k.b.WriteString(v)
	return k
}

// f4 appends a labeled four-value field (shorthand expansions).
func (k *keyBuilder) f4(name string, v [4]float64) *keyBuilder {
	k.b.WriteByte('|')
	k.b.WriteString(name)
	k.b.WriteByte('=')
	for i, f := range v {
		if i > 0 {
			k.b.WriteByte(',')
		}
		k.b.WriteString(formatFloat(f))
	}
	return k
}

// grad appends a labeled gradient field. Nil gradients serialize empty.
func (k *keyBuilder) grad(name string, g *Gradient) *keyBuilder {
	return k.s(name, g.key())
}

// String returns the assembled key.
func (k *keyBuilder) String() string {
	return k.b.String()
}
