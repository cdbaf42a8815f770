package compose

import "errors"

// Sentinel errors returned by the public API.
// Wrap-aware callers should test with errors.Is.
var (
	// ErrUnsupportedFormat is returned by Canvas.Encode for formats outside
	// the {png, jpeg, webp} allow-list. Unsupported formats are never
	// silently coerced.
	ErrUnsupportedFormat = errors.New("compose: unsupported encode format")

	// ErrNoStops is returned when a gradient spec resolves to zero usable
	// color stops. The error propagates to the caller instead of emitting
	// a corrupt bitmap.
	ErrNoStops = errors.New("compose: gradient resolved to zero color stops")

	// ErrNoFont is returned when a text run contains a segment with no
	// font face and no default face was provided.
	ErrNoFont = errors.New("compose: no font face provided")
)
