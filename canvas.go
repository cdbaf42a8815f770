package compose

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gogpu/gg"
)

// DefaultJPEGQuality is used when Encode is called with quality <= 0.
const DefaultJPEGQuality = 90

// Canvas is a target drawing surface. Create one with [Session.NewCanvas];
// all Draw methods composite onto it and return the shape's [Geometry].
type Canvas struct {
	session *Session
	dc      *gg.Context
	width   int
	height  int
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Session returns the owning session.
func (c *Canvas) Session() *Session { return c.session }

// Image returns the current canvas contents.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Clear fills the canvas with a solid color. "transparent" or "" clears
// to fully transparent pixels.
func (c *Canvas) Clear(color string) {
	if isTransparent(color) {
		c.dc.ClearWithColor(gg.Transparent)
		return
	}
	c.dc.ClearWithColor(parseColor(color))
}

// composite blits a cached bitmap onto the canvas at (x, y). An opacity
// of zero means "unset" and draws fully opaque, matching the option
// records' zero value.
func (c *Canvas) composite(buf *gg.ImageBuf, x, y, opacity float64) {
	if opacity < 0 {
		return
	}
	c.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:       x,
		Y:       y,
		Opacity: opacity,
	})
}

// normalizeFormat maps a format or MIME string onto the encode allow-list.
func normalizeFormat(format string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "png", "image/png":
		return "png", true
	case "jpeg", "jpg", "image/jpeg", "image/jpg":
		return "jpeg", true
	case "webp", "image/webp":
		return "webp", true
	default:
		return "", false
	}
}

// Encode writes the canvas to w in the given format. Accepted formats are
// "png", "jpeg", and "webp", by short name or MIME type. The quality
// parameter applies to JPEG only (1-100; <= 0 selects
// DefaultJPEGQuality).
//
// An unsupported format is a caller error: Encode fails with
// [ErrUnsupportedFormat] and writes nothing, it never coerces to a
// supported format.
func (c *Canvas) Encode(w io.Writer, format string, quality int) error {
	name, ok := normalizeFormat(format)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	switch name {
	case "png":
		return c.dc.EncodePNG(w)
	case "jpeg":
		if quality <= 0 {
			quality = DefaultJPEGQuality
		}
		return c.dc.EncodeJPEG(w, quality)
	default: // webp
		return nativewebp.Encode(w, c.dc.Image(), nil)
	}
}
