package compose

import (
	"context"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/gg"

	"github.com/gogpu/compose/imageload"
)

// surfaceStyle carries the fill and stroke fields shared by the closed
// shapes (rect, circle, triangle, button).
type surfaceStyle struct {
	bgColor    string
	bgImage    string
	bgOptions  imageload.Options
	bgGradient *Gradient

	borderColor    string
	borderGradient *Gradient
	borderWidth    float64
	borderStyle    BorderStyle
}

// strokeWidth returns the effective border width: zero when no stroke is
// requested, at least 1px when one is.
func (st *surfaceStyle) strokeWidth() float64 {
	if isTransparent(st.borderColor) && st.borderGradient == nil {
		return 0
	}
	if st.borderWidth <= 0 {
		return 1
	}
	return st.borderWidth
}

// appendKey adds every visual-affecting surface field to a cache key.
func (st *surfaceStyle) appendKey(k *keyBuilder) {
	k.s("bg", st.bgColor).
		s("bgimg", st.bgImage).
		s("bgopts", st.bgOptions.Key()).
		grad("bggrad", st.bgGradient).
		s("bc", st.borderColor).
		grad("bgrad", st.borderGradient).
		f("bw", st.strokeWidth()).
		s("bs", st.borderStyle.String())
}

// paintSurface draws a shape's surface into an offscreen context in the
// fixed order the renderers share: background image first (cover-fit,
// centered, clipped to the outline), then solid or gradient fill over it,
// then the border stroke last, inset by half the stroke width so it stays
// inside the bounding box.
//
// outline appends the shape's path, shrunk inward by inset pixels.
func (c *Canvas) paintSurface(ctx context.Context, dc *gg.Context, outline func(dc *gg.Context, inset float64), w, h float64, st surfaceStyle) error {
	if st.bgImage != "" {
		img := c.session.fetchImage(ctx, st.bgImage, st.bgOptions, int(math.Ceil(w)), int(math.Ceil(h)))
		fillWithCover(dc, outline, w, h, img)
	}

	// Fill over the image, unless explicitly transparent.
	if st.bgGradient != nil {
		brush, err := st.bgGradient.brush(w/2, h/2, w/2, h/2)
		if err != nil {
			return err
		}
		dc.SetFillBrush(brush)
		outline(dc, 0)
		if err := dc.Fill(); err != nil {
			return err
		}
	} else if !isTransparent(st.bgColor) {
		dc.SetFillBrush(gg.Solid(parseColor(st.bgColor)))
		outline(dc, 0)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	bw := st.strokeWidth()
	if bw <= 0 {
		return nil
	}
	if st.borderGradient != nil {
		brush, err := st.borderGradient.brush(w/2, h/2, w/2, h/2)
		if err != nil {
			return err
		}
		dc.SetStrokeBrush(brush)
	} else {
		dc.SetStrokeBrush(gg.Solid(parseColor(st.borderColor)))
	}
	dc.SetLineWidth(bw)
	applyDash(dc, st.borderStyle, bw)
	outline(dc, bw/2)
	return dc.Stroke()
}

// applyDash maps a border style onto the backend dash pattern.
func applyDash(dc *gg.Context, style BorderStyle, width float64) {
	switch style {
	case BorderDashed:
		dc.SetDash(width*3, width*2)
	case BorderDotted:
		dc.SetDash(width, width)
	default:
		dc.SetDash()
	}
}

// fillWithCover fills the outline path with an image scaled in cover-fit
// mode: the image fills the whole bounding box while preserving aspect
// ratio, anchored at the center, with overflow cropped. Filling the
// outline path means the image never bleeds outside the shape.
func fillWithCover(dc *gg.Context, outline func(dc *gg.Context, inset float64), w, h float64, img image.Image) {
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()
	if iw < 1 || ih < 1 || w < 1 || h < 1 {
		return
	}

	scale := math.Max(w/float64(iw), h/float64(ih))
	sw := int(math.Ceil(float64(iw) * scale))
	sh := int(math.Ceil(float64(ih) * scale))

	scaled := img
	if sw != iw || sh != ih {
		scaled = transform.Resize(img, sw, sh, transform.Linear)
	}

	cropX := (sw - int(math.Floor(w))) / 2
	cropY := (sh - int(math.Floor(h))) / 2
	if cropX < 0 {
		cropX = 0
	}
	if cropY < 0 {
		cropY = 0
	}

	buf := gg.ImageBufFromImage(scaled)
	pattern := dc.CreateImagePattern(buf, cropX, cropY, int(math.Ceil(w)), int(math.Ceil(h)))
	dc.SetFillPattern(pattern)
	outline(dc, 0)
	_ = dc.Fill()
}
