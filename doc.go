// Package compose provides high-level 2D shape composition on top of the
// gg drawing library.
//
// # Overview
//
// compose layers rectangles, circles, triangles, lines, text runs, and
// buttons onto a raster canvas for programmatic image generation. Every
// drawing call returns a [Geometry] descriptor that later calls can use as
// a positioning reference, so shapes can be chained relative to one
// another without manual coordinate bookkeeping.
//
// Rendered shapes are memoized in a content-addressable cache: drawing the
// same shape with the same style twice rasterizes it once and composites
// the cached bitmap the second time.
//
// # Quick Start
//
//	import "github.com/gogpu/compose"
//
//	s := compose.NewSession()
//	defer s.Close()
//
//	cv := s.NewCanvas(800, 250)
//	avatar, _ := cv.DrawCircle(ctx, compose.CircleOptions{
//		X: 120, Y: "center", Radius: 90,
//		BackgroundImage: "https://example.com/avatar.png",
//		BorderColor:     "#ffffff", BorderWidth: 4,
//	})
//	cv.DrawText(ctx, compose.TextOptions{
//		X: avatar.Right() + 24, Y: "center",
//		Text: "hello", Font: face, Color: "white",
//		Reference: compose.At(avatar),
//	})
//
//	var buf bytes.Buffer
//	_ = cv.Encode(&buf, "image/png", 0)
//
// # Positioning
//
// Each axis accepts an absolute number, a pixel string ("120px"), or the
// keyword "center". Centering without a reference centers within the
// canvas; with a reference it centers within the reference's bounding
// box. The sentinel [Auto] refers to the most recently drawn shape.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Session, Canvas, Geometry, per-shape option records
//   - compose/cache: sharded LRU cache with per-entry expiry
//   - compose/imageload: image fetch, decode, and post-processing
//
// Rasterization itself is delegated to github.com/gogpu/gg.
package compose
