package imageload

import (
	"image"
	"image/color"
)

// placeholder checkerboard cell size in pixels.
const placeholderCell = 8

// Placeholder returns a neutral gray checkerboard bitmap. It stands in
// for images that failed to load so a render call still produces a
// correctly sized result. Dimensions are clamped to at least 1x1.
func Placeholder(width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	light := color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	dark := color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/placeholderCell+y/placeholderCell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}
