package frames

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// fitSize gives the largest size with the same ratio as (imgW, imgH)
// that fits inside (bgW, bgH). Dimensions are truncated, so an extreme
// ratio can produce 0 on one axis.
func fitSize(imgW, imgH, bgW, bgH int) (w, h int) {
	scale := float64(bgW) / float64(imgW)
	if sy := float64(bgH) / float64(imgH); sy < scale {
		scale = sy
	}
	return int(float64(imgW) * scale), int(float64(imgH) * scale)
}

// centerOffset gives the top-left point that centers a (w, h) box on a
// (bgW, bgH) canvas. Odd differences round down.
func centerOffset(w, h, bgW, bgH int) image.Point {
	return image.Pt((bgW-w)/2, (bgH-h)/2)
}

// FitAndPad gives a width x height frame with
//   - img resized to the same ratio as the original
//   - resized width <= width AND resized height <= height
//   - the resized image centered on a background-filled canvas
func FitAndPad(img image.Image, width, height int, background color.Color) *image.NRGBA {
	canvas := imaging.New(width, height, background)

	bound := img.Bounds()
	if bound.Empty() {
		return canvas
	}
	newW, newH := fitSize(bound.Dx(), bound.Dy(), width, height)
	if newW == 0 || newH == 0 {
		return canvas
	}

	resized := imaging.Resize(img, newW, newH, imaging.Lanczos)
	canvas = imaging.Paste(canvas, resized, centerOffset(newW, newH, width, height))
	dropAlpha(canvas)
	return canvas
}

// dropAlpha makes every pixel opaque, keeping its color values.
func dropAlpha(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
