package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// DefaultContrast is the fixed linear contrast factor applied before
// OCR. Printed codes on glossy labels photograph flat; doubling the
// spread around the mean separates ink from paper reliably.
const DefaultContrast = 2.0

// Preprocess normalizes a label photo for OCR.
//
// The photo is collapsed to a single grayscale channel (ITU-R 601
// luminance weights) and a linear contrast enhancement is applied about
// the image mean: out = mean + factor*(in - mean), clamped to [0, 255].
// A factor of 1.0 leaves the image unchanged; factor <= 0 selects
// DefaultContrast. The transform is deterministic and has no failure
// modes; decode errors belong to the loader.
func Preprocess(img image.Image, factor float64) *image.Gray {
	if factor <= 0 {
		factor = DefaultContrast
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				px := img.At(bounds.Min.X+x, bounds.Min.Y+y)
				gray.SetGray(x, y, color.GrayModel.Convert(px).(color.Gray))
			}
		}
	})

	if factor == 1.0 {
		return gray
	}

	var sum uint64
	for _, v := range gray.Pix {
		sum += uint64(v)
	}
	mean := float64(sum) / float64(w*h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
			for x, v := range row {
				row[x] = clampByte(mean + factor*(float64(v)-mean))
			}
		}
	})

	return gray
}

// ExpandRGB converts a single-channel grayscale buffer into a 3-channel
// representation for OCR engines that expect color input.
func ExpandRGB(gray *image.Gray) *image.NRGBA {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				v := gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
				i := out.PixOffset(x, y)
				out.Pix[i] = v
				out.Pix[i+1] = v
				out.Pix[i+2] = v
				out.Pix[i+3] = 0xff
			}
		}
	})

	return out
}

// Upscale resizes a photo so its width is at least minWidth, preserving
// aspect ratio. Photos already wide enough pass through untouched.
// Tesseract recognition degrades sharply below ~20px glyph height, so
// small captures are scaled up rather than rejected.
func Upscale(img image.Image, minWidth int) image.Image {
	if minWidth <= 0 || img.Bounds().Dx() >= minWidth {
		return img
	}
	return imaging.Resize(img, minWidth, 0, imaging.Lanczos)
}

func clampByte(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
