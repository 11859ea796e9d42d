package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region is a rectangular area of a photo: (X1, Y1) inclusive top-left,
// (X2, Y2) exclusive bottom-right.
type Region struct {
	X1, Y1, X2, Y2 int
}

// ParseRegion parses a "x1,y1,x2,y2" flag value into a Region.
func ParseRegion(s string) (Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("invalid region %q: want x1,y1,x2,y2", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		vals[i] = v
	}
	return Region{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}

// Crop extracts the label area from a photo before preprocessing, so
// OCR does not waste effort on shelf background.
func Crop(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside photo bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	return imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2)), nil
}
