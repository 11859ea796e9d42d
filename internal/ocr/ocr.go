// Package ocr is the recognition boundary of the scanning pipeline.
//
// The pipeline only depends on the Engine interface: an image goes in, a
// finite sequence of recognized text fragments comes out in left-to-right,
// top-to-bottom scan order. Confidence scores and bounding boxes stay
// inside this package; the extraction heuristics upstream work on string
// values alone.
package ocr

import (
	"context"
	"image"
)

// Engine recognizes text fragments in a preprocessed label image.
type Engine interface {
	// Recognize returns the recognized text fragments in scan order.
	// An image with no recognizable text yields an empty slice, not an
	// error; errors are reserved for engine failures.
	Recognize(ctx context.Context, img image.Image) ([]string, error)
}
