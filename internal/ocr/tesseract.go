package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the Tesseract language used when none is
// configured. Inventory labels at the source library print Spanish
// letterhead around the code.
const DefaultLanguage = "spa"

// Tesseract is an Engine backed by the system Tesseract installation
// via gosseract. The language data for the configured language must be
// installed (tesseract-ocr-spa for the default).
type Tesseract struct {
	language string
}

// NewTesseract creates a Tesseract engine for the given language code.
// An empty language selects DefaultLanguage.
func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = DefaultLanguage
	}
	return &Tesseract{language: language}
}

// Recognize runs one OCR pass over the image and returns word-level
// fragments in Tesseract's scan order (left-to-right within a line,
// lines top-to-bottom). Word segmentation is what the extractor wants:
// a code printed next to letterhead text arrives as its own fragment.
//
// Tesseract itself is not cancellable mid-inference; ctx is checked
// before the engine is invoked and the call then blocks until the
// engine returns.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for ocr: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err == nil {
		fragments := make([]string, 0, len(boxes))
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			fragments = append(fragments, box.Word)
		}
		return fragments, nil
	}

	// Some builds cannot iterate word boxes; fall back to the full text
	// split on whitespace, which preserves the same scan order.
	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("ocr failed: %w", err)
	}
	return strings.Fields(text), nil
}
