// Package imaging loads label photographs and normalizes them for OCR.
//
// The preprocessing chain mirrors what works for printed labels shot on
// a phone camera: honor the EXIF orientation, collapse to a single
// grayscale channel, stretch contrast around the image mean, and upscale
// small captures so the glyphs are large enough for the OCR engine.
package imaging
