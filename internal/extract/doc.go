// Package extract turns raw OCR text fragments into a single candidate
// inventory code.
//
// OCR output from a photographed label is noisy: the code is often
// fragmented across tokens, surrounded by printed letterhead text, or
// padded with stray characters. This package normalizes each fragment,
// filters out known boilerplate, and picks the most complete candidate.
//
// The selection is a heuristic, not a guarantee: the longest surviving
// candidate wins, on the theory that a longer capture is more likely to
// be the full code than a truncated one. The strict format check in the
// inventory package is the final gate.
package extract
