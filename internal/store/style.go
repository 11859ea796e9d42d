package store

import "github.com/lucasb-eyer/go-colorful"

// FontColorFor picks a readable bold-font color for a marker fill:
// white on dark fills, black on light ones. The decision uses the
// fill's CIE luminance so the purple "newly added" marker stays
// legible.
func FontColorFor(fillHex string) string {
	c, err := colorful.Hex(fillHex)
	if err != nil {
		return "000000"
	}
	_, _, lum := c.Xyy()
	if lum < 0.35 {
		return "FFFFFF"
	}
	return "000000"
}
