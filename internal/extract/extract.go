package extract

import (
	"regexp"
	"strings"
)

// DefaultExclusions lists boilerplate phrases printed on library labels
// that OCR captures alongside the code. Any normalized token containing
// one of these as a substring is discarded; because matching is by
// substring, concatenations of these phrases are covered as well.
var DefaultExclusions = []string{
	"sistemadeinformacion",
	"bibliografico",
	"biblioteca",
	"universidad",
	"cooperativa",
	"colombia",
}

// strictToken matches a complete code in normalized (lower-case) form.
var strictToken = regexp.MustCompile(`^b\d{6,8}$`)

// Extractor picks the best candidate inventory code from the text
// fragments of one OCR pass.
type Extractor struct {
	exclusions []string
}

// New creates an Extractor with the given exclusion list.
// A nil list selects DefaultExclusions.
func New(exclusions []string) *Extractor {
	if exclusions == nil {
		exclusions = DefaultExclusions
	}
	return &Extractor{exclusions: exclusions}
}

// Extract scans the fragments of one OCR pass and returns the single best
// candidate code in canonical upper-case form.
//
// Each fragment is normalized, then discarded if it contains an excluded
// phrase. A token survives as a candidate when it fully matches the
// strict shape (letter b followed by 6 to 8 digits) or, as a lenient
// fallback for mis-segmented captures, when it starts with "b" and is at
// least 7 characters long.
//
// The longest candidate wins; ties go to the first-seen candidate, so the
// result is stable with respect to OCR scan order. The second return
// value is false when no candidate survives, which is a legitimate empty
// result rather than an error.
func (e *Extractor) Extract(fragments []string) (string, bool) {
	best := ""
	for _, fragment := range fragments {
		token := Normalize(fragment)
		if token == "" || e.excluded(token) {
			continue
		}
		if !strictToken.MatchString(token) && !lenientMatch(token) {
			continue
		}
		if len(token) > len(best) {
			best = token
		}
	}
	if best == "" {
		return "", false
	}
	return strings.ToUpper(best), true
}

// lenientMatch accepts tokens OCR likely mangled: the leading "b" is
// present and the token is long enough to plausibly contain the digits.
func lenientMatch(token string) bool {
	return strings.HasPrefix(token, "b") && len(token) >= 7
}

func (e *Extractor) excluded(token string) bool {
	for _, phrase := range e.exclusions {
		if strings.Contains(token, phrase) {
			return true
		}
	}
	return false
}
