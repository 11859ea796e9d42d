package inventory

import "fmt"

// FormatError reports a candidate that does not match the strict code
// shape. The extractor's lenient fallback can produce such candidates;
// this is the stricter final gate.
type FormatError struct {
	Candidate string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid code format %q: want letter B followed by 6 to 8 digits", e.Candidate)
}

// DuplicateError reports a candidate already present in the inventory.
type DuplicateError struct {
	Code     Code
	Position int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("code %s already recorded at row %d", e.Code, e.Position)
}

// Validate checks a candidate against the strict format and the current
// dataset snapshot.
//
// It returns the canonical Code on success, a *FormatError when the
// candidate does not fully match the strict shape, and a *DuplicateError
// when the code already exists in the dataset. Validate has no side
// effects; re-validating an already-recorded code is a safe no-op that
// fails the same way every time.
func Validate(candidate string, d *Dataset) (Code, error) {
	code := Code(candidate)
	if !code.WellFormed() {
		return "", &FormatError{Candidate: candidate}
	}
	if row, ok := d.Find(code); ok {
		return "", &DuplicateError{Code: code, Position: row.Position}
	}
	return code, nil
}
