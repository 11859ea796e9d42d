package inventory

import "regexp"

// Code is a canonical inventory code: the letter B followed by 6 to 8
// digits, always stored upper-case. Construct one through Validate to
// guarantee the shape.
type Code string

var codePattern = regexp.MustCompile(`^B\d{6,8}$`)

// WellFormed reports whether the code fully matches the strict shape.
func (c Code) WellFormed() bool {
	return codePattern.MatchString(string(c))
}

func (c Code) String() string { return string(c) }
