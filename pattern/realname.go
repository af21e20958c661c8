package pattern

import "regexp"

var realnameAnchored = regexp.MustCompile(
	`^[A-Z][a-z]+(?:[\s'-][A-Z][a-z]*)+$`,
)

// RealName returns the validator-only `realname` category: "FirstName
// LastName" with optional middle names, initials, apostrophes, or hyphens.
func RealName() Category {
	return Category{
		Name:     "realname",
		Validate: realnameAnchored.MatchString,
	}
}
