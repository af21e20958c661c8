package pattern

import "regexp"

var uidAnchored = regexp.MustCompile(`^(?:uid=)?[0-9]+$|^[a-zA-Z][-a-zA-Z0-9]{0,31}$`)

// UID returns the validator-only `uid` category: a numeric UID (optionally
// "uid="-prefixed) or an alphanumeric-with-hyphens identifier.
func UID() Category {
	return Category{
		Name:     "uid",
		Validate: uidAnchored.MatchString,
	}
}
