package pattern

import "regexp"

var guidAnchored = regexp.MustCompile(
	`^\{?[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\}?$`,
)

// GUID returns the validator-only `guid` category: a UUID, optionally
// wrapped in braces.
func GUID() Category {
	return Category{
		Name:     "guid",
		Validate: guidAnchored.MatchString,
	}
}
