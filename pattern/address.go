package pattern

import "regexp"

var addressAnchored = regexp.MustCompile(
	`^[0-9]+(?:\s[A-Za-z0-9.-]+)+\s(?:Avenue|Lane|Road|Boulevard|Drive|Street|Ave|Dr|Rd|Blvd|Ln|St)\.?(?:\s[A-Za-z]+)?$`,
)

// Address returns the `address` category: leading integer, middle word
// tokens, trailing street keyword (full name or abbreviation). The
// validator is anchored against the whole candidate, so the extractor
// only ever matches inputs that are themselves complete addresses; it
// does not pull an address out of a longer line.
func Address() Category {
	return Category{
		Name:     "address",
		Validate: addressAnchored.MatchString,
		Extract:  extractAddress,
	}
}

func extractAddress(text string) []Match {
	if !addressAnchored.MatchString(text) {
		return nil
	}

	return []Match{{Value: text, Start: 0, End: len(text)}}
}
