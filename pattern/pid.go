package pattern

import "regexp"

var (
	pidAnchored  = regexp.MustCompile(`^(?:\[)?(?:PID:?)?\s*[0-9]{1,7}(?:\])?$`)
	pidPrefixed  = regexp.MustCompile(`\bPID:?\s*([0-9]{1,7})\b`)
	pidBracketed = regexp.MustCompile(`\[(?:PID:?)?\s*([0-9]{1,7})\]`)
)

// PID returns the `pid` category: optional bracket/"PID:" prefix, 1-7
// digits. The extractor runs the prefixed and bracketed forms as two
// distinct passes, so a line like "sshd[24200]: PID 24200" yields both
// matches.
func PID() Category {
	return Category{
		Name:     "pid",
		Validate: pidAnchored.MatchString,
		Extract:  extractPID,
	}
}

func extractPID(text string) []Match {
	var out []Match

	for _, loc := range pidPrefixed.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, Match{Value: text[loc[2]:loc[3]], Start: loc[2], End: loc[3]})
	}

	for _, loc := range pidBracketed.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, Match{Value: text[loc[2]:loc[3]], Start: loc[2], End: loc[3]})
	}

	return out
}
