package pattern

import "regexp"

// emailAnchored and emailCandidate cover the plain LOCAL@HOST.TLD shape:
// local = alphanumerics plus "._%+-", host = dotted labels of
// alphanumerics/hyphens, TLD >= 2 alphabetic characters.
var (
	emailAnchored  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@` + label + `(?:\.` + label + `)*\.[a-zA-Z]{2,}$`)
	emailCandidate = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@` + label + `(?:\.` + label + `)*\.[a-zA-Z]{2,}`)
)

// Email returns the `email` category.
func Email() Category {
	return Category{
		Name:     "email",
		Validate: emailAnchored.MatchString,
		Extract:  extractEmail,
	}
}

func extractEmail(text string) []Match {
	var out []Match

	for _, loc := range emailCandidate.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}

	return out
}
