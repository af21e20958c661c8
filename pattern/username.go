package pattern

import "regexp"

var usernameAnchored = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}\$?$`)

var (
	sshInvalidUser    = regexp.MustCompile(`Invalid user (\S+) from`)
	sshFailedPassword = regexp.MustCompile(`Failed password for (?:invalid user )?(\S+) from`)
	sshAccepted       = regexp.MustCompile(`Accepted (?:password|publickey) for (\S+) from`)
	sshUserFrom       = regexp.MustCompile(`\bUser (\S+) from`)
	jsonHostField     = regexp.MustCompile(`"host"\s*:\s*"([^"]+)"`)
)

// Username returns the `username` category: starts with a lowercase
// letter or "_", body of [a-z0-9_-], max length 32, optional trailing "$".
// The extractor additionally recognizes contextual SSH log phrases
// ("Invalid user X from", "Failed password for [invalid user] X from",
// "Accepted {password|publickey} for X from", "User X from") and JSON
// `"host":"X"` fields.
func Username() Category {
	return Category{
		Name:     "username",
		Validate: func(value string) bool { return len(value) <= 33 && usernameAnchored.MatchString(value) },
		Extract:  extractUsername,
	}
}

func extractUsername(text string) []Match {
	var out []Match

	for _, re := range []*regexp.Regexp{sshInvalidUser, sshFailedPassword, sshAccepted, sshUserFrom} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, Match{Value: text[loc[2]:loc[3]], Start: loc[2], End: loc[3]})
		}
	}

	for _, loc := range jsonHostField.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, Match{Value: text[loc[2]:loc[3]], Start: loc[2], End: loc[3]})
	}

	return out
}
