package pattern

import "regexp"

// macColon and macHyphen enforce consistent separators: six hex pairs
// joined by ':' or by '-'. A value mixing both is rejected because
// neither anchored alternative allows it.
var (
	macColon      = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)
	macHyphen     = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}-){5}[0-9A-Fa-f]{2}$`)
	macWithSep    = regexp.MustCompile(`\b(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}\b|\b(?:[0-9A-Fa-f]{2}-){5}[0-9A-Fa-f]{2}\b`)
	macNoSep      = regexp.MustCompile(`(?:^|[^0-9A-Za-z])([0-9a-fA-F]{12})(?:[^0-9A-Za-z]|$)`)
)

// MAC returns the `mac` category: six hex pairs separated by ':' or '-'
// with a consistent separator, plus (extractor-only, per original_source's
// extraction/mac.rs) bare 12-hex-digit runs flanked by non-alphanumerics.
func MAC() Category {
	return Category{
		Name: "mac",
		Validate: func(value string) bool {
			return macColon.MatchString(value) || macHyphen.MatchString(value)
		},
		Extract: extractMAC,
	}
}

func extractMAC(text string) []Match {
	var out []Match

	for _, loc := range macWithSep.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}

	for _, loc := range macNoSep.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		out = append(out, Match{Value: text[start:end], Start: start, End: end})
	}

	return out
}
