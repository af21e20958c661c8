package pattern

import (
	"regexp"

	hqurl "github.com/logident/logident"
)

// urlHostPattern forces the host component to be present (rather than the
// extractor's default of treating it as optional authority), using the
// same real-TLD-aware domain pattern as the dnsname category, or an IPv4/
// IPv6 literal, with an optional port.
var urlHostPattern = `(?:` + dnsnameCandidate.String() +
	`|\[` + hqurl.ExtractorIPv6Pattern + `\]` +
	`|\b` + hqurl.ExtractorIPv4Pattern + `\b)` +
	hqurl.ExtractorPortOptionalPattern

var (
	// urlCandidate reuses the scheme-required extractor regex (http/https/
	// ftp, real-TLD-aware host matching, optional path), restricted to the
	// schemes this category covers with a mandatory host.
	urlCandidate = hqurl.NewExtractor(
		hqurl.ExtractorWithSchemePattern(`(?:https?|ftp)://`),
		hqurl.ExtractorWithHostPattern(urlHostPattern),
	).CompileRegex()
	urlAnchored = regexp.MustCompile(`^` + urlCandidate.String() + `$`)
)

// URL returns the `url` category: scheme in {http,https,ftp}, host (DNS
// name, IPv4, or bracketed IPv6), optional :port, optional path.
func URL() Category {
	return Category{
		Name:     "url",
		Validate: urlAnchored.MatchString,
		Extract:  extractURL,
	}
}

func extractURL(text string) []Match {
	var out []Match

	for _, loc := range urlCandidate.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}

	return out
}
