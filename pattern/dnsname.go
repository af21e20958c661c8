package pattern

import (
	"regexp"
	"strings"

	hqurl "github.com/logident/logident"
)

// label matches a single DNS label per RFC1035-ish rules: alphanumeric,
// internal hyphens allowed, neither end may be a hyphen.
const label = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`

// dnsnameCandidate reuses the domain extractor's real-world-TLD-aware
// regex (it knows the IANA TLD list, not just "any 2+ letter suffix"),
// so "example.comx" is rejected while "example.computer" is accepted.
var (
	dnsnameCandidate  = hqurl.NewDomainExtractor().CompileRegex()
	dnsnameAnchored   = regexp.MustCompile(`^` + dnsnameCandidate.String() + `$`)
	allDigitsAndDots  = regexp.MustCompile(`^[0-9.]+$`)
	timestampFragment = regexp.MustCompile(`\d+\.\d+Z$|\.000$|\.000Z$|\.00Z$|\.0Z$`)
)

func cleanDNSCandidate(value string) string {
	return strings.TrimRight(value, ".])")
}

func isDNSName(value string) bool {
	clean := cleanDNSCandidate(value)

	if allDigitsAndDots.MatchString(clean) {
		return false
	}

	if timestampFragment.MatchString(clean) {
		return false
	}

	return dnsnameAnchored.MatchString(clean)
}

// DNSName returns the `dnsname` category. The extractor rejects
// pure-numeric-and-dot strings and timestamp-like fragments, and excludes
// any candidate span that falls entirely within an email match found by
// the email extractor on the same line, tracked by byte offset rather
// than by re-searching the line for the substring.
func DNSName() Category {
	return Category{
		Name:     "dnsname",
		Validate: isDNSName,
		Extract:  extractDNSName,
	}
}

func extractDNSName(text string) []Match {
	emailSpans := extractEmail(text)

	var out []Match

	for _, loc := range dnsnameCandidate.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		candidate := text[start:end]

		insideEmail := false

		for _, e := range emailSpans {
			if start >= e.Start && end <= e.End {
				insideEmail = true

				break
			}
		}

		if insideEmail {
			continue
		}

		clean := cleanDNSCandidate(candidate)
		if !isDNSName(clean) {
			continue
		}

		out = append(out, Match{Value: clean, Start: start, End: start + len(clean)})
	}

	return out
}
