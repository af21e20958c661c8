package pattern

import (
	"net"
	"regexp"
)

// octet matches a single 0-255 decimal IPv4 octet, mirroring
// ExtractorIPv4Pattern's per-octet range grouping.
const octet = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])`

var ipv4Anchored = regexp.MustCompile(`^` + octet + `(?:\.` + octet + `){3}$`)

// ipv4Relaxed scans for candidate dotted quads without validating each
// octet's range, leaving range validation to Validate so extraction stays
// cheap and values are reported verbatim.
var ipv4Relaxed = regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)

var ipv6Anchored = regexp.MustCompile(`^(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$|^(?:[0-9a-fA-F]{1,4}:){1,7}:$|^(?:[0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}$|^(?:[0-9a-fA-F]{1,4}:){1,5}(?::[0-9a-fA-F]{1,4}){1,2}$|^(?:[0-9a-fA-F]{1,4}:){1,4}(?::[0-9a-fA-F]{1,4}){1,3}$|^(?:[0-9a-fA-F]{1,4}:){1,3}(?::[0-9a-fA-F]{1,4}){1,4}$|^(?:[0-9a-fA-F]{1,4}:){1,2}(?::[0-9a-fA-F]{1,4}){1,5}$|^[0-9a-fA-F]{1,4}:(?::[0-9a-fA-F]{1,4}){1,6}$|^:(?:(?::[0-9a-fA-F]{1,4}){1,7}|:)$`)

var ipv6Candidate = regexp.MustCompile(`\b[0-9a-fA-F:]{2,39}\b`)

func isIPv4(value string) bool {
	return ipv4Anchored.MatchString(value) && net.ParseIP(value).To4() != nil
}

func isIPv6(value string) bool {
	if !ipv6Anchored.MatchString(value) {
		return false
	}

	ip := net.ParseIP(value)

	return ip != nil && ip.To4() == nil
}

// IP returns the `ip` category: IPv4 with each octet 0-255, or canonical
// IPv6 including "::" compression.
func IP() Category {
	return Category{
		Name: "ip",
		Validate: func(value string) bool {
			return isIPv4(value) || isIPv6(value)
		},
		Extract: extractIP,
	}
}

func extractIP(text string) []Match {
	var out []Match

	for _, loc := range ipv4Relaxed.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}

	for _, loc := range ipv6Candidate.FindAllStringIndex(text, -1) {
		candidate := text[loc[0]:loc[1]]
		if isIPv6(candidate) {
			out = append(out, Match{Value: candidate, Start: loc[0], End: loc[1]})
		}
	}

	return out
}
