package pattern

import (
	"regexp"
	"strings"
)

var (
	phoneShape     = regexp.MustCompile(`^\+?\(?[0-9]+\)?(?:[-. ]?\(?[0-9]+\)?)*$`)
	phoneDigits    = regexp.MustCompile(`[0-9]`)
	phoneCandidate = regexp.MustCompile(`\+?[0-9]{1,3}?[-. ]?\(?[0-9]{2,4}\)?(?:[-. ][0-9]{2,4}){2,3}`)
)

func digitCount(value string) int {
	return len(phoneDigits.FindAllString(value, -1))
}

func isPhoneNumber(value string) bool {
	if strings.Contains(value, ".") {
		return false
	}

	if isIPv4(value) {
		return false
	}

	if !phoneShape.MatchString(value) {
		return false
	}

	digits := digitCount(value)

	return digits >= 7 && digits <= 15
}

// PhoneNumber returns the `phonenumber` category: optional leading +, optional
// parenthesized group, digit runs joined by '-' or ' ' totaling 7-15
// digits; anything containing a '.' or matching IPv4 is rejected.
func PhoneNumber() Category {
	return Category{
		Name:     "phonenumber",
		Validate: isPhoneNumber,
		Extract:  extractPhoneNumber,
	}
}

func extractPhoneNumber(text string) []Match {
	var out []Match

	for _, loc := range phoneCandidate.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		candidate := text[start:end]

		if strings.Contains(candidate, ".") {
			continue
		}

		// Discard 10-12 digit runs that appear immediately after ':' or
		// '.' in context — these are usually port/IP fragments, not
		// phone numbers.
		contextStart := start - 1
		if contextStart >= 0 && (text[contextStart] == ':' || text[contextStart] == '.') {
			if digits := digitCount(candidate); digits >= 10 && digits <= 12 {
				continue
			}
		}

		if !isPhoneNumber(candidate) {
			continue
		}

		out = append(out, Match{Value: candidate, Start: start, End: end})
	}

	return out
}
