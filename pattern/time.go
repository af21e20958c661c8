package pattern

import (
	"regexp"
	"strings"
)

var (
	time24       = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9](?::[0-5][0-9])?$`)
	time12       = regexp.MustCompile(`^(?:0?[1-9]|1[0-2]):[0-5][0-9](?::[0-5][0-9])?\s*[AaPp][Mm]$`)
	timeMilitary = regexp.MustCompile(`^(?:[01][0-9]|2[0-3])[0-5][0-9]$`)
	timeISO      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T(?:[01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9](?:\.\d{1,3})?(?:Z|[+-][01][0-9]:?[0-5][0-9])?$`)
	timeSQL      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s(?:[01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9](?:,\d{1,3})?$`)
	timeEpoch    = regexp.MustCompile(`^\d{10}$`)

	timeCandidate24or12   = regexp.MustCompile(`\b(?:[01]?[0-9]|2[0-3]):[0-5][0-9](?::[0-5][0-9])?(?:\s*[AaPp][Mm])?\b`)
	timeCandidateMilitary = regexp.MustCompile(`\b(?:[01][0-9]|2[0-3])[0-5][0-9]\b`)
	timeCandidateISO      = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}T(?:[01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9](?:\.\d{1,3})?(?:Z|[+-][01][0-9]:?[0-5][0-9])?\b`)
	timeCandidateSQL      = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\s(?:[01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9](?:,\d{1,3})?\b`)
	timeCandidateEpoch    = regexp.MustCompile(`\b\d{10}\b`)
)

func isTime(value string) bool {
	switch {
	case time24.MatchString(value):
		return true
	case time12.MatchString(value):
		return true
	case timeMilitary.MatchString(value):
		return true
	case timeISO.MatchString(value):
		return true
	case timeSQL.MatchString(value):
		return true
	case timeEpoch.MatchString(value):
		return true
	}

	return false
}

// Time returns the `time` category: 24-hour HH:MM[:SS] with ranges
// enforced, 12-hour with AM/PM, compact HHMM military, ISO-8601, SQL-style
// "YYYY-MM-DD HH:MM:SS[,fff]", or a 10-digit Unix epoch.
func Time() Category {
	return Category{
		Name:     "time",
		Validate: isTime,
		Extract:  extractTime,
	}
}

func extractTime(text string) []Match {
	var out []Match

	appendIfValid := func(loc []int) {
		value := text[loc[0]:loc[1]]
		if !isTime(value) {
			return
		}

		out = append(out, Match{Value: value, Start: loc[0], End: loc[1]})
	}

	for _, loc := range timeCandidateISO.FindAllStringIndex(text, -1) {
		appendIfValid(loc)
	}

	for _, loc := range timeCandidateSQL.FindAllStringIndex(text, -1) {
		appendIfValid(loc)
	}

	for _, loc := range timeCandidate24or12.FindAllStringIndex(text, -1) {
		appendIfValid(loc)
	}

	for _, loc := range timeCandidateMilitary.FindAllStringIndex(text, -1) {
		value := text[loc[0]:loc[1]]
		if strings.Contains(text, "-"+value+"-") || strings.Contains(text, "/"+value+"/") {
			continue // looks like it's embedded in a date, not a time
		}

		appendIfValid(loc)
	}

	for _, loc := range timeCandidateEpoch.FindAllStringIndex(text, -1) {
		appendIfValid(loc)
	}

	return out
}
