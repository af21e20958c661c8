package pattern

import "regexp"

const ttyType = `(?:tty|pts|console|ttys|ttyS|ttyUSB|ttyACM)`

var (
	ttyAnchored    = regexp.MustCompile(`^(?:/dev/)?` + ttyType + `[0-9]+$`)
	ttyPtsAnchored = regexp.MustCompile(`^(?:/dev/)?pts/[0-9]+$`)
	ttyCandidate   = regexp.MustCompile(`(?:/dev/|\b)` + ttyType + `[0-9]+\b`)
	ttyPtsSlash    = regexp.MustCompile(`(?:/dev/|\b)pts/[0-9]+\b`)
)

func isTTY(value string) bool {
	return ttyAnchored.MatchString(value) || ttyPtsAnchored.MatchString(value)
}

// TTY returns the `tty` category: optional "/dev/" prefix, a known TTY
// device type, trailing digits. Also recognizes the "pts/N" slash form.
func TTY() Category {
	return Category{
		Name:     "tty",
		Validate: isTTY,
		Extract:  extractTTY,
	}
}

func extractTTY(text string) []Match {
	var out []Match

	for _, loc := range ttyCandidate.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}

	for _, loc := range ttyPtsSlash.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}

	return out
}
