// Package pattern holds the fixed, process-wide catalogue of token
// categories (email, ip, dnsname, url, mac, phonenumber, pid, time, tty,
// address, username, guid, realname, uid). Each category carries a
// validator (does a candidate string in isolation match this category?)
// and, for categories an extractor makes sense for, an extractor (find all
// occurrences inside a free-text line).
package pattern

import "sort"

// Match is a single occurrence an Extractor found inside a line, carrying
// the byte offsets of the match so callers can reason about overlap (e.g.
// excluding DNS matches that fall inside an email span).
type Match struct {
	Value string
	Start int
	End   int
}

// Validator reports whether value, taken on its own, belongs to a category.
type Validator func(value string) bool

// Extractor finds every occurrence of a category's pattern inside text,
// preserving duplicates. An extractor built from several sub-patterns
// returns each sub-pattern's matches in turn; Registry.ExtractAll puts each
// category's matches in textual order.
type Extractor func(text string) []Match

// Category is a named pattern family: a validator every category has, and
// an optional extractor (validator-only categories such as guid, realname,
// and uid leave Extract nil).
type Category struct {
	Name     string
	Validate Validator
	Extract  Extractor
}

// Registry is a static, immutable-after-construction table mapping
// category name to its Category. It is the only process-lifetime singleton
// in this module; everything else is scoped to a single run.
type Registry struct {
	order      []string
	categories map[string]Category
}

// NewRegistry builds a Registry from the given categories, preserving the
// order they were passed in. Registration order is what determines the
// order findings for a single line are emitted in.
func NewRegistry(categories ...Category) *Registry {
	r := &Registry{
		order:      make([]string, 0, len(categories)),
		categories: make(map[string]Category, len(categories)),
	}

	for _, c := range categories {
		if _, exists := r.categories[c.Name]; exists {
			continue
		}

		r.order = append(r.order, c.Name)
		r.categories[c.Name] = c
	}

	return r
}

// Names returns the category names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Category looks up a single category by name.
func (r *Registry) Category(name string) (Category, bool) {
	c, ok := r.categories[name]

	return c, ok
}

// Has reports whether name is a known category.
func (r *Registry) Has(name string) bool {
	_, ok := r.categories[name]

	return ok
}

// Classify runs every validator on value and returns the set of matching
// category names, sorted for determinism. An empty value always yields an
// empty set.
func (r *Registry) Classify(value string) []string {
	if value == "" {
		return nil
	}

	var matches []string

	for _, name := range r.order {
		if r.categories[name].Validate(value) {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)

	return matches
}

// ExtractAll runs every category's extractor (categories without one are
// skipped) against line in registration order, returning each category's
// matches in textual order (by start offset), duplicates preserved.
// exclude names categories whose extractors should be skipped entirely.
func (r *Registry) ExtractAll(line string, exclude map[string]bool) []CategoryMatch {
	var out []CategoryMatch

	for _, name := range r.order {
		if exclude[name] {
			continue
		}

		c := r.categories[name]
		if c.Extract == nil {
			continue
		}

		matches := c.Extract(line)
		sort.SliceStable(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })

		for _, m := range matches {
			out = append(out, CategoryMatch{Category: name, Match: m})
		}
	}

	return out
}

// CategoryMatch pairs an extractor Match with the category name it came from.
type CategoryMatch struct {
	Category string
	Match    Match
}

// Default is the process-wide registry of all fourteen categories this
// module knows about. It is built once, at init time, and never mutated.
var Default = NewRegistry(
	Email(),
	IP(),
	DNSName(),
	URL(),
	MAC(),
	PhoneNumber(),
	PID(),
	Time(),
	TTY(),
	Address(),
	Username(),
	GUID(),
	RealName(),
	UID(),
)
