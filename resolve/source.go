package resolve

import (
	"bufio"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/logident/logident/finding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source is a re-streamable collection of Findings. The resolver reads it
// multiple times (once per algorithm pass); ForEach must replay the same
// Findings, in the same order, on every call. Implementations backing
// large files should re-open/re-decode rather than retain every Finding in
// memory, which is what makes the streaming path viable.
type Source interface {
	ForEach(visit func(finding.Finding) error) error
}

// SliceSource wraps an in-memory slice of Findings. Each pass simply
// re-ranges the slice; suitable whenever the caller already holds the full
// Finding collection in memory.
type SliceSource []finding.Finding

// ForEach visits every Finding in the slice, in order.
func (s SliceSource) ForEach(visit func(finding.Finding) error) error {
	for _, f := range s {
		if err := visit(f); err != nil {
			return err
		}
	}

	return nil
}

// JSONFileSource re-opens and re-decodes a JSON array of Findings on every
// pass, so the resolver never needs to hold the full collection in memory
// at once. This backs the streaming path for inputs exceeding the
// in-memory threshold.
type JSONFileSource struct {
	Path string
}

// ForEach streams the JSON array at Path, decoding one Finding at a time.
func (s JSONFileSource) ForEach(visit func(finding.Finding) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return errors.Wrapf(err, "opening finding source %q", s.Path)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 1<<20)

	dec := json.NewDecoder(br)

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrapf(err, "reading finding source %q", s.Path)
	}

	if delim, ok := tok.(jsoniter.Delim); !ok || delim != '[' {
		return errors.Errorf("finding source %q: expected JSON array", s.Path)
	}

	for dec.More() {
		var rec finding.Finding

		if err := dec.Decode(&rec); err != nil {
			return errors.Wrapf(err, "decoding finding record in %q", s.Path)
		}

		if err := visit(rec); err != nil {
			return err
		}
	}

	return nil
}
