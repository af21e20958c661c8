// Package extractpipe implements the extraction stage: the selected lines
// of a line source are read into memory and split into chunks, chunks are
// extracted concurrently (each one sequentially, in line order), and chunk
// results are reassembled in chunk order so the final Finding stream is
// ordered by increasing line number.
package extractpipe

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"regexp"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/logident/logident/classify"
	"github.com/logident/logident/finding"
)

const defaultChunkSize = 10000

var (
	isoTimestamp    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`)
	syslogTimestamp = regexp.MustCompile(`^[A-Z][a-z]{2}\s+\d{1,2}\s\d{2}:\d{2}:\d{2}`)
)

// leadingTimestamp extracts the per-line timestamp per the extraction
// stage's rule: ISO first, then syslog ("Mon DD HH:MM:SS"), then empty.
func leadingTimestamp(line string) string {
	if ts := isoTimestamp.FindString(line); ts != "" {
		return ts
	}

	return syslogTimestamp.FindString(line)
}

// LineSource is a restartable source of line-oriented text: Open may be
// called more than once across separate runs of the same configuration.
type LineSource interface {
	Open() (io.ReadCloser, error)
}

// FileSource reads lines from a file on disk.
type FileSource struct {
	Path string
}

// Open opens the underlying file for reading.
func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening input file %q", s.Path)
	}

	return f, nil
}

// ReaderSource wraps an in-memory byte slice as a LineSource, primarily
// for tests and in-process callers that already hold the text.
type ReaderSource struct {
	Data []byte
}

// Open returns a fresh reader over the in-memory data.
func (s ReaderSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// Config holds the extraction stage's enumerated options.
type Config struct {
	// Limit caps the number of lines processed. Zero means unbounded.
	Limit int64
	// SampleRate processes only lines where line_number mod SampleRate == 0.
	// Zero or one disables sampling (every line is processed).
	SampleRate int64
	// Exclude names categories whose extractors are skipped.
	Exclude map[string]bool
	// ChunkSize is the number of lines grouped per parallel extraction unit.
	// Zero selects defaultChunkSize.
	ChunkSize int
	// Threads bounds worker-goroutine concurrency. Zero selects
	// runtime.NumCPU().
	Threads int
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return defaultChunkSize
	}

	return c.ChunkSize
}

func (c Config) threads() int {
	if c.Threads <= 0 {
		return runtime.NumCPU()
	}

	return c.Threads
}

func (c Config) sampleRate() int64 {
	if c.SampleRate <= 0 {
		return 1
	}

	return c.SampleRate
}

// Result is the extraction stage's output: the ordered Finding stream plus
// the count of lines that were actually fed through extraction.
type Result struct {
	Findings            []finding.Finding
	TotalLinesProcessed int64
}

// Pipeline runs the extraction stage. Its zero value is usable; Logger may
// be left nil, in which case extraction proceeds silently.
type Pipeline struct {
	Logger *zap.Logger
}

// New builds a Pipeline that logs through logger.
func New(logger *zap.Logger) *Pipeline {
	return &Pipeline{Logger: logger}
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}

	return p.Logger
}

type rawLine struct {
	number int64
	text   string
}

// Run reads lines from src, applies limit/sample_rate, extracts categories
// from each selected line in parallel chunks, and reassembles the Finding
// stream in line-number order.
func (p *Pipeline) Run(ctx context.Context, src LineSource, cfg Config) (*Result, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	lines, err := readSelectedLines(rc, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "reading input lines")
	}

	p.logger().Debug("extraction lines selected",
		zap.Int("selected_lines", len(lines)),
		zap.Int64("sample_rate", cfg.sampleRate()),
		zap.Int64("limit", cfg.Limit),
	)

	chunks := chunkLines(lines, cfg.chunkSize())

	chunkFindings := make([][]finding.Finding, len(chunks))

	sem := make(chan struct{}, cfg.threads())

	var wg sync.WaitGroup

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "extraction cancelled")
		}

		wg.Add(1)

		sem <- struct{}{}

		go func(i int, chunk []rawLine) {
			defer wg.Done()
			defer func() { <-sem }()

			chunkFindings[i] = extractChunk(chunk, cfg.Exclude)
		}(i, chunk)
	}

	wg.Wait()

	var out []finding.Finding
	for _, f := range chunkFindings {
		out = append(out, f...)
	}

	p.logger().Info("extraction complete",
		zap.Int64("lines_processed", int64(len(lines))),
		zap.Int("findings", len(out)),
	)

	return &Result{Findings: out, TotalLinesProcessed: int64(len(lines))}, nil
}

func readSelectedLines(r io.Reader, cfg Config) ([]rawLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	rate := cfg.sampleRate()

	var lines []rawLine

	var lineNo int64

	for scanner.Scan() {
		lineNo++

		if cfg.Limit > 0 && int64(len(lines)) >= cfg.Limit {
			break
		}

		if lineNo%rate != 0 {
			continue
		}

		lines = append(lines, rawLine{number: lineNo, text: scanner.Text()})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func chunkLines(lines []rawLine, size int) [][]rawLine {
	if len(lines) == 0 {
		return nil
	}

	var chunks [][]rawLine

	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}

		chunks = append(chunks, lines[start:end])
	}

	return chunks
}

// extractChunk processes one chunk sequentially, in line order.
func extractChunk(chunk []rawLine, exclude map[string]bool) []finding.Finding {
	var out []finding.Finding

	for _, rl := range chunk {
		ts := leadingTimestamp(rl.text)

		if ts != "" {
			out = append(out, finding.Finding{
				Line:      rl.number,
				Timestamp: ts,
				Type:      "time",
				Value:     ts,
			})
		}

		for _, e := range classify.ExtractAll(rl.text, exclude) {
			out = append(out, finding.Finding{
				Line:      rl.number,
				Timestamp: ts,
				Type:      e.Category,
				Value:     e.Value,
			})
		}
	}

	return out
}
