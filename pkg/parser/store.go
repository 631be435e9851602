package parser

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"slices"
	"strings"
	"unicode/utf8"
)

// Encoding is the only text encoding log files are read with.
const Encoding = "utf-8"

// Collection is the ordered set of records loaded from one log file.
// Order matches line order in the file; duplicates are kept.
// A Collection is never modified after Load returns it.
type Collection struct {
	source  string
	records []Record
	lines   int
	skipped int
}

// Records returns a copy of the records in file order.
func (c *Collection) Records() []Record {
	return slices.Clone(c.records)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Empty reports whether no line produced a record.
func (c *Collection) Empty() bool {
	return len(c.records) == 0
}

// Source returns the path the collection was loaded from.
func (c *Collection) Source() string {
	return c.source
}

// Lines returns the number of physical lines read.
func (c *Collection) Lines() int {
	return c.lines
}

// Skipped returns the number of non-blank lines the parser rejected.
func (c *Collection) Skipped() int {
	return c.skipped
}

// LoadOption configures Load and LoadReader.
type LoadOption func(*loadOptions)

type loadOptions struct {
	onSkip func(lineNum int, line string)
}

// WithSkipHook registers fn to be called for each non-blank line that does
// not parse into a record. Blank lines are not reported.
func WithSkipHook(fn func(lineNum int, line string)) LoadOption {
	return func(o *loadOptions) {
		o.onSkip = fn
	}
}

// Load reads the log file at path and parses every line.
// Lines that do not parse are dropped. An empty result is not an error.
//
// Failures are returned as *LoadError; classify them with errors.Is against
// ErrNotFound, ErrDecode or ErrIO.
func Load(ctx context.Context, path string, opts ...LoadOption) (*Collection, error) {
	rc, err := openLog(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Kind: KindIO, Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()

	return LoadReader(ctx, rc, path, opts...)
}

// LoadReader parses all lines from r. source is recorded on the collection
// and used in error messages.
func LoadReader(ctx context.Context, r io.Reader, source string, opts ...LoadOption) (*Collection, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Kind: KindIO, Path: source, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &LoadError{Kind: KindDecode, Path: source, Line: firstInvalidLine(data)}
	}

	// \r\n, \r and \n all end a line.
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	coll := &Collection{source: source}
	for line := range strings.Lines(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		coll.lines++

		rec, ok := ParseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				coll.skipped++
				if o.onSkip != nil {
					o.onSkip(coll.lines, strings.TrimRight(line, "\n"))
				}
			}
			continue
		}
		coll.records = append(coll.records, rec)
	}

	return coll, nil
}

// firstInvalidLine returns the 1-based line number holding the first byte
// sequence that is not valid UTF-8.
func firstInvalidLine(data []byte) int {
	line := 1
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return line
		}
		if r == '\n' {
			line++
		}
		data = data[size:]
	}
	return line
}
