// Package rows decodes argument rows for the strfmt command. Each row is
// the argument list of one rendered line.
package rows

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
)

// ErrUnsupportedFormat is returned for unknown input format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names an input encoding.
type Format string

const (
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	TSV   Format = "tsv"
	Plain Format = "plain"
)

var formats = []Format{JSON, JSONL, YAML, CSV, TSV, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Read decodes rows from r as they are needed. A decoding error is yielded
// once, after which the sequence ends.
//
// JSON and YAML values that are arrays become the argument list; any other
// value becomes a single argument. A top-level JSON array, or a YAML
// document holding a list, is a sequence of rows.
func Read(r io.Reader, f Format) iter.Seq2[[]any, error] {
	return func(yield func([]any, error) bool) {
		var err error
		switch f {
		case JSON:
			err = readJSON(r, yield)
		case JSONL:
			err = readJSONL(r, yield)
		case YAML:
			err = readYAML(r, yield)
		case CSV:
			err = readCSV(r, yield)
		case TSV:
			err = readTSV(r, yield)
		case Plain:
			err = readPlain(r, yield)
		default:
			err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
		}
		if err != nil {
			yield(nil, err)
		}
	}
}

// Skip drops the first n rows of seq. Errors are never dropped.
func Skip(seq iter.Seq2[[]any, error], n int) iter.Seq2[[]any, error] {
	return func(yield func([]any, error) bool) {
		for row, err := range seq {
			if err == nil && n > 0 {
				n--
				continue
			}
			if !yield(row, err) {
				return
			}
		}
	}
}

// toRow turns a decoded value into an argument list.
func toRow(v any) []any {
	if row, ok := v.([]any); ok {
		return row
	}
	return []any{v}
}

// maxLine bounds a single line of line-oriented input.
const maxLine = 16 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLine)
	return sc
}
