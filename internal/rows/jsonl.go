package rows

import (
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// readJSONL decodes one row per line. Blank lines are skipped.
func readJSONL(r io.Reader, yield func([]any, error) bool) error {
	sc := newScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := oj.ParseString(text)
		if err != nil {
			return fmt.Errorf("decode jsonl line %d: %w", line, err)
		}
		if !yield(toRow(v), nil) {
			return nil
		}
	}
	return sc.Err()
}
