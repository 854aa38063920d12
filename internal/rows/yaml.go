package rows

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// readYAML decodes a stream of documents. A document holding a list
// contributes one row per element.
func readYAML(r io.Reader, yield func([]any, error) bool) error {
	dec := yaml.NewDecoder(r)
	for doc := 1; ; doc++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode yaml document %d: %w", doc, err)
		}
		items, ok := v.([]any)
		if !ok {
			items = []any{v}
		}
		for _, item := range items {
			if !yield(toRow(item), nil) {
				return nil
			}
		}
	}
}
