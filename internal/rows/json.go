package rows

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ohler55/ojg/oj"
)

func readJSON(r io.Reader, yield func([]any, error) bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	v, err := oj.Parse(data)
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	items, ok := v.([]any)
	if !ok {
		yield(toRow(v), nil)
		return nil
	}
	for _, item := range items {
		if !yield(toRow(item), nil) {
			return nil
		}
	}
	return nil
}
