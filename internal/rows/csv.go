package rows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// readCSV yields every record as a row of strings. Records may differ in
// length.
func readCSV(r io.Reader, yield func([]any, error) bool) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode csv: %w", err)
		}
		if !yield(fields(rec), nil) {
			return nil
		}
	}
}

func fields(rec []string) []any {
	row := make([]any, len(rec))
	for i, f := range rec {
		row[i] = f
	}
	return row
}
