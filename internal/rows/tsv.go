package rows

import (
	"io"
	"strings"
)

func readTSV(r io.Reader, yield func([]any, error) bool) error {
	sc := newScanner(r)
	for sc.Scan() {
		if !yield(fields(strings.Split(sc.Text(), "\t")), nil) {
			return nil
		}
	}
	return sc.Err()
}
