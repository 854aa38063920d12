package rows

import "io"

// readPlain yields each line as a single argument.
func readPlain(r io.Reader, yield func([]any, error) bool) error {
	sc := newScanner(r)
	for sc.Scan() {
		if !yield([]any{sc.Text()}, nil) {
			return nil
		}
	}
	return sc.Err()
}
