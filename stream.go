package strfmt

import (
	"fmt"
	"io"
	"iter"
)

// Write renders tmpl with args using the default engine and writes the
// result to w followed by a newline.
func Write(w io.Writer, tmpl string, args ...any) error {
	return std.Write(w, tmpl, args...)
}

// WriteIter renders tmpl once per argument row from seq using the default
// engine. See [Engine.WriteIter].
func WriteIter(w io.Writer, tmpl string, seq iter.Seq[[]any]) error {
	return std.WriteIter(w, tmpl, seq)
}

// WriteChan renders tmpl once per argument row received from ch using the
// default engine.
func WriteChan(w io.Writer, tmpl string, ch <-chan []any) error {
	return std.WriteChan(w, tmpl, ch)
}

// Write renders tmpl with args and writes the result to w followed by a
// newline. Nothing is written when formatting fails.
func (e *Engine) Write(w io.Writer, tmpl string, args ...any) error {
	s, err := e.Format(tmpl, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// WriteIter renders tmpl once per argument row and writes each line as it
// arrives. It stops at the first error, which is annotated with the
// one-based row number; lines for earlier rows have already been written.
func (e *Engine) WriteIter(w io.Writer, tmpl string, seq iter.Seq[[]any]) error {
	var streamErr error
	row := 0
	seq(func(args []any) bool {
		row++
		if err := e.Write(w, tmpl, args...); err != nil {
			streamErr = fmt.Errorf("row %d: %w", row, err)
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan is a thin wrapper around [Engine.WriteIter]. On error the
// channel is not drained.
func (e *Engine) WriteChan(w io.Writer, tmpl string, ch <-chan []any) error {
	return e.WriteIter(w, tmpl, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
