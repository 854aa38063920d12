package strfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Every error returned by
// the engine is a [*FormatError] that unwraps to one of these.
var (
	ErrInvalidIndex       = errors.New("invalid index")
	ErrTooManyRecursions  = errors.New("too many recursions")
	ErrInvalidReplacement = errors.New("replacement is not a string or number")
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrOutputTooLarge     = errors.New("output too large")
)

// FormatError carries the diagnostic context of a failed format call.
type FormatError struct {
	// Kind is one of the package sentinel errors.
	Kind error

	// Template is the template being scanned when the error occurred. For
	// nested formatting this is the nested template, not the outermost one.
	Template string

	// Args is the full argument list.
	Args []any

	// Match is the placeholder text (or modifier text for recursion errors).
	Match string

	// Index is the offending argument index, or -1 when not applicable.
	Index int

	// Value is the offending replacement value for ErrInvalidReplacement,
	// ErrInvalidTemplate and ErrOutputTooLarge.
	Value any

	// Result is the latest expansion for ErrTooManyRecursions.
	Result string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch e.Kind {
	case ErrInvalidIndex:
		if e.Index < 0 {
			return fmt.Sprintf("%s: %s", e.Kind, e.Match)
		}
		return fmt.Sprintf("%s: %d in %s (%d args)", e.Kind, e.Index, e.Match, len(e.Args))
	case ErrTooManyRecursions:
		if e.Result == "" {
			return fmt.Sprintf("%s: %q", e.Kind, e.Match)
		}
		return fmt.Sprintf("%s: %q expanded to %q", e.Kind, e.Match, e.Result)
	case ErrInvalidReplacement:
		return fmt.Sprintf("%s: %s resolved to %T", e.Kind, e.Match, e.Value)
	case ErrOutputTooLarge:
		return fmt.Sprintf("%s: %s exceeds %d bytes", e.Kind, e.Match, MaxOutput)
	default:
		return fmt.Sprintf("%s: %T", e.Kind, e.Value)
	}
}

// Unwrap returns the sentinel kind so errors.Is works against it.
func (e *FormatError) Unwrap() error {
	return e.Kind
}

// Details returns the diagnostic context as a flat map, suitable for
// structured logging.
func (e *FormatError) Details() map[string]any {
	d := map[string]any{
		"template": e.Template,
		"args":     len(e.Args),
		"match":    e.Match,
	}
	if e.Index >= 0 {
		d["index"] = e.Index
	}
	if e.Value != nil {
		d["value_type"] = fmt.Sprintf("%T", e.Value)
	}
	if e.Result != "" {
		d["result"] = e.Result
	}
	return d
}
