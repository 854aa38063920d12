package cli

import (
	"gopkg.in/yaml.v3"

	"github.com/bjaus/strfmt"
)

// decodeArgs turns command-line arguments into template arguments.
func decodeArgs(args []string, raw bool) []any {
	out := make([]any, len(args))
	for i, s := range args {
		out[i] = decodeArg(s, raw)
	}
	return out
}

// decodeArg reads s as a YAML literal so that 42 is a number and
// [a, b] a list. Text that is empty, holds placeholder syntax, decodes to
// null or fails to decode is kept as a string.
func decodeArg(s string, raw bool) any {
	if raw || s == "" || strfmt.HasPlaceholders(s) {
		return s
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return s
	}
	return v
}
