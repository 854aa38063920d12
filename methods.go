package strfmt

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Method is a callable registered on an [Engine] with [WithMethod]. It
// receives the current path value and the literal call arguments. Returning
// false ends the path with nil.
type Method func(recv any, args []string) (any, bool)

// Invoker is implemented by values that handle their own method calls.
// Returning false defers to registered and built-in methods.
type Invoker interface {
	Invoke(name string, args []string) (any, bool)
}

// invoke calls name on v.
func (e *Engine) invoke(v any, name string, args []string) (any, bool) {
	if in, ok := v.(Invoker); ok {
		if got, ok := in.Invoke(name, args); ok {
			return got, true
		}
	}
	if m, ok := e.methods[name]; ok {
		return m(v, args)
	}
	return builtin(v, name, args)
}

// builtin dispatches the allow-listed methods by receiver kind.
func builtin(v any, name string, args []string) (any, bool) {
	if s, ok := text(v); ok {
		return stringMethod(s, name, args)
	}
	if f, ok := toFloat(v); ok {
		return numberMethod(f, name, args)
	}
	if items, ok := sliceItems(v); ok {
		return sliceMethod(items, name, args)
	}
	if name == "toString" && len(args) == 0 {
		return stringify(v), true
	}
	return nil, false
}

func stringMethod(s, name string, args []string) (any, bool) {
	switch name {
	case "toUpperCase":
		return cases.Upper(language.Und).String(s), len(args) == 0
	case "toLowerCase":
		return cases.Lower(language.Und).String(s), len(args) == 0
	case "trim":
		return strings.TrimSpace(s), len(args) == 0
	case "trimStart":
		return strings.TrimLeftFunc(s, unicode.IsSpace), len(args) == 0
	case "trimEnd":
		return strings.TrimRightFunc(s, unicode.IsSpace), len(args) == 0
	case "toString":
		return s, len(args) == 0
	case "slice":
		runes := []rune(s)
		start, end, ok := sliceBounds(args, len(runes))
		if !ok {
			return nil, false
		}
		return string(runes[start:end]), true
	case "substring":
		runes := []rune(s)
		start, end, ok := substringBounds(args, len(runes))
		if !ok {
			return nil, false
		}
		return string(runes[start:end]), true
	case "charAt":
		i, ok := intArg(args, 0, 0)
		if !ok {
			return nil, false
		}
		got, found := stringMember(s, strconv.Itoa(i))
		if !found {
			return "", true
		}
		return got, true
	case "indexOf":
		if len(args) != 1 {
			return nil, false
		}
		i := strings.Index(s, args[0])
		if i < 0 {
			return -1, true
		}
		return utf8.RuneCountInString(s[:i]), true
	case "includes":
		return strings.Contains(s, firstArg(args)), len(args) == 1
	case "startsWith":
		return strings.HasPrefix(s, firstArg(args)), len(args) == 1
	case "endsWith":
		return strings.HasSuffix(s, firstArg(args)), len(args) == 1
	case "replace", "replaceAll":
		if len(args) != 2 {
			return nil, false
		}
		n := 1
		if name == "replaceAll" {
			n = -1
		}
		return strings.Replace(s, args[0], args[1], n), true
	case "split":
		if len(args) == 0 {
			return []any{s}, true
		}
		parts := strings.Split(s, args[0])
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = p
		}
		return out, true
	case "repeat":
		n, ok := intArg(args, 0, 0)
		if !ok || n < 0 || (n > 0 && len(s) > MaxOutput/n) {
			return nil, false
		}
		return strings.Repeat(s, n), true
	case "padStart", "padEnd":
		n, ok := intArg(args, 0, 0)
		if !ok || len(args) == 0 || n > MaxOutput {
			return nil, false
		}
		fill := " "
		if len(args) > 1 {
			fill = args[1]
		}
		return padString(s, n, fill, name == "padStart"), true
	default:
		return nil, false
	}
}

func numberMethod(f float64, name string, args []string) (any, bool) {
	switch name {
	case "toFixed":
		digits, ok := intArg(args, 0, 0)
		if !ok || digits < 0 || digits > 100 {
			return nil, false
		}
		if math.Abs(f) >= 1e21 {
			return numberString(f), true
		}
		return fixed(f, digits), true
	case "toExponential":
		digits, ok := intArg(args, 0, -1)
		if !ok || digits < -1 || digits > 100 {
			return nil, false
		}
		if digits < 0 {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return numberString(f), true
			}
			return trimExponent(strconv.FormatFloat(f, 'e', -1, 64)), true
		}
		return exponential(f, digits), true
	case "toString":
		radix, ok := intArg(args, 0, 10)
		if !ok || radix < 2 || radix > 36 {
			return nil, false
		}
		if radix == 10 {
			return numberString(f), true
		}
		if f != math.Trunc(f) || math.Abs(f) >= 1<<63 {
			return nil, false
		}
		return strconv.FormatInt(int64(f), radix), true
	default:
		return nil, false
	}
}

func sliceMethod(items []any, name string, args []string) (any, bool) {
	switch name {
	case "join":
		sep := ","
		if len(args) > 0 {
			sep = args[0]
		}
		return joinValues(items, sep), len(args) <= 1
	case "toString":
		return joinValues(items, ","), len(args) == 0
	case "slice":
		start, end, ok := sliceBounds(args, len(items))
		if !ok {
			return nil, false
		}
		return items[start:end], true
	case "includes":
		return indexOfItem(items, firstArg(args)) >= 0, len(args) == 1
	case "indexOf":
		return indexOfItem(items, firstArg(args)), len(args) == 1
	default:
		return nil, false
	}
}

// sliceItems copies any slice or array into a []any.
func sliceItems(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// indexOfItem compares items by their string form, since call arguments
// are always strings.
func indexOfItem(items []any, want string) int {
	for i, item := range items {
		if stringify(item) == want {
			return i
		}
	}
	return -1
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// intArg parses args[i], returning def when the argument is absent.
func intArg(args []string, i, def int) (int, bool) {
	if i >= len(args) {
		return def, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[i]))
	if err != nil {
		return 0, false
	}
	return n, true
}

// sliceBounds resolves slice(start, end) where negative positions count
// from the end.
func sliceBounds(args []string, n int) (int, int, bool) {
	start, ok := intArg(args, 0, 0)
	if !ok {
		return 0, 0, false
	}
	end, ok := intArg(args, 1, n)
	if !ok {
		return 0, 0, false
	}
	start, end = relative(start, n), relative(end, n)
	if end < start {
		end = start
	}
	return start, end, true
}

func relative(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// substringBounds resolves substring(start, end): negatives clamp to zero
// and the bounds are swapped when reversed.
func substringBounds(args []string, n int) (int, int, bool) {
	start, ok := intArg(args, 0, 0)
	if !ok {
		return 0, 0, false
	}
	end, ok := intArg(args, 1, n)
	if !ok {
		return 0, 0, false
	}
	start, end = min(max(start, 0), n), min(max(end, 0), n)
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// padString pads s to n runes with repetitions of fill, cut to fit.
func padString(s string, n int, fill string, start bool) string {
	need := n - utf8.RuneCountInString(s)
	if need <= 0 || fill == "" {
		return s
	}
	f := []rune(strings.Repeat(fill, need/utf8.RuneCountInString(fill)+1))[:need]
	if start {
		return string(f) + s
	}
	return s + string(f)
}
