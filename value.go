package strfmt

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// toFloat returns the float64 value of any Go numeric kind.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// text returns the value of any Go string kind.
func text(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// isNumeric reports whether v is a finite number or a string holding one.
// Blank strings are not numeric.
func isNumeric(v any) bool {
	f, ok := toFloat(v)
	if s, isText := text(v); isText {
		if strings.TrimSpace(s) == "" {
			return false
		}
		f, ok = parseNumber(s), true
	}
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// toNumber coerces v to a float64. Values with no numeric reading yield NaN.
func toNumber(v any) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	if s, ok := text(v); ok {
		if strings.TrimSpace(s) == "" {
			return 0
		}
		return parseNumber(s)
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return math.NaN()
}

// parseNumber reads decimal notation, 0x/0o/0b integers and the words
// Infinity and -Infinity. Anything else, including the other spellings
// strconv accepts (inf, nan, hex floats, underscores), is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if n, err := strconv.ParseUint(s[2:], digitBase(s[1]), 64); err == nil {
			return float64(n)
		}
		return math.NaN()
	}
	if strings.ContainsFunc(s, func(r rune) bool { return !strings.ContainsRune("0123456789+-.eE", r) }) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f
	}
	return math.NaN()
}

func digitBase(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	default:
		return 2
	}
}

// parseIntPrefix reads the longest run of base digits after optional
// whitespace, sign and, for base 16, a 0x prefix. No digits yields NaN.
func parseIntPrefix(s string, base int) float64 {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if base == 16 && len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	var n float64
	digits := 0
	for _, r := range s {
		d := digitValue(r)
		if d < 0 || d >= base {
			break
		}
		n = n*float64(base) + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	if neg {
		n = -n
	}
	return n
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// numberString renders f the way a number prints by default: integral
// values without a fraction, shortest round-trip digits otherwise, and
// exponent notation outside [1e-6, 1e21).
func numberString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops leading zeros from an exponent: 1e-07 becomes 1e-7.
func trimExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 || i+2 > len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// stringify coerces any value to text. Structured values without a String
// method are rendered as JSON.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case []any:
		return joinValues(x, ",")
	}
	if s, ok := text(v); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return numberString(rv.Float())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return joinValues(items, ",")
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
	}
	return oj.JSON(v, &oj.Options{Sort: true, UseTags: true})
}

func joinValues(items []any, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if item != nil {
			parts[i] = stringify(item)
		}
	}
	return strings.Join(parts, sep)
}

// scalar returns the text of a final replacement value. Only strings and
// numbers qualify.
func scalar(v any) (string, bool) {
	if s, ok := text(v); ok {
		return s, true
	}
	if _, ok := toFloat(v); ok {
		return stringify(v), true
	}
	return "", false
}

// isEmpty reports whether v should give way to an alternate literal: nil,
// "", false, zero and NaN do.
func isEmpty(v any) bool {
	if isNil(v) {
		return true
	}
	if s, ok := text(v); ok {
		return s == ""
	}
	if f, ok := toFloat(v); ok {
		return f == 0 || math.IsNaN(f)
	}
	if b, ok := v.(bool); ok {
		return !b
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
