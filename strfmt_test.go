package strfmt_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/strfmt"
)

// --- Test types ---

type user struct {
	Name string
	Tags []string
}

// record exposes computed members and methods.
type record struct {
	fields map[string]any
}

func (r record) Member(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

func (r record) Invoke(name string, args []string) (any, bool) {
	if name != "get" || len(args) != 1 {
		return nil, false
	}
	return r.Member(args[0])
}

func TestFormatBasic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{"string", "{0}", []any{"x"}, "x"},
		{"int", "{0}", []any{42}, "42"},
		{"float", "{0}", []any{3.5}, "3.5"},
		{"int64", "{0}", []any{int64(7)}, "7"},
		{"uint8", "{0}", []any{uint8(200)}, "200"},
		{"no placeholders", "plain text", nil, "plain text"},
		{"padded string kept", "{0}", []any{"  x  "}, "  x  "},
		{"surrounding text", "a{0}b{1}c", []any{1, 2}, "a1b2c"},
		{"repeated index", "{0}{0}", []any{"ab"}, "abab"},
		{"out of order", "{1} {0}", []any{"world", "hello"}, "hello world"},
		{"braces without digit", "{x} {0}", []any{"y"}, "{x} y"},
		{"nested argument", "{0}", []any{"Hi {1}", "Bob"}, "Hi Bob"},
		{"unparsed trailing text", "{0!}", []any{"x"}, "x!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.Format(tt.tmpl, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSpec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tmpl string
		arg  any
		want string
	}{
		{"right", "{0:>5}", "x", "    x"},
		{"left", "{0:<5}", "x", "x    "},
		{"center", "{0:^5}", "x", "  x  "},
		{"center odd padding", "{0:^4}", "x", "  x "},
		{"string default left", "{0:6}", "ab", "ab    "},
		{"number default right", "{0:6}", 42, "    42"},
		{"fill", "{0:*^7}", "x", "***x***"},
		{"zero pad negative", "{0:05d}", -3, "-0003"},
		{"zero pad plus", "{0:+05d}", 42, "+0042"},
		{"hex", "{0:x}", 255, "ff"},
		{"hex upper", "{0:X}", 255, "FF"},
		{"binary", "{0:b}", 5, "101"},
		{"octal", "{0:o}", 8, "10"},
		{"decimal rounds", "{0:d}", 2.6, "3"},
		{"char", "{0:c}", 65, "A"},
		{"hex from string", "{0:x}", "255", "ff"},
		{"percent", "{0:.1%}", 0.256, "25.6%"},
		{"percent default", "{0:%}", 0.5, "50%"},
		{"grouping", "{0:,}", 1234567, "1,234,567"},
		{"grouping fixed", "{0:,.2f}", 1234567.891, "1,234,567.89"},
		{"grouping big integer", "{0:,d}", 1e20, "100,000,000,000,000,000,000"},
		{"grouping short", "{0:,}", 123, "123"},
		{"fixed", "{0:.2f}", 3.14159, "3.14"},
		{"inferred precision", "{0:.2}", 3.14159, "3.14"},
		{"exponent", "{0:e}", 1500, "1.5e+3"},
		{"exponent upper precision", "{0:.2E}", 1500, "1.50E+3"},
		{"plus sign", "{0:+d}", 5, "+5"},
		{"plus sign flips negative", "{0:+d}", -5, "+5"},
		{"space sign", "{0: d}", 5, "5"},
		{"space sign negative", "{0: d}", -5, "-5"},
		{"sign after padding", "{0:=+8.2f}", -3.5, "+   3.50"},
		{"repeat", "{0:*3}", "ab", "ababab"},
		{"repeat then pad", "{0:*2>6}", "ab", "  abab"},
		{"truncate", "{0:.3s}", "abcdef", "abc"},
		{"truncate caps width", "{0:10.3}", "abcdef", "abc"},
		{"number as string", "{0:s}", 42, "42"},
		{"not a number", "{0:d}", "abc", "NaN"},
		{"wide characters", "{0:>4}", "你", "  你"},
		{"invalid spec ignored", "{0:zz}", "v", "v"},
		{"fixed half rounds up", "{0:.0f}", 2.5, "3"},
		{"decimal half rounds up", "{0:d}", 2.5, "3"},
		{"fixed negative half", "{0:.0f}", -2.5, "-3"},
		{"fixed exact binary half", "{0:.2f}", 0.125, "0.13"},
		{"fixed below half", "{0:.2f}", 1.005, "1.00"},
		{"fixed leading zeros", "{0:.3f}", 0.05, "0.050"},
		{"exponent half rounds up", "{0:.1e}", 125, "1.3e+2"},
		{"exponent carries into next power", "{0:.1e}", 9.96, "1.0e+1"},
		{"exponent of zero", "{0:.2e}", 0, "0.00e+0"},
		{"exponent small", "{0:.1e}", 0.00015, "1.5e-4"},
		{"inf word stays text", "{0:>8}", "inf", "     inf"},
		{"hex float stays text", "{0:>7}", "0x1p-2", " 0x1p-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.Format(tt.tmpl, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNestedModifier(t *testing.T) {
	t.Parallel()
	got, err := strfmt.Format("{0:{1}}", 3.14159, ".2f")
	require.NoError(t, err)
	assert.Equal(t, "3.14", got)

	got, err = strfmt.Format("{0:>{1}}", "x", 3)
	require.NoError(t, err)
	assert.Equal(t, "  x", got)
}

func TestFormatConverters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tmpl string
		arg  any
		want string
	}{
		{"negate", "{0!-d}", "5", "-5"},
		{"stringify", "{0!s}", 5, "5"},
		{"stringify then pad", "{0!s:>4}", 7, "   7"},
		{"hex", "{0!x}", "ff", "255"},
		{"hex prefix", "{0!x}", "0x1f", "31"},
		{"binary", "{0!b}", "101", "5"},
		{"decimal prefix", "{0!d}", "42abc", "42"},
		{"no digits", "{0!x}", "zz", "NaN"},
		{"unknown code", "{0!q}", "v", "v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.Format(tt.tmpl, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()
	doc := map[string]any{
		"name":  "Ann",
		"items": []any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		"empty": "",
		"off":   false,
		"zero":  0,
		"none":  nil,
	}
	tests := []struct {
		name string
		tmpl string
		arg  any
		want string
	}{
		{"map key", "{0.name}", doc, "Ann"},
		{"bracket key", "{0[name]}", doc, "Ann"},
		{"chained", "{0.items[1].id}", doc, "2"},
		{"slice index", "{0[0]}", []any{"a", "b"}, "a"},
		{"string length", "{0.length}", "héllo", "5"},
		{"string index", "{0[1]}", "héllo", "é"},
		{"slice length", "{0.length}", []int{1, 2, 3}, "3"},
		{"map length", "{0.items.length}", doc, "2"},
		{"struct field", "{0.Name}", user{Name: "Bo"}, "Bo"},
		{"struct pointer", "{0.Name}", &user{Name: "Cy"}, "Cy"},
		{"struct slice field", "{0.Tags.length}", user{Tags: []string{"a", "b"}}, "2"},
		{"missing with alt", "{0.missing|fallback}", map[string]any{}, "fallback"},
		{"nil stops path", "{0.none.deeper|x}", doc, "x"},
		{"out of range", "{0[5]|x}", []any{"a"}, "x"},
		{"empty string alt", "{0.empty|x}", doc, "x"},
		{"spaces in key", "{0[a b]}", map[string]any{"ab": "x"}, "x"},
		{"spaces around call", "{0. toUpperCase ()}", "x", "X"},
		{"false alt", "{0.off|x}", doc, "x"},
		{"zero is empty", "{0.zero|x}", doc, "x"},
		{"nan is empty", "{0|x}", math.NaN(), "x"},
		{"negative is not empty", "{0|x}", -1, "-1"},
		{"empty alt", "{0.missing|}", doc, ""},
		{"alt then spec", "{0.missing|n/a:>5}", doc, "  n/a"},
		{"accessor", "{0.title}", record{fields: map[string]any{"title": "T"}}, "T"},
		{"invoker", "{0.get(title)}", record{fields: map[string]any{"title": "T"}}, "T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.Format(tt.tmpl, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMethods(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tmpl string
		arg  any
		want string
	}{
		{"upper", "{0.toUpperCase()}", "abc", "ABC"},
		{"lower", "{0.toLowerCase()}", "ABC", "abc"},
		{"trim", "{0.trim()}", "  a  ", "a"},
		{"slice", "{0.slice(1,3)}", "hello", "el"},
		{"slice negative", "{0.slice(-3)}", "hello", "llo"},
		{"substring swapped", "{0.substring(3,1)}", "hello", "el"},
		{"char at", "{0.charAt(1)}", "hello", "e"},
		{"index of", "{0.indexOf(l)}", "hello", "2"},
		{"replace", `{0.replace("l","L")}`, "hello", "heLlo"},
		{"replace all", "{0.replaceAll(l,L)}", "hello", "heLLo"},
		{"split length", `{0.split(",").length}`, "a,b,c", "3"},
		{"split quoted dot", `{0.split(".")[1]}`, "a.b", "b"},
		{"repeat", "{0.repeat(3)}", "ab", "ababab"},
		{"pad start", "{0.padStart(5,0)}", "7", "00007"},
		{"pad end", "{0.padEnd(3,ab)}", "x", "xab"},
		{"chained calls", "{0.trim().toUpperCase()}", " hi ", "HI"},
		{"to fixed", "{0.toFixed(2)}", 3.14159, "3.14"},
		{"to string radix", "{0.toString(2)}", 5, "101"},
		{"to exponential", "{0.toExponential(2)}", 12345, "1.23e+4"},
		{"join", "{0.join(-)}", []any{"a", "b"}, "a-b"},
		{"join quoted", `{0.join(", ")}`, []string{"a", "b"}, "a, b"},
		{"slice of slice", "{0.slice(1).join()}", []any{1, 2, 3}, "2,3"},
		{"includes false", "{0.includes(z)|no}", []any{"a"}, "no"},
		{"unknown method", "{0.missing()|none}", "x", "none"},
		{"bad arguments", "{0.repeat(x)|none}", "x", "none"},
		{"method on wrong receiver", "{0.toFixed(2)|none}", "x", "none"},
		{"to fixed half rounds up", "{0.toFixed(0)}", 0.5, "1"},
		{"to fixed negative half", "{0.toFixed(1)}", -0.25, "-0.3"},
		{"to fixed huge", "{0.toFixed(2)}", 1e21, "1e+21"},
		{"to exponential half rounds up", "{0.toExponential(1)}", 125, "1.3e+2"},
		{"to exponential shortest", "{0.toExponential()}", 1500, "1.5e+3"},
		{"repeat too large", "{0.repeat(4611686018427387904)|none}", "ab", "none"},
		{"pad too large", "{0.padStart(4611686018427387904)|none}", "ab", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.Format(tt.tmpl, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithMethod(t *testing.T) {
	t.Parallel()
	e := strfmt.New(strfmt.WithMethod("double", func(recv any, _ []string) (any, bool) {
		n, ok := recv.(int)
		return n * 2, ok
	}))
	got, err := e.Format("{0.double()}", 21)
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = e.Format("{0.double()|n/a}", "x")
	require.NoError(t, err)
	assert.Equal(t, "n/a", got)

	// Registered methods are per engine.
	got, err = strfmt.Format("{0.double()|n/a}", 21)
	require.NoError(t, err)
	assert.Equal(t, "n/a", got)
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tmpl string
		args []any
		want error
	}{
		{"index out of range", "{1}", []any{"a"}, strfmt.ErrInvalidIndex},
		{"no args", "{0}", nil, strfmt.ErrInvalidIndex},
		{"index overflow", "{99999999999999999999}", []any{"a"}, strfmt.ErrInvalidIndex},
		{"nested index", "{0}", []any{"{3}"}, strfmt.ErrInvalidIndex},
		{"map replacement", "{0}", []any{map[string]any{"a": 1}}, strfmt.ErrInvalidReplacement},
		{"nil replacement", "{0}", []any{nil}, strfmt.ErrInvalidReplacement},
		{"bool replacement", "{0}", []any{true}, strfmt.ErrInvalidReplacement},
		{"string spec on slice", "{0:s}", []any{[]any{1}}, strfmt.ErrInvalidReplacement},
		{"missing member", "{0.missing}", []any{map[string]any{}}, strfmt.ErrInvalidReplacement},
		{"cyclic modifier", "{0:{1.a}}", []any{5, map[string]any{"a": "{1.a}{1.a}"}}, strfmt.ErrTooManyRecursions},
		{"self-referential argument", "{0}", []any{"{0}"}, strfmt.ErrTooManyRecursions},
		{"leading zero index", "{01}", []any{"a", "b"}, strfmt.ErrInvalidIndex},
		{"repeat too large", "{0:*4611686018427387904}", []any{"ab"}, strfmt.ErrOutputTooLarge},
		{"width too large", "{0:>4611686018427387904}", []any{"ab"}, strfmt.ErrOutputTooLarge},
		{"precision too large", "{0:.4611686018427387904f}", []any{1}, strfmt.ErrOutputTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := strfmt.Format(tt.tmpl, tt.args...)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, got)

			var fe *strfmt.FormatError
			require.ErrorAs(t, err, &fe)
			assert.NotEmpty(t, fe.Error())
		})
	}
}

func TestFormatErrorDetails(t *testing.T) {
	t.Parallel()
	_, err := strfmt.Format("a {2}", "x", "y")
	var fe *strfmt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "a {2}", fe.Template)
	assert.Equal(t, "{2}", fe.Match)
	assert.Equal(t, 2, fe.Index)
	assert.Equal(t, []any{"x", "y"}, fe.Args)
	assert.Equal(t, "invalid index: 2 in {2} (2 args)", fe.Error())
	assert.Equal(t, 2, fe.Details()["index"])

	_, err = strfmt.Format("{0}", []int{1})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []int{1}, fe.Value)
	assert.Equal(t, "[]int", fe.Details()["value_type"])

	_, err = strfmt.Format("{0:*4611686018427387904}", "ab")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Index)
	assert.Equal(t, "output too large: {0:*4611686018427387904} exceeds 1048576 bytes", fe.Error())

	_, err = strfmt.Format("{01}", "a", "b")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, -1, fe.Index)
	assert.Equal(t, "invalid index: {01}", fe.Error())

	_, err = strfmt.Format("{0:{1.a}}", 5, map[string]any{"a": "{1.a}{1.a}"})
	require.ErrorAs(t, err, &fe)
	assert.NotEmpty(t, fe.Result)
	assert.NotEqual(t, fe.Match, fe.Result)
}

func TestWithMaxDepth(t *testing.T) {
	t.Parallel()
	args := []any{"{1}", "{2}", "x"}

	got, err := strfmt.Format("{0}", args...)
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = strfmt.New(strfmt.WithMaxDepth(1)).Format("{0}", args...)
	assert.ErrorIs(t, err, strfmt.ErrTooManyRecursions)
}

func TestApply(t *testing.T) {
	t.Parallel()
	got, err := strfmt.Apply([]any{"{0}-{1}", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a-b", got)

	got, err = strfmt.Apply([]any{[]any{"{0}", 1}})
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = strfmt.Apply([]any{"no placeholders"})
	require.NoError(t, err)
	assert.Equal(t, "no placeholders", got)
}

func TestApplyInvalidTemplate(t *testing.T) {
	t.Parallel()
	for _, args := range [][]any{nil, {5}, {[]any{"{0}"}, "extra"}} {
		_, err := strfmt.Apply(args)
		assert.ErrorIs(t, err, strfmt.ErrInvalidTemplate)
	}
}

func TestMustFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "x", strfmt.MustFormat("{0}", "x"))
	assert.Panics(t, func() { strfmt.MustFormat("{1}", "x") })
}

func TestHasPlaceholders(t *testing.T) {
	t.Parallel()
	assert.True(t, strfmt.HasPlaceholders("a {0} b"))
	assert.True(t, strfmt.HasPlaceholders("{12"))
	assert.False(t, strfmt.HasPlaceholders("{a}"))
	assert.False(t, strfmt.HasPlaceholders("plain"))
}

func TestConverters(t *testing.T) {
	t.Parallel()
	list := strfmt.Converters()
	require.Len(t, list, 7)
	codes := make([]string, len(list))
	for i, c := range list {
		codes[i] = string(c.Code)
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, "s-bodxX", strings.Join(codes, ""))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := strfmt.New(strfmt.WithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))

	_, err := e.Format("{0}", "x")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"index":0`)
	assert.Contains(t, buf.String(), `"match":"{0}"`)

	buf.Reset()
	_, err = e.Format("{3}", "x")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "format failed")
	assert.Contains(t, buf.String(), `"template":"{3}"`)
}

func TestEngineConcurrentUse(t *testing.T) {
	t.Parallel()
	e := strfmt.New()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Format("{0:>4}|{1.n}", i, map[string]any{"n": i})
			if err != nil {
				errs <- err
				return
			}
			if !strings.HasSuffix(got, "|"+strings.TrimSpace(got[:4])) {
				errs <- errors.New("unexpected output: " + got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
