package strfmt

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds nested formatting when no [WithMaxDepth] option is
// given.
const DefaultMaxDepth = 32

var (
	// placeholderRE matches {index modifiers}, where the modifiers may hold
	// one level of nested {digit...} groups.
	placeholderRE = regexp.MustCompile(`\{(\d+)((?:[^{}]|\{\d[^{}]*\})*)\}`)

	// nestedRE detects placeholder syntax inside argument values.
	nestedRE = regexp.MustCompile(`\{\d`)
)

// Engine formats templates. It is immutable after [New] and safe for
// concurrent use.
type Engine struct {
	log      zerolog.Logger
	methods  map[string]Method
	maxDepth int
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger used for trace and debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMethod registers a method callable from property paths. Registered
// methods take precedence over the built-in ones of the same name.
func WithMethod(name string, m Method) Option {
	return func(e *Engine) { e.methods[name] = m }
}

// WithMaxDepth bounds nested formatting of argument values and modifiers.
func WithMaxDepth(n int) Option {
	return func(e *Engine) { e.maxDepth = n }
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:      zerolog.Nop(),
		methods:  make(map[string]Method),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var std = New()

// Format renders tmpl with args using the default engine.
func Format(tmpl string, args ...any) (string, error) {
	return std.Format(tmpl, args...)
}

// Apply renders an argument array using the default engine. See
// [Engine.Apply].
func Apply(args []any) (string, error) {
	return std.Apply(args)
}

// MustFormat is like [Format] but panics on error.
func MustFormat(tmpl string, args ...any) string {
	s, err := Format(tmpl, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// HasPlaceholders reports whether s contains placeholder syntax: an opening
// brace followed by a digit.
func HasPlaceholders(s string) bool {
	return nestedRE.MatchString(s)
}

// Format replaces every placeholder in tmpl. Placeholders are resolved
// independently against the same args; any error aborts the whole call.
func (e *Engine) Format(tmpl string, args ...any) (string, error) {
	out, err := e.format(tmpl, args, 0)
	if err != nil {
		e.logError(err)
		return "", err
	}
	return out, nil
}

// Apply treats args[0] as the template and the rest as its arguments. A
// single nested argument array is applied in turn.
func (e *Engine) Apply(args []any) (string, error) {
	if len(args) > 0 {
		switch t := args[0].(type) {
		case string:
			return e.Format(t, args[1:]...)
		case []any:
			if len(args) == 1 {
				return e.Apply(t)
			}
		}
	}
	err := &FormatError{Kind: ErrInvalidTemplate, Args: args, Index: -1}
	if len(args) > 0 {
		err.Value = args[0]
	}
	e.logError(err)
	return "", err
}

func (e *Engine) logError(err error) {
	var fe *FormatError
	if errors.As(err, &fe) {
		e.log.Debug().Err(err).Fields(fe.Details()).Msg("format failed")
	}
}

func (e *Engine) format(tmpl string, args []any, depth int) (string, error) {
	if depth > e.maxDepth {
		return "", &FormatError{
			Kind:     ErrTooManyRecursions,
			Template: tmpl,
			Args:     args,
			Match:    tmpl,
			Index:    -1,
		}
	}
	locs := placeholderRE.FindAllStringSubmatchIndex(tmpl, -1)
	if len(locs) == 0 {
		return tmpl, nil
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(tmpl[last:loc[0]])
		p := placeholder{
			match: tmpl[loc[0]:loc[1]],
			index: tmpl[loc[2]:loc[3]],
			mods:  tmpl[loc[4]:loc[5]],
		}
		out, err := e.replace(tmpl, args, p, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		last = loc[1]
	}
	b.WriteString(tmpl[last:])
	return b.String(), nil
}

// placeholder is one scanned {index modifiers} occurrence.
type placeholder struct {
	match string
	index string
	mods  string
}

func (e *Engine) replace(tmpl string, args []any, p placeholder, depth int) (string, error) {
	// Indexes with leading zeros or beyond int range are never valid.
	index, err := strconv.Atoi(p.index)
	if err != nil || strconv.Itoa(index) != p.index {
		index = -1
	}
	if index < 0 || index >= len(args) {
		return "", &FormatError{
			Kind:     ErrInvalidIndex,
			Template: tmpl,
			Args:     args,
			Match:    p.match,
			Index:    index,
		}
	}
	e.log.Trace().Int("index", index).Str("match", p.match).Msg("placeholder")

	mods, err := e.expand(tmpl, args, p.mods, depth)
	if err != nil {
		return "", err
	}
	m, rest := parseModifier(mods)

	v := args[index]
	if s, ok := text(v); ok && HasPlaceholders(s) {
		e.log.Debug().Int("index", index).Int("depth", depth+1).Msg("formatting nested argument")
		if v, err = e.format(s, args, depth+1); err != nil {
			return "", err
		}
	}
	if len(m.path) > 0 {
		v = e.resolve(v, m.path)
	}
	if m.hasAlt && isEmpty(v) {
		v = m.alt
	}
	v = convert(v, m.converters)
	if m.hasSpec {
		if sp, ok := ParseSpec(m.spec); ok {
			out, err := sp.Render(v)
			if err != nil {
				return "", &FormatError{
					Kind:     err,
					Template: tmpl,
					Args:     args,
					Match:    p.match,
					Index:    index,
					Value:    v,
				}
			}
			v = out
		} else {
			e.log.Trace().Str("spec", m.spec).Msg("spec ignored")
		}
	}

	s, ok := scalar(v)
	if !ok {
		return "", &FormatError{
			Kind:     ErrInvalidReplacement,
			Template: tmpl,
			Args:     args,
			Match:    p.match,
			Index:    index,
			Value:    v,
		}
	}
	return s + rest, nil
}
