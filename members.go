package strfmt

import (
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/ohler55/ojg/jp"
)

// Accessor is implemented by values that expose their own members to
// property paths. Returning false defers to the generic lookup.
type Accessor interface {
	Member(name string) (any, bool)
}

// member looks up a single property of v.
func member(v any, name string) (any, bool) {
	if a, ok := v.(Accessor); ok {
		if got, ok := a.Member(name); ok {
			return got, true
		}
	}
	if s, ok := text(v); ok {
		return stringMember(s, name)
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if name == "length" {
			return rv.Len(), true
		}
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return first(jp.N(i).Get(v))
	case reflect.Map, reflect.Struct:
		if got, ok := first(jp.C(name).Get(v)); ok {
			return got, true
		}
		if rv.Kind() == reflect.Map && name == "length" {
			return rv.Len(), true
		}
	}
	return nil, false
}

func first(got []any) (any, bool) {
	if len(got) == 0 {
		return nil, false
	}
	return got[0], true
}

// stringMember supports length and rune indexing on strings.
func stringMember(s, name string) (any, bool) {
	if name == "length" {
		return utf8.RuneCountInString(s), true
	}
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 {
		return nil, false
	}
	for _, r := range s {
		if i == 0 {
			return string(r), true
		}
		i--
	}
	return nil, false
}
