package strfmt

import "strings"

// segment is one step of a property path: a member name, optionally called
// with literal string arguments.
type segment struct {
	name string
	call bool
	args []string
}

// modifier is the parsed suffix of a placeholder:
//
//	[path] [|alt] [!converters] [:spec]
type modifier struct {
	path       []segment
	alt        string
	hasAlt     bool
	converters string
	spec       string
	hasSpec    bool
}

// parseModifier parses as much of s as the modifier grammar allows and
// returns the unparsed remainder.
func parseModifier(s string) (modifier, string) {
	var m modifier
	i := 0
	for {
		seg, next, ok := parseSegment(s, i)
		if !ok {
			break
		}
		m.path = append(m.path, seg)
		i = next
	}

	if i < len(s) && s[i] == '|' {
		end := indexAny(s, i+1, "!:")
		m.alt, m.hasAlt = s[i+1:end], true
		i = end
	}
	if i+1 < len(s) && s[i] == '!' && s[i+1] != ':' {
		end := indexAny(s, i+1, ":")
		m.converters = s[i+1 : end]
		i = end
	}
	if i+1 < len(s) && s[i] == ':' {
		m.spec, m.hasSpec = s[i+1:], true
		i = len(s)
	}
	return m, s[i:]
}

// parseSegment reads a ".name" or "[name]" segment starting at i. Spaces
// inside a name are dropped. A name may be followed by a parenthesized
// argument list.
func parseSegment(s string, i int) (segment, int, bool) {
	if i >= len(s) || (s[i] != '.' && s[i] != '[') {
		return segment{}, i, false
	}
	j := indexAny(s, i+1, ".[]|!:(")
	name := strings.Join(strings.Fields(s[i+1:j]), "")
	if name == "" {
		return segment{}, i, false
	}
	seg := segment{name: name}
	if j < len(s) && s[j] == '(' {
		end := closingParen(s, j+1)
		if end < 0 {
			return segment{}, i, false
		}
		seg.call = true
		seg.args = splitArgs(s[j+1 : end])
		j = end + 1
	}
	if j < len(s) && s[j] == ']' {
		j++
	}
	return seg, j, true
}

// indexAny returns the index of the first byte of chars in s at or after
// i, or len(s).
func indexAny(s string, i int, chars string) int {
	if n := strings.IndexAny(s[i:], chars); n >= 0 {
		return i + n
	}
	return len(s)
}

// closingParen finds the ")" that ends an argument list starting at i,
// skipping quoted text.
func closingParen(s string, i int) int {
	var quote byte
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ')':
			return i
		}
	}
	return -1
}

// splitArgs splits a call's argument text on commas outside quotes. Each
// argument is trimmed and unquoted. Empty text means no arguments.
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var (
		args  []string
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ',':
			args = append(args, unquote(s[start:i]))
			start = i + 1
		}
	}
	return append(args, unquote(s[start:]))
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
