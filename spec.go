package strfmt

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Spec is a parsed format specification:
//
//	[*repeat] [[fill]align] [sign] [#] [0] [width] [,] [.precision] [type]
//
// The zero value formats with no padding and an inferred type.
type Spec struct {
	Repeat       int  // copies of the rendered text; 0 means one
	Fill         rune // padding character; 0 means space
	Align        byte // one of < > = ^; 0 means type dependent
	Sign         byte // one of ' ', '+', '-'; 0 means '-'
	Alternate    bool
	Zero         bool
	Width        int
	Group        bool
	Precision    int
	HasPrecision bool
	Type         byte // one of specTypes; 0 means inferred
}

const (
	specAligns = "<>=^"
	specSigns  = " +-"
	specTypes  = "bcdeEfgGFosxX%"
)

// ParseSpec parses a format spec. It reports false when s does not match
// the grammar, in which case the spec should not be applied.
func ParseSpec(s string) (Spec, bool) {
	for _, h := range specHeads(s) {
		if sp, ok := parseSpecTail(h.spec, h.rest); ok {
			return sp, true
		}
	}
	return Spec{}, false
}

type specHead struct {
	spec Spec
	rest string
}

// specHeads lists the readings of the optional repeat and fill/align
// prefix, most greedy first. A fill may be any character, including one
// that would otherwise start the repeat or be an alignment.
func specHeads(s string) []specHead {
	var heads []specHead
	starts := []specHead{{rest: s}}
	if strings.HasPrefix(s, "*") {
		if n, end := leadingDigits(s, 1); end > 1 && n >= 0 {
			starts = []specHead{{spec: Spec{Repeat: n}, rest: s[end:]}, {rest: s}}
		}
	}
	for _, st := range starts {
		fill, size := utf8.DecodeRuneInString(st.rest)
		if size > 0 && len(st.rest) > size && strings.IndexByte(specAligns, st.rest[size]) >= 0 {
			h := st
			h.spec.Fill = fill
			h.spec.Align = st.rest[size]
			h.rest = st.rest[size+1:]
			heads = append(heads, h)
		}
		if st.rest != "" && strings.IndexByte(specAligns, st.rest[0]) >= 0 {
			h := st
			h.spec.Align = st.rest[0]
			h.rest = st.rest[1:]
			heads = append(heads, h)
		}
		heads = append(heads, st)
	}
	return heads
}

func parseSpecTail(sp Spec, s string) (Spec, bool) {
	i := 0
	if i < len(s) && strings.IndexByte(specSigns, s[i]) >= 0 {
		sp.Sign = s[i]
		i++
	}
	if i < len(s) && s[i] == '#' {
		sp.Alternate = true
		i++
	}
	if i < len(s) && s[i] == '0' {
		sp.Zero = true
		i++
	}
	if n, end := leadingDigits(s, i); end > i {
		if n < 0 {
			return Spec{}, false
		}
		sp.Width = n
		i = end
	}
	if i < len(s) && s[i] == ',' {
		sp.Group = true
		i++
	}
	if i < len(s) && s[i] == '.' {
		n, end := leadingDigits(s, i+1)
		if end == i+1 || n < 0 {
			return Spec{}, false
		}
		sp.Precision = n
		sp.HasPrecision = true
		i = end
	}
	if i < len(s) && strings.IndexByte(specTypes, s[i]) >= 0 {
		sp.Type = s[i]
		i++
	}
	return sp, i == len(s)
}

// leadingDigits parses the digit run starting at i. It returns the value
// (-1 on overflow) and the index just past the run.
func leadingDigits(s string, i int) (int, int) {
	end := i
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == i {
		return 0, i
	}
	n, err := strconv.Atoi(s[i:end])
	if err != nil {
		return -1, end
	}
	return n, end
}

// String returns the canonical text of the spec.
func (s Spec) String() string {
	var b strings.Builder
	if s.Repeat > 0 {
		b.WriteByte('*')
		b.WriteString(strconv.Itoa(s.Repeat))
	}
	if s.Align != 0 {
		if s.Fill != 0 {
			b.WriteRune(s.Fill)
		}
		b.WriteByte(s.Align)
	}
	if s.Sign != 0 {
		b.WriteByte(s.Sign)
	}
	if s.Alternate {
		b.WriteByte('#')
	}
	if s.Zero {
		b.WriteByte('0')
	}
	if s.Width > 0 {
		b.WriteString(strconv.Itoa(s.Width))
	}
	if s.Group {
		b.WriteByte(',')
	}
	if s.HasPrecision {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Precision))
	}
	if s.Type != 0 {
		b.WriteByte(s.Type)
	}
	return b.String()
}
