package strfmt

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxOutput bounds the size in bytes of a single rendered replacement.
// Larger widths, repeat counts and precisions fail instead of allocating.
const MaxOutput = 1 << 20

// Apply renders v according to the spec and returns the resulting string.
// Under the string presentation type, values that are neither strings nor
// numbers are returned unchanged, as are values whose rendering would
// exceed [MaxOutput].
func (s Spec) Apply(v any) any {
	out, err := s.Render(v)
	if err != nil {
		return v
	}
	return out
}

// Render is Apply with an error for output larger than [MaxOutput]. The
// error is [ErrOutputTooLarge].
func (s Spec) Render(v any) (any, error) {
	if s.Width > MaxOutput || s.Precision > MaxOutput {
		return nil, ErrOutputTooLarge
	}
	typ := s.Type
	if typ == 0 {
		typ = 's'
		if isNumeric(v) {
			typ = 'g'
		}
	}
	align := s.Align
	if align == 0 {
		align = '>'
		if typ == 's' {
			align = '<'
		}
	}
	fill := s.Fill
	if s.Zero {
		fill, align = '0', '='
	}
	if fill == 0 {
		fill = ' '
	}

	var out, sign string
	if typ == 's' {
		str, ok := scalar(v)
		if !ok {
			return v, nil
		}
		out = str
		if s.HasPrecision {
			out = truncate(out, s.Precision)
		}
	} else {
		out, sign = s.renderNumber(toNumber(v), typ)
		if align != '=' {
			out = sign + out
			sign = ""
		}
	}

	if s.Repeat > 1 {
		if len(out) > MaxOutput/s.Repeat {
			return nil, ErrOutputTooLarge
		}
		out = strings.Repeat(out, s.Repeat)
	}

	width := s.Width
	if typ == 's' && s.HasPrecision && s.Precision < width {
		width = s.Precision
	}
	return sign + pad(out, width-runewidth.StringWidth(sign), fill, align), nil
}

// renderNumber returns the unsigned text of n and the sign to place in
// front of it. Sign mode '+' always yields '+' and renders the magnitude.
func (s Spec) renderNumber(n float64, typ byte) (string, string) {
	var sign string
	switch {
	case s.Sign == '+':
		sign = "+"
	case n < 0:
		sign = "-"
	}
	n = math.Abs(n)

	var out string
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		out = numberString(n)
	case typ == 'c':
		out = string(rune(int64(math.Round(n))))
	case strings.IndexByte("bdoxX", typ) >= 0:
		out = formatInteger(math.Round(n), radixes[typ])
	case typ == 'e' || typ == 'E':
		if s.HasPrecision {
			out = exponential(n, s.Precision)
		} else {
			out = trimExponent(strconv.FormatFloat(n, 'e', -1, 64))
		}
	default:
		if typ == '%' {
			n *= 100
		}
		if s.HasPrecision {
			out = fixed(n, s.Precision)
		} else {
			out = numberString(n)
		}
		if typ == '%' {
			out += "%"
		}
	}

	if typ >= 'A' && typ <= 'Z' {
		out = cases.Upper(language.Und).String(out)
	}
	if s.Group {
		out = group(out)
	}
	return out, sign
}

// fixed renders f with prec fraction digits. Exact halves round away from
// zero, as whole numbers do under math.Round.
func fixed(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return numberString(f)
	}
	digits := roundHalfUp(math.Abs(f), prec).String()
	if prec > 0 {
		if len(digits) <= prec {
			digits = strings.Repeat("0", prec-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-prec] + "." + digits[len(digits)-prec:]
	}
	if f < 0 {
		return "-" + digits
	}
	return digits
}

// exponential renders f as d.ddde±x with prec fraction digits, rounding
// exact halves away from zero.
func exponential(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return numberString(f)
	}
	abs := math.Abs(f)
	exp := 0
	digits := strings.Repeat("0", prec+1)
	if abs != 0 {
		// The shortest form's exponent can be one too high after rounding
		// up, so correct it against the digit count.
		exp = decimalExponent(abs)
		for {
			digits = roundHalfUp(abs, prec-exp).String()
			if len(digits) > prec+1 {
				exp++
			} else if len(digits) < prec+1 {
				exp--
			} else {
				break
			}
		}
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:1])
	if prec > 0 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// decimalExponent returns the power of ten of the leading digit of f > 0.
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	return exp
}

// roundHalfUp returns f*10^shift rounded to an integer, halves up. f must
// be finite and non-negative; the arithmetic is exact.
func roundHalfUp(f float64, shift int) *big.Int {
	r := new(big.Rat).SetFloat64(f)
	k := shift
	if k < 0 {
		k = -k
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil))
	if shift >= 0 {
		r.Mul(r, scale)
	} else {
		r.Quo(r, scale)
	}
	r.Add(r, big.NewRat(1, 2))
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// formatInteger renders a non-negative integral float in base.
func formatInteger(n float64, base int) string {
	if n < 1<<63 {
		return strconv.FormatInt(int64(n), base)
	}
	i, _ := new(big.Float).SetFloat64(n).Int(nil)
	return i.Text(base)
}

// group inserts thousands separators into the leading digit run of s. The
// rest of s (fraction, exponent, percent sign) is kept as is.
func group(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end <= 3 {
		return s
	}
	if n, err := strconv.ParseUint(s[:end], 10, 64); err == nil {
		p := message.NewPrinter(language.English)
		return p.Sprintf("%v", number.Decimal(n)) + s[end:]
	}
	return groupDigits(s[:end]) + s[end:]
}

// groupDigits handles digit runs too long for a uint64.
func groupDigits(d string) string {
	lead := len(d) % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.WriteString(d[:lead])
	for i := lead; i < len(d); i += 3 {
		b.WriteByte(',')
		b.WriteString(d[i : i+3])
	}
	return b.String()
}
