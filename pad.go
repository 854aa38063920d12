package strfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// pad fills s out to width display columns. Center alignment puts the odd
// column of padding on the left.
func pad(s string, width int, fill rune, align byte) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	f := string(fill)
	switch align {
	case '<':
		return s + strings.Repeat(f, n)
	case '^':
		right := n / 2
		return strings.Repeat(f, n-right) + s + strings.Repeat(f, right)
	default:
		return strings.Repeat(f, n) + s
	}
}

// truncate cuts s to at most width display columns. Wide characters that
// would straddle the limit are dropped.
func truncate(s string, width int) string {
	if width < 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
