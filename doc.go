// Package strfmt renders templates with indexed placeholders, in the style of
// Python's str.format.
//
// The central entry points are [Format] and [Engine.Format], which take a
// template and positional arguments:
//
//	s, err := strfmt.Format("{0} has {1:,} items", "cart", 1234)
//	// "cart has 1,234 items"
//
// # Placeholder Syntax
//
// A placeholder is an argument index followed by optional modifiers:
//
//	{index[path][|alt][!converters][:spec]}
//
// The path holds member accesses such as .name, [key] or [0], and calls
// such as .toUpperCase() or .slice(1,3). The |alt literal replaces a value
// that is nil, an empty string, false, zero or NaN. The !converters are
// single-character transforms applied left to right, and :spec is a format
// specification.
//
// Indexes are written without leading zeros: {01} is an invalid index.
//
// Modifiers may themselves contain placeholders, which are expanded first:
//
//	strfmt.Format("{0:{1}}", 3.14159, ".2f") // "3.14"
//
// An argument that is a string containing placeholder syntax is formatted
// against the same argument list before use.
//
// # Property Paths
//
// Paths resolve against maps, slices, arrays, structs and pointers to them.
// Strings, slices, arrays and maps expose a length property. Values can take
// over lookup by implementing [Accessor] and [Invoker]. Additional methods can
// be registered per engine with [WithMethod]. A missing member or a failed
// call yields nil, which the |alt literal can replace.
//
// # Converters
//
//   - s: stringify
//   - -: negate
//   - b, o, d, x, X: parse as an integer in base 2, 8, 10 or 16
//
// Unknown codes are ignored. Use [Converters] to list them.
//
// # Format Specification
//
//	[*repeat][[fill]align][sign][#][0][width][,][.precision][type]
//
// Alignment is one of < (left), > (right), ^ (center) or = (pad after the
// sign). Types are s c d b o x X e E f F g G and %. Without a type, numbers
// and numeric strings use g and everything else uses s. A spec that does not
// parse leaves the value unchanged. Widths count display columns, so wide
// characters take two. Fixed and exponent precision round exact halves away
// from zero.
//
// Use [ParseSpec] and [Spec.Apply] or [Spec.Render] to render a single value
// directly. Output longer than [MaxOutput] bytes is refused.
//
// # Errors
//
// Every error is a [*FormatError] wrapping one of [ErrInvalidIndex],
// [ErrTooManyRecursions], [ErrInvalidReplacement], [ErrInvalidTemplate] or
// [ErrOutputTooLarge].
//
// # Streaming
//
// [Write], [WriteIter] and [WriteChan] render one line per argument row:
//
//	strfmt.WriteIter(os.Stdout, "{0:<10}{1:>6.2f}", rows)
package strfmt
