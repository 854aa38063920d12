package strfmt

// Converter transforms a resolved value before it is formatted.
type Converter func(any) any

// ConverterInfo describes a registered converter code.
type ConverterInfo struct {
	Code        byte
	Description string
}

// radixes maps integer codes to their numeric base. It is shared by the
// converters and the integer presentation types of the format spec.
var radixes = map[byte]int{'b': 2, 'o': 8, 'd': 10, 'x': 16, 'X': 16}

var converterTable = []struct {
	code byte
	desc string
	fn   Converter
}{
	{'s', "stringify", func(v any) any { return stringify(v) }},
	{'-', "negate", func(v any) any { return -toNumber(v) }},
	{'b', "parse as base-2 integer", radixConverter('b')},
	{'o', "parse as base-8 integer", radixConverter('o')},
	{'d', "parse as base-10 integer", radixConverter('d')},
	{'x', "parse as base-16 integer", radixConverter('x')},
	{'X', "parse as base-16 integer", radixConverter('X')},
}

// converters is built once and never written afterwards.
var converters = func() map[byte]Converter {
	m := make(map[byte]Converter, len(converterTable))
	for _, c := range converterTable {
		m[c.code] = c.fn
	}
	return m
}()

func radixConverter(code byte) Converter {
	base := radixes[code]
	return func(v any) any {
		return parseIntPrefix(stringify(v), base)
	}
}

// Converters lists the converter codes accepted after "!" in a placeholder.
func Converters() []ConverterInfo {
	out := make([]ConverterInfo, len(converterTable))
	for i, c := range converterTable {
		out[i] = ConverterInfo{Code: c.code, Description: c.desc}
	}
	return out
}

// convert applies each code left to right. Unknown codes are skipped.
func convert(v any, codes string) any {
	for i := 0; i < len(codes); i++ {
		if fn, ok := converters[codes[i]]; ok {
			v = fn(v)
		}
	}
	return v
}
