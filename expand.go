package strfmt

// maxPasses bounds the fixpoint expansion of a single modifier.
const maxPasses = 10

// expand formats mods against args until it stops changing. Modifiers may
// embed placeholders whose values themselves contain placeholders, so one
// pass is not always enough.
func (e *Engine) expand(tmpl string, args []any, mods string, depth int) (string, error) {
	if !HasPlaceholders(mods) {
		return mods, nil
	}
	for pass := 1; ; pass++ {
		next, err := e.format(mods, args, depth+1)
		if err != nil {
			return "", err
		}
		if next == mods {
			return mods, nil
		}
		e.log.Debug().
			Int("pass", pass).
			Str("modifier", mods).
			Str("result", next).
			Msg("expanded modifier")
		if pass == maxPasses {
			return "", &FormatError{
				Kind:     ErrTooManyRecursions,
				Template: tmpl,
				Args:     args,
				Match:    mods,
				Index:    -1,
				Result:   next,
			}
		}
		mods = next
	}
}
