package strfmt

// resolve walks path from v. A nil value, a missing member or a failed call
// ends the walk with nil.
func (e *Engine) resolve(v any, path []segment) any {
	for _, seg := range path {
		if isNil(v) {
			return nil
		}
		var ok bool
		if seg.call {
			v, ok = e.invoke(v, seg.name, seg.args)
		} else {
			v, ok = member(v, seg.name)
		}
		if !ok {
			e.log.Trace().Str("member", seg.name).Bool("call", seg.call).Msg("path stopped")
			return nil
		}
	}
	return v
}
