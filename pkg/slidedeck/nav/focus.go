package nav

// Focus tracks which navigation dot, if any, holds keyboard focus.
// The zero value has nothing focused.
type Focus struct {
	index   int
	focused bool
}

// Index returns the focused dot's zero-based index.
func (f *Focus) Index() (int, bool) {
	return f.index, f.focused
}

// Advance moves focus to the next dot, leaving the dots after the last one.
func (f *Focus) Advance(total int) {
	switch {
	case !f.focused && total > 0:
		f.index, f.focused = 0, true
	case f.focused && f.index+1 < total:
		f.index++
	default:
		f.Clear()
	}
}

// Retreat moves focus to the previous dot, entering from the last one.
func (f *Focus) Retreat(total int) {
	switch {
	case !f.focused && total > 0:
		f.index, f.focused = total-1, true
	case f.focused && f.index > 0:
		f.index--
	default:
		f.Clear()
	}
}

// Clear removes focus from every dot.
func (f *Focus) Clear() {
	f.index, f.focused = 0, false
}

// HandleFocusedKey delivers a key press the way a document delivers it to a
// focused dot: the dot handles it first, then the document-level handler
// sees the same key. A Space press on a focused dot therefore jumps to the
// dot's slide and then advances one more.
func (d *Dispatcher) HandleFocusedKey(f *Focus, key Key) (handled, preventDefault bool) {
	if i, ok := f.Index(); ok {
		handled = d.DotKey(i, key)
	}
	docHandled, preventDefault := d.HandleKey(key)
	return handled || docHandled, preventDefault
}
