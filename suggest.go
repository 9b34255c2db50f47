package inline

// atEnd reports whether the cursor sits at the end of the buffer.
func (e *Editor) atEnd() bool {
	return e.text.cursor == e.text.graphemeCount()
}

func (e *Editor) clearSuggestions() {
	e.suggestions.clear()
}

// generateSuggestions rebuilds the suggestion list by iterating the
// completion callback. Suggestions exist only while the cursor is at the end
// of the buffer and no selection is active; the current index is reset to the
// first suggestion.
func (e *Editor) generateSuggestions() {
	if e.completeFn == nil {
		return
	}
	e.clearSuggestions()
	if e.text.selection != invalidIndex {
		return
	}
	if !e.atEnd() {
		return
	}

	text := e.text.String()
	index := 0
	for {
		suffix, ok := e.completeFn(text, &index)
		if !ok {
			break
		}
		e.suggestions.add(suffix)
	}
	if e.suggestions.count() > 0 {
		e.suggestions.index = 0
	}
}

func (e *Editor) haveSuggestions() bool {
	return e.suggestions.count() > 0
}

// advanceSuggestions cycles the current suggestion by delta, wrapping.
func (e *Editor) advanceSuggestions(delta int) {
	e.suggestions.advance(delta, true)
}

// applySuggestion inserts the current suggestion's bytes at the cursor and
// drops the suggestion list.
func (e *Editor) applySuggestion() {
	if suffix, ok := e.suggestions.current(); ok && suffix != "" {
		e.insertString(suffix)
	}
	e.clearSuggestions()
}
