package inline

// History is a bounded list of previously committed lines. Browsing with
// Up/Down (or Control-p/Control-n) replaces the live buffer with the current
// entry; any non-history action ends browsing.

// SetHistoryLength sets the maximum number of history entries. Negative
// means unlimited; zero clears the history and disables it. Excess entries
// are dropped from the front.
func (e *Editor) SetHistoryLength(maxLen int) {
	e.maxHistoryLength = maxLen
	if maxLen > 0 {
		for e.history.count() > maxLen {
			e.history.popFront()
		}
	} else if maxLen == 0 {
		e.history.clear()
	}
}

// AddHistory appends an entry to the history. Empty entries, duplicates of
// the immediately preceding entry, and additions while history is disabled
// are ignored; it reports whether the entry was added.
func (e *Editor) AddHistory(entry string) bool {
	if entry == "" || e.maxHistoryLength == 0 {
		return false
	}
	if n := e.history.count(); n > 0 && e.history.items[n-1] == entry {
		return false
	}
	e.history.add(entry)
	if e.maxHistoryLength > 0 {
		for e.history.count() > e.maxHistoryLength {
			e.history.popFront()
		}
	}
	return true
}

// advanceHistory moves the browse position by delta, loading the selected
// entry into the buffer. The first history key from a non-browsing state
// selects the most recent entry.
func (e *Editor) advanceHistory(delta int) {
	count := e.history.count()
	if count == 0 {
		return
	}

	if e.history.index == invalidIndex {
		e.history.index = count - 1
	} else {
		e.history.advance(delta, false)
	}

	s, ok := e.history.current()
	e.clear()
	if ok {
		e.insertString(s)
	} else {
		e.endHistoryBrowsing()
	}
}

// historyKey handles a single history keystroke: load the entry, park the
// cursor at the end, and drop selection and suggestions.
func (e *Editor) historyKey(delta int) {
	e.advanceHistory(delta)
	e.setCursor(e.text.graphemeCount())
	e.clearSelection()
	e.clearSuggestions()
}

func (e *Editor) endHistoryBrowsing() {
	e.history.index = invalidIndex
}
