package inline

// The clipboard is a single owned byte slot. It may hold multi-byte UTF-8
// including newlines; the empty state has length 0.

// copyToClipboard replaces the clipboard contents with a copy of b.
func (e *Editor) copyToClipboard(b []byte) {
	e.clipboard = append(e.clipboard[:0], b...)
}

// beginSelection anchors a selection at the cursor. It is idempotent: an
// existing anchor is left in place.
func (e *Editor) beginSelection() {
	if e.text.selection == invalidIndex {
		e.text.selection = e.text.cursor
	}
}

func (e *Editor) clearSelection() {
	e.text.selection = invalidIndex
}

// copySelection writes the selected byte range to the clipboard.
func (e *Editor) copySelection() {
	if _, _, start, end, ok := e.text.selectionRange(); ok {
		e.copyToClipboard(e.text.buf[start:end])
	}
}

// deleteSelection removes the selected range and moves the cursor to its
// left edge.
func (e *Editor) deleteSelection() {
	selL, _, start, end, ok := e.text.selectionRange()
	if !ok {
		return
	}
	e.text.deleteBytes(start, end)
	e.clearSelection()
	e.setCursor(selL)
	e.refresh = true
}

// cutSelection copies the selection to the clipboard and deletes it.
func (e *Editor) cutSelection() {
	e.copySelection()
	e.deleteSelection()
}

// cutLine copies and deletes the range between the cursor and the start
// (before=true) or end (before=false) of its line. Cutting forward excludes
// the line's newline.
func (e *Editor) cutLine(before bool) {
	row, _ := e.text.cursorRowCol()
	bLine := e.text.lines[row+1]
	if before {
		bLine = e.text.lines[row]
	}
	bCursor := e.text.byteOffset(e.text.cursor)

	bStart, bEnd := bLine, bCursor
	if bStart > bEnd {
		bStart, bEnd = bEnd, bStart
	}
	if !before && bEnd > 0 && e.text.buf[bEnd-1] == '\n' {
		bEnd--
	}
	if bStart == bEnd {
		return
	}

	e.copyToClipboard(e.text.buf[bStart:bEnd])
	e.text.deleteBytes(bStart, bEnd)
	e.setCursor(e.text.findGraphemeIndex(bStart))
	e.refresh = true
}

// paste inserts the clipboard contents at the cursor, replacing any active
// selection.
func (e *Editor) paste() {
	if len(e.clipboard) == 0 {
		return
	}
	if e.text.selection != invalidIndex {
		e.deleteSelection()
	}
	e.insert(e.clipboard)
}
