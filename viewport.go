package inline

// viewport is the window of terminal columns visible for buffer content. The
// prompt is not part of the viewport, and the last terminal column is
// reserved to avoid the pending-wrap state.
type viewport struct {
	firstVisibleLine int // vertical scroll offset (reserved)
	firstVisibleCol  int // horizontal scroll offset in terminal cells
	screenRows       int // viewport height (reserved, 1 for now)
	screenCols       int // viewport width, excluding the prompt
}

// updateTerminalWidth refreshes the cached terminal width, falling back to 80
// columns when the terminal cannot be queried.
func (e *Editor) updateTerminalWidth() {
	if e.fixedSize {
		return
	}
	width, ok := terminalWidth(e.outFd)
	if !ok {
		width = defaultWidth
	}
	e.ncols = width
}

// updateViewportWidth recomputes the viewport width from the current
// terminal width, preserving the scroll position.
func (e *Editor) updateViewportWidth() {
	cols := e.ncols - e.stringWidth(e.prompt) - 1
	if cols < 1 {
		cols = 1
	}
	e.viewport.screenCols = cols
}

func (e *Editor) initViewport() {
	e.viewport.firstVisibleLine = 0
	e.viewport.firstVisibleCol = 0
	e.viewport.screenRows = 1
	e.updateViewportWidth()
}

// ensureCursorVisible adjusts the horizontal scroll so the cursor's terminal
// column lies within [firstVisibleCol, firstVisibleCol+screenCols).
func (e *Editor) ensureCursorVisible() {
	row, col := e.text.cursorRowCol()

	lineStartG := e.text.findGraphemeIndex(e.text.lines[row])
	cursorCol := e.graphemeRangeWidth(lineStartG, lineStartG+col)

	first := e.viewport.firstVisibleCol
	if cursorCol < first {
		e.viewport.firstVisibleCol = cursorCol
	} else if cursorCol >= first+e.viewport.screenCols {
		e.viewport.firstVisibleCol = cursorCol - e.viewport.screenCols + 1
	}
}

// widthChanged reports whether the terminal width differs from the cached
// value.
func (e *Editor) widthChanged() bool {
	if e.fixedSize {
		return false
	}
	width, ok := terminalWidth(e.outFd)
	return ok && width != e.ncols
}
