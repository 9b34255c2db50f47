package inline

import (
	"io"
	"strings"
)

// The renderer performs a cursor-relative, multi-row redraw: it moves the
// terminal cursor back to the origin row, re-emits every logical line
// (prompt, horizontally clipped content with syntax coloring and selection
// inverse-video, optionally a faint ghost suggestion), erases any rows left
// over from the previous redraw, and repositions the physical cursor. All
// drawing commands accumulate in outbuf and are flushed in one write.

// flush writes the buffered drawing commands to the output and clears the
// buffer.
func (e *Editor) flush() {
	debugPrintf("output: %q\n", e.outbuf.Bytes())
	_, _ = io.Copy(e.out, &e.outbuf)
	e.outbuf.Reset()
}

// moveToOrigin returns the terminal cursor to the editor's first row.
func (e *Editor) moveToOrigin() {
	e.outbuf.WriteString("\r")
	if e.termCursorRow > 0 {
		cursorMove(&e.outbuf, e.termCursorRow, 0, 0, 0)
	}
}

// moveBy moves the cursor by the given delta; positive dy is down. Downward
// movement uses line feeds so the terminal scrolls if required.
func (e *Editor) moveBy(dx, dy int) {
	if dy < 0 {
		cursorMove(&e.outbuf, -dy, 0, 0, 0)
	} else {
		for i := 0; i < dy; i++ {
			e.outbuf.WriteString("\n")
		}
	}
	if dx < 0 {
		cursorMove(&e.outbuf, 0, 0, -dx, 0)
	} else if dx > 0 {
		cursorMove(&e.outbuf, 0, 0, 0, dx)
	}
}

// clipGraphemeRange clips [gStart, gEnd) to the graphemes whose starting
// column falls inside the viewport. lineStart is the true first grapheme of
// the line, needed to resolve columns when the line is scrolled. A trailing
// newline grapheme is excluded from the clipped range.
func (e *Editor) clipGraphemeRange(lineStart, gStart, gEnd int) (int, int) {
	startCol := e.viewport.firstVisibleCol
	endCol := startCol + e.viewport.screenCols

	col := e.graphemeRangeWidth(lineStart, gStart)
	start, end := -1, gStart

	for i := gStart; i < gEnd; i++ {
		s, gend := e.text.graphemeRange(i)
		w := e.widthOf(e.text.buf[s:gend])

		if col >= startCol && col < endCol {
			if start < 0 {
				start = i
			}
			end = i + 1
		}

		if col+w > endCol {
			break
		}
		col += w
	}

	if start < 0 {
		start = gEnd // line empty or viewport beyond its end
	}
	if end < start {
		end = start
	} else if end > start && e.text.buf[e.text.graphemes[end-1]] == '\n' {
		end--
	}
	return start, end
}

// renderLine draws one logical line: the prompt, the clipped syntax-colored
// content with selection inverse-video, and, on the last line, the ghost
// suggestion. logicalCursorCol is the cursor's column on this line in
// graphemes, or -1 when the cursor is elsewhere; when the cursor is here,
// renderedCursorCol receives its terminal column including the prompt.
func (e *Editor) renderLine(prompt string, byteStart, byteEnd, logicalCursorCol int, isLast bool, renderedCursorCol *int) {
	out := &e.outbuf
	out.WriteString(prompt)
	renderedWidth := e.stringWidth(prompt)
	renderedCursorPosn := -1

	selL, selR := invalidIndex, invalidIndex
	if l, r, _, _, ok := e.text.selectionRange(); ok {
		selL, selR = l, r
	}

	lineStart := e.text.findGraphemeIndex(byteStart)
	gStart, gEnd := e.clipGraphemeRange(lineStart, lineStart, e.text.findGraphemeIndex(byteEnd))

	syntaxFn := e.syntaxFn
	if len(e.palette) == 0 {
		syntaxFn = nil
	}
	var text string
	if syntaxFn != nil {
		text = e.text.String()
	}

	currentColor := -1
	selectionOn := false

	g := gStart
	off := e.text.graphemes[gStart]

	for g < gEnd && off < byteEnd {
		span := ColorSpan{ByteEnd: byteEnd, Color: -1}
		if syntaxFn != nil {
			if s, ok := syntaxFn(text, off); ok && s.ByteEnd > off {
				span = s
			}
		}

		spanColor := -1
		if span.Color >= 0 && span.Color < len(e.palette) {
			spanColor = e.palette[span.Color]
		}

		// Change color only if needed.
		if spanColor != currentColor {
			if currentColor != -1 {
				out.WriteString(termReset)
				selectionOn = false
			}
			if spanColor >= 0 {
				writeColor(out, spanColor)
			}
			currentColor = spanColor
		}

		// Write graphemes up to the span end (clipped).
		for ; g < gEnd; g++ {
			gs, ge := e.text.graphemeRange(g)
			if gs >= span.ByteEnd {
				break
			}

			inSelection := g >= selL && g < selR
			if inSelection != selectionOn {
				if inSelection {
					out.WriteString(termInverse)
				} else {
					out.WriteString(termReset)
					if currentColor >= 0 {
						writeColor(out, currentColor)
					}
				}
				selectionOn = inSelection
			}

			if e.text.buf[gs] == '\n' {
				break
			}

			if logicalCursorCol >= 0 && lineStart+logicalCursorCol == g {
				renderedCursorPosn = renderedWidth
			}

			if e.text.buf[gs] == '\t' {
				out.WriteString(strings.Repeat(" ", inlineTabWidth))
			} else {
				out.Write(e.text.buf[gs:ge])
			}
			renderedWidth += e.widthOf(e.text.buf[gs:ge])
		}

		off = span.ByteEnd
	}

	if selectionOn || currentColor != -1 {
		out.WriteString(termReset)
	}

	// Ghost suggestion suffix, only at the right edge of the last line.
	if isLast && gEnd == e.text.graphemeCount() && logicalCursorCol >= 0 {
		if suffix, ok := e.suggestions.current(); ok && suffix != "" {
			if e.stringWidth(suffix) <= e.viewport.screenCols-renderedWidth {
				e.suggestionShown = true
				out.WriteString(termFaint)
				out.WriteString(suffix)
				out.WriteString(termReset)
			}
		}
	}

	if logicalCursorCol >= 0 {
		if renderedCursorPosn >= 0 {
			*renderedCursorCol = renderedCursorPosn
		} else {
			*renderedCursorCol = renderedWidth // cursor at end of line
		}
	}

	if renderedWidth < e.viewport.screenCols {
		out.WriteString(termClearToEOL)
	}
}

// redraw repaints every logical line and repositions the terminal cursor.
func (e *Editor) redraw() {
	out := &e.outbuf
	out.WriteString(termHideCursor) // prevent flickering
	e.moveToOrigin()

	cursorRow, cursorCol := e.text.cursorRowCol()
	e.suggestionShown = false

	renderedCursorCol := -1
	lineCount := e.text.lineCount()
	for i := 0; i < lineCount; i++ {
		byteStart, byteEnd := e.text.lines[i], e.text.lines[i+1]

		out.WriteString("\r")

		prompt := e.contPrompt
		if i == 0 {
			prompt = e.prompt
		}
		logicalCursorCol := -1
		if cursorRow == i {
			logicalCursorCol = cursorCol
		}
		e.renderLine(prompt, byteStart, byteEnd, logicalCursorCol, i == lineCount-1, &renderedCursorCol)

		if i+1 < lineCount {
			out.WriteString("\n")
		}
	}

	// Erase rows left over from a previous, taller redraw.
	extra := 0
	if e.termLinesDrawn > lineCount {
		extra = e.termLinesDrawn - lineCount
	}
	for i := 0; i < extra; i++ {
		out.WriteString("\n\r")
		out.WriteString(termClearToEOL)
	}

	out.WriteString("\r")
	e.moveBy(renderedCursorCol, cursorRow-lineCount-extra+1)
	e.termCursorRow = cursorRow
	e.termLinesDrawn = lineCount

	out.WriteString(termShowCursor)
	e.flush()
}
