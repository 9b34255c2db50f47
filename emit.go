package inline

import (
	"bytes"
	"os"
	"strconv"
	"strings"
)

const (
	termReset      = "\x1b[0m"
	termClearToEOL = "\x1b[K"
	termResetFg    = "\x1b[39m"
	termHideCursor = "\x1b[?25l"
	termShowCursor = "\x1b[?25h"
	termFaint      = "\x1b[2m"
	termInverse    = "\x1b[7m"
)

// colorSequence returns the escape sequence selecting the given color, or ""
// for the default color. Colors follow the palette encoding: 0-7 ANSI base,
// 8-15 bright, 16-255 xterm-256, values with the ColorRGB bit set packed
// truecolor.
func colorSequence(color int) string {
	if color < 0 {
		return ""
	}
	var buf strings.Builder
	switch {
	case color < 8:
		buf.WriteString("\x1b[")
		buf.WriteString(strconv.Itoa(30 + color))
		buf.WriteString("m")
	case color < 16:
		buf.WriteString("\x1b[")
		buf.WriteString(strconv.Itoa(90 + (color & 7)))
		buf.WriteString("m")
	case color <= 255:
		buf.WriteString("\x1b[38;5;")
		buf.WriteString(strconv.Itoa(color))
		buf.WriteString("m")
	default: // packed as 0x01RRGGBB
		buf.WriteString("\x1b[38;2;")
		buf.WriteString(strconv.Itoa(color >> 16 & 0xff))
		buf.WriteString(";")
		buf.WriteString(strconv.Itoa(color >> 8 & 0xff))
		buf.WriteString(";")
		buf.WriteString(strconv.Itoa(color & 0xff))
		buf.WriteString("m")
	}
	return buf.String()
}

func writeColor(buf *bytes.Buffer, color int) {
	buf.WriteString(colorSequence(color))
}

// Emit writes a string to stdout verbatim, for hosts that intersperse their
// own output with the editor's.
func Emit(s string) {
	_, _ = os.Stdout.WriteString(s)
}

// EmitColor writes the escape sequence selecting the given color to stdout,
// in the format accepted by SetPalette.
func EmitColor(color int) {
	_, _ = os.Stdout.WriteString(colorSequence(color))
}

// cursorMove generates the escape sequences to move the cursor relative to
// its current position. Moving by one (a common case) omits the count.
func cursorMove(buf *bytes.Buffer, up, down, left, right int) {
	const (
		csi             = "\x1b[" // csi = Control Sequence Introducer
		moveUpSuffix    = "A"
		moveDownSuffix  = "B"
		moveRightSuffix = "C"
		moveLeftSuffix  = "D"
	)

	if up == 1 {
		buf.WriteString(csi)
		buf.WriteString(moveUpSuffix)
	} else if up > 1 {
		buf.WriteString(csi)
		buf.WriteString(strconv.Itoa(up))
		buf.WriteString(moveUpSuffix)
	}

	if down == 1 {
		buf.WriteString(csi)
		buf.WriteString(moveDownSuffix)
	} else if down > 1 {
		buf.WriteString(csi)
		buf.WriteString(strconv.Itoa(down))
		buf.WriteString(moveDownSuffix)
	}

	if right == 1 {
		buf.WriteString(csi)
		buf.WriteString(moveRightSuffix)
	} else if right > 1 {
		buf.WriteString(csi)
		buf.WriteString(strconv.Itoa(right))
		buf.WriteString(moveRightSuffix)
	}

	if left == 1 {
		buf.WriteString(csi)
		buf.WriteString(moveLeftSuffix)
	} else if left > 1 {
		buf.WriteString(csi)
		buf.WriteString(strconv.Itoa(left))
		buf.WriteString(moveLeftSuffix)
	}
}

// DisplayWithSyntaxColoring writes s to the editor's output using the
// configured syntax callback and palette, without modifying editor state.
// Hosts use it to echo committed lines with the same coloring the editor
// applied while the line was edited. Without a syntax callback or palette
// the string is written plain. Tabs inside colored spans are expanded to the
// editor's tab width; plain output, including an uncolored remainder, is
// written verbatim.
func (e *Editor) DisplayWithSyntaxColoring(s string) {
	if e.syntaxFn == nil || len(e.palette) == 0 {
		_, _ = e.out.Write([]byte(s))
		return
	}

	offset := 0
	for offset < len(s) {
		span, ok := e.syntaxFn(s, offset)
		if !ok || span.ByteEnd <= offset {
			// No more spans or a broken callback; write the rest uncolored.
			_, _ = e.out.Write([]byte(s[offset:]))
			return
		}
		if span.ByteEnd > len(s) {
			span.ByteEnd = len(s)
		}

		if span.Color >= 0 && span.Color < len(e.palette) {
			_, _ = e.out.Write([]byte(colorSequence(e.palette[span.Color])))
		}
		for i := offset; i < span.ByteEnd; i++ {
			if s[i] == '\t' {
				_, _ = e.out.Write([]byte(strings.Repeat(" ", inlineTabWidth)))
			} else {
				_, _ = e.out.Write([]byte{s[i]})
			}
		}
		_, _ = e.out.Write([]byte(termResetFg))

		offset = span.ByteEnd
	}
}
