// Package inline implements a grapheme-aware interactive line editor with
// history, ghost autocompletion, multiline editing, selections, and syntax
// highlighting.
//
// An Editor reads one logical line of UTF-8 text (possibly spanning many
// visual rows) from the controlling terminal. For the duration of a ReadLine
// call the editor owns the terminal: it enters raw mode, decodes the raw byte
// stream into key events, mutates the text buffer, and redraws the prompt and
// input in place. The terminal state is restored on every exit path,
// including termination signals.
//
// Rendering requires only a minimal set of ANSI escape sequences (relative
// cursor movement, erase-line-to-right, SGR attributes), which are supported
// by effectively all modern terminals. No terminfo database is consulted;
// terminals that are known not to cope (dumb, cons25, emacs) are detected via
// $TERM and served by a plain line read instead.
package inline

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// inlineTabWidth is the number of columns a literal tab occupies; tabs are
	// rendered as this many spaces.
	inlineTabWidth = 2

	// invalidIndex marks "no selection" and "not browsing" index sentinels.
	invalidIndex = -1

	defaultPrompt = ">"
	defaultWidth  = 80
)

// CompleteFunc is called repeatedly by the editor to obtain completion
// suggestions for the current buffer contents. The editor sets *index to zero
// before the first call of each cycle; the callback updates *index to an
// opaque value of its choosing to resume iteration. The returned string is a
// suffix to append at the cursor (for a buffer ending in "pr", a suggestion
// might be "int" to form "print"). Returning ok=false ends the cycle. The
// editor copies each suggestion immediately.
type CompleteFunc func(text string, index *int) (suffix string, ok bool)

// ColorSpan is a single colored span of text produced by a SyntaxColorFunc.
// ByteEnd is the exclusive end of the span; Color is an index into the
// palette configured with SetPalette (out-of-range or negative means the
// default color).
type ColorSpan struct {
	ByteEnd int
	Color   int
}

// SyntaxColorFunc is called repeatedly by the renderer to obtain the next
// colored span starting at offset. Returning ok=false, or a span whose
// ByteEnd is not beyond offset, renders the remainder of the line in the
// default color.
type SyntaxColorFunc func(text string, offset int) (span ColorSpan, ok bool)

// MultilineFunc reports whether the buffer is incomplete: returning true
// makes Return insert a newline instead of committing the line.
type MultilineFunc func(text string) bool

// GraphemeSplitFunc returns the byte length of the first grapheme in s, or 0
// if s is empty. A non-positive result for non-empty s is treated as one
// byte. The default, GraphemeSplit, returns the available bytes of a
// truncated multi-byte sequence.
type GraphemeSplitFunc func(s []byte) int

// GraphemeWidthFunc returns the display width in terminal cells of the
// grapheme g.
type GraphemeWidthFunc func(g []byte) int

// Editor contains the state for reading single or multi-line input from a
// terminal. An Editor is created once, reused across many ReadLine calls
// (history persists between calls), and is not safe for concurrent use.
type Editor struct {
	prompt     string
	contPrompt string

	in  io.Reader
	out io.Writer
	// inFd and outFd are the underlying file descriptors, or -1 when the
	// reader/writer is not a file (tests).
	inFd  int
	outFd int

	// inBytes and inBuf are used by the key reader to carry partial escape
	// sequences between reads.
	inBytes []byte
	inBuf   [256]byte
	// pipe buffers non-interactive reads so unconsumed input survives
	// between ReadLine calls.
	pipe *bufio.Reader

	// outbuf accumulates rendering commands which are flushed to out once
	// per redraw.
	outbuf bytes.Buffer

	text      textBuffer
	clipboard []byte

	suggestions     stringList
	suggestionShown bool

	history          stringList
	maxHistoryLength int

	viewport  viewport
	ncols     int
	fixedSize bool

	syntaxFn    SyntaxColorFunc
	palette     []int
	completeFn  CompleteFunc
	multilineFn MultilineFunc
	splitFn     GraphemeSplitFunc
	widthFn     GraphemeWidthFunc

	bindings map[rune]command

	// termCursorRow and termLinesDrawn track the physical cursor row and the
	// number of rows drawn by the previous redraw, so the next redraw can
	// reposition to the origin and erase leftover rows.
	termCursorRow  int
	termLinesDrawn int

	refresh     bool
	skipHistory bool

	rawEnabled        bool
	savedTerm         *term.State
	handlersInstalled bool
}

// New creates a new Editor displaying the given prompt. With no options the
// editor reads from os.Stdin and writes to os.Stdout.
func New(prompt string, options ...Option) *Editor {
	if prompt == "" {
		prompt = defaultPrompt
	}
	e := &Editor{
		prompt:           prompt,
		contPrompt:       prompt,
		in:               os.Stdin,
		out:              os.Stdout,
		maxHistoryLength: invalidIndex, // unlimited
		ncols:            defaultWidth,
		bindings:         make(map[rune]command),
	}
	if err := parseBindings(e.bindings, defaultBindings); err != nil {
		panic(err)
	}
	e.text.init()
	e.text.split = e.splitGrapheme
	e.suggestions.index = invalidIndex
	e.history.index = invalidIndex

	for _, opt := range options {
		opt.apply(e)
	}

	type fdGetter interface {
		Fd() uintptr
	}
	e.inFd, e.outFd = -1, -1
	if f, ok := e.in.(fdGetter); ok {
		e.inFd = int(f.Fd())
	}
	if f, ok := e.out.(fdGetter); ok {
		e.outFd = int(f.Fd())
	}
	e.pipe = bufio.NewReader(e.in)
	return e
}

// Close releases the editor's resources. The terminal is restored if a crash
// left raw mode enabled.
func (e *Editor) Close() error {
	e.disableRaw()
	if lastEditor.Load() == e {
		lastEditor.Store(nil)
	}
	return nil
}

// SyntaxColor configures the syntax coloring callback. Spans produced by the
// callback are mapped through the palette configured with SetPalette; without
// a palette no coloring occurs.
func (e *Editor) SyntaxColor(fn SyntaxColorFunc) {
	e.syntaxFn = fn
}

// SetPalette sets the color palette used for syntax highlighting. Color
// indices returned by a SyntaxColorFunc are mapped through the palette to a
// final color value, interpreted as:
//
//	-1           default color
//	0-7          ANSI basic colors
//	8-15         ANSI bright colors
//	16-255       xterm 256-color palette
//	>=ColorRGB   truecolor packed as 0x01RRGGBB (see RGB)
//
// The palette is copied. Returns false for an empty palette, which disables
// coloring.
func (e *Editor) SetPalette(palette []int) bool {
	e.palette = nil
	if len(palette) == 0 {
		return false
	}
	e.palette = append([]int(nil), palette...)
	return true
}

// Autocomplete configures the completion callback used to generate ghost
// suggestions.
func (e *Editor) Autocomplete(fn CompleteFunc) {
	e.completeFn = fn
}

// Multiline enables multiline editing. When the predicate reports the buffer
// is incomplete, Return inserts a newline instead of committing; continuation
// lines are prefixed with continuationPrompt (the primary prompt if empty).
func (e *Editor) Multiline(fn MultilineFunc, continuationPrompt string) bool {
	e.multilineFn = fn
	if continuationPrompt == "" {
		continuationPrompt = e.prompt
	}
	e.contPrompt = continuationPrompt
	return true
}

// SetGraphemeSplitter installs a custom grapheme splitter, replacing the
// built-in heuristic. Pass nil to restore the default. UnisegGraphemeSplitter
// provides a Unicode-conformant implementation.
func (e *Editor) SetGraphemeSplitter(fn GraphemeSplitFunc) {
	e.splitFn = fn
	e.text.recompute()
}

// SetGraphemeWidth installs a custom grapheme display width function,
// replacing the built-in heuristic. Pass nil to restore the default.
func (e *Editor) SetGraphemeWidth(fn GraphemeWidthFunc) {
	e.widthFn = fn
}

// splitGrapheme routes through the installed splitter hook.
func (e *Editor) splitGrapheme(s []byte) int {
	if e.splitFn != nil {
		return e.splitFn(s)
	}
	return GraphemeSplit(s)
}

// widthOf routes through the installed width hook.
func (e *Editor) widthOf(g []byte) int {
	if e.widthFn != nil {
		return e.widthFn(g)
	}
	return GraphemeWidth(g)
}

// stringWidth returns the display width of s using the installed grapheme
// splitter and width hooks.
func (e *Editor) stringWidth(s string) int {
	b := []byte(s)
	width := 0
	for len(b) > 0 {
		n := e.splitGrapheme(b)
		if n <= 0 {
			n = 1
		}
		if n > len(b) {
			n = len(b)
		}
		width += e.widthOf(b[:n])
		b = b[n:]
	}
	return width
}

// graphemeRangeWidth returns the terminal width of graphemes [gStart, gEnd).
func (e *Editor) graphemeRangeWidth(gStart, gEnd int) int {
	width := 0
	for g := gStart; g < gEnd; g++ {
		s, end := e.text.graphemeRange(g)
		width += e.widthOf(e.text.buf[s:end])
	}
	return width
}

// reset prepares the editor state for a new interactive session.
func (e *Editor) reset() {
	e.clear()
	e.clearSelection()
	e.endHistoryBrowsing()
	e.clearSuggestions()
	e.termCursorRow = 0
	e.termLinesDrawn = 0
	e.refresh = false
	e.skipHistory = false
}

// clear empties the text buffer and resets the cursor.
func (e *Editor) clear() {
	e.text.clear()
	e.refresh = true
	e.suggestionShown = false
}

// insert inserts bytes at the cursor, leaving the cursor after the inserted
// text.
func (e *Editor) insert(b []byte) {
	off := e.text.insert(b)
	e.setCursor(e.text.findGraphemeIndex(off))
	e.refresh = true
}

func (e *Editor) insertString(s string) {
	e.insert([]byte(s))
}

// setCursor moves the cursor to the given grapheme index, clamping to the
// buffer bounds and keeping it inside the viewport.
func (e *Editor) setCursor(posn int) {
	if posn < 0 {
		posn = 0
	}
	if n := e.text.graphemeCount(); posn > n {
		posn = n
	}
	if e.text.cursor == posn {
		return
	}
	e.text.cursor = posn
	e.refresh = true
	e.ensureCursorVisible()
}

// Cursor movement and navigation.

func (e *Editor) moveLeft() {
	if e.text.cursor > 0 {
		e.setCursor(e.text.cursor - 1)
	}
}

func (e *Editor) moveRight() {
	if e.text.cursor < e.text.graphemeCount() {
		e.setCursor(e.text.cursor + 1)
	}
}

// moveToLineBoundary moves to the start of the cursor's line, or to the start
// of the following line (the position just past the newline) when end is
// true; on the last line that is the end of the buffer.
func (e *Editor) moveToLineBoundary(end bool) {
	row, _ := e.text.cursorRowCol()
	if end {
		row++
	}
	e.setCursor(e.text.findGraphemeIndex(e.text.lines[row]))
}

func (e *Editor) moveToBufferStart() {
	e.setCursor(0)
}

func (e *Editor) moveToBufferEnd() {
	e.setCursor(e.text.graphemeCount())
}

// Deletion.

// deleteAtCursor removes the grapheme under the cursor.
func (e *Editor) deleteAtCursor() {
	if e.text.cursor < e.text.graphemeCount() {
		e.text.deleteGrapheme(e.text.cursor)
		e.refresh = true
	}
}

// backspace removes the selection if one is active, otherwise the grapheme
// before the cursor. At the start of the buffer with no selection it is a
// no-op.
func (e *Editor) backspace() {
	if e.text.selection != invalidIndex {
		e.deleteSelection()
		return
	}
	if e.text.cursor > 0 {
		e.text.deleteGrapheme(e.text.cursor - 1)
		e.setCursor(e.text.cursor - 1)
		e.refresh = true
	}
}

// transpose swaps the grapheme before the cursor with the one under it,
// advancing the cursor; at the end of the buffer it swaps the last two.
func (e *Editor) transpose() {
	n, cur := e.text.graphemeCount(), e.text.cursor
	if n < 2 || cur == 0 {
		return
	}
	a := cur - 1
	if cur >= n {
		a = n - 2
	}
	e.text.swapGraphemes(a, a+1)
	e.refresh = true
	if cur < n {
		e.setCursor(cur + 1)
	}
}

// Color encoding helpers, mirrored by EmitColor and SetPalette.

// Basic ANSI palette colors.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// ColorRGB is the flag bit marking a palette entry as packed truecolor.
const ColorRGB = 0x01000000

// RGB packs a truecolor value for use in a palette.
func RGB(r, g, b int) int {
	return ColorRGB | (r&0xff)<<16 | (g&0xff)<<8 | b&0xff
}

// ANSI216 returns the xterm-256 color cube entry for r, g, b in [0, 5].
func ANSI216(r, g, b int) int {
	return 16 + 36*r + 6*g + b
}

// Gray returns the xterm-256 gray ramp entry for n in [0, 23].
func Gray(n int) int {
	return 232 + n
}
