package inline

import (
	"errors"
	"io"

	"golang.org/x/term"
)

// ReadLine reads a line of input from the user. When stdin and stdout are
// attached to a supported terminal the editor runs interactively: raw mode,
// in-place rendering, and the full command set. When the input is a pipe the
// line is read up to the next LF; when the terminal is unsupported the
// prompt is printed and the line is read the same way.
//
// The returned string is an independent copy of the buffer. When the input
// is exhausted and nothing was read, ReadLine returns "" and io.EOF; a final
// unterminated line is returned without error and the next call reports EOF.
func (e *Editor) ReadLine() (string, error) {
	e.clear()

	if !e.isTTY() {
		return e.readPipe()
	}
	if !IsSupported() {
		return e.readUnsupported()
	}
	return e.readInteractive()
}

// isTTY reports whether both ends of the editor are terminals.
func (e *Editor) isTTY() bool {
	return e.inFd >= 0 && e.outFd >= 0 &&
		term.IsTerminal(e.inFd) && term.IsTerminal(e.outFd)
}

// readPipe reads one line from a non-terminal input: bytes up to an LF,
// which is consumed but not returned.
func (e *Editor) readPipe() (string, error) {
	line, err := e.pipe.ReadBytes('\n')
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	if errors.Is(err, io.EOF) {
		if len(line) == 0 {
			return "", io.EOF
		}
		err = nil
	}
	return string(line), err
}

// readUnsupported prompts and reads a line without entering raw mode, for
// terminals that cannot handle processed output. Trailing control characters
// are stripped.
func (e *Editor) readUnsupported() (string, error) {
	_, _ = e.out.Write([]byte(e.prompt))
	line, err := e.readPipe()
	for len(line) > 0 {
		if c := line[len(line)-1]; c < 0x20 || c == 0x7f {
			line = line[:len(line)-1]
			continue
		}
		break
	}
	return line, err
}

// readInteractive runs the raw-mode editing loop: decode a key, dispatch it,
// honor pending resizes, and repaint when the refresh flag is set. The loop
// ends on a committing command or when the input is exhausted.
func (e *Editor) readInteractive() (string, error) {
	e.reset()
	SetUTF8()
	if !e.enableRaw() {
		return e.readUnsupported()
	}
	defer e.disableRaw()

	e.updateTerminalWidth()
	e.initViewport()
	e.redraw()

	var readErr error
	for {
		key, err := e.readKey()
		if err != nil {
			readErr = err
			break
		}
		if !e.dispatchKey(key) {
			break
		}

		if resizePending.Swap(false) || e.widthChanged() {
			e.updateTerminalWidth()
			e.updateViewportWidth()
			e.refresh = true
		}

		if e.refresh {
			e.redraw()
			e.refresh = false
		}
	}

	e.endHistoryBrowsing()
	e.clearSelection()
	e.clearSuggestions()
	e.redraw()
	e.disableRaw()

	line := e.text.String()
	if line != "" && !e.skipHistory {
		e.AddHistory(line)
	}
	e.outbuf.WriteString("\r\n")
	e.flush()

	if readErr != nil && line == "" {
		return "", io.EOF
	}
	return line, nil
}
