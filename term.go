package inline

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether both stdin and stdout are terminals.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the current width of the controlling terminal in
// columns; ok is false when the terminal cannot be queried.
func TerminalWidth() (width int, ok bool) {
	return terminalWidth(int(os.Stdout.Fd()))
}

// enableRaw puts the editor's terminal into raw mode, saving the previous
// state for restoration. The first raw-mode entry also installs the
// process-wide emergency handlers. Editors whose input is not a terminal
// (tests) proceed without touching any terminal state.
func (e *Editor) enableRaw() bool {
	if e.rawEnabled {
		return true
	}
	if e.inFd < 0 || !term.IsTerminal(e.inFd) {
		e.rawEnabled = true
		return true
	}

	saved, err := term.MakeRaw(e.inFd)
	if err != nil {
		return false
	}
	e.savedTerm = saved
	platformPostRaw(e)

	// Record the state in the process-wide slot so an emergency restore
	// works without reaching through the editor.
	savedState.set(e.inFd, saved)
	lastEditor.Store(e)
	installEmergencyHandlers()
	e.handlersInstalled = true

	e.rawEnabled = true
	return true
}

// disableRaw restores the terminal state saved by enableRaw. It is
// idempotent; the last exit removes the emergency handlers.
func (e *Editor) disableRaw() {
	if !e.rawEnabled {
		return
	}
	if e.savedTerm != nil {
		_ = term.Restore(e.inFd, e.savedTerm)
		e.savedTerm = nil
		// A carriage return puts the cursor back on the left hand side.
		_, _ = e.out.Write([]byte("\r"))
	}
	if e.handlersInstalled {
		removeEmergencyHandlers()
		e.handlersInstalled = false
	}
	e.rawEnabled = false
}
