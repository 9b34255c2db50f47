//go:build !windows

package inline

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// IsSupported reports whether the terminal is likely capable of processed
// output. Terminals identifying as dumb, cons25, or emacs are not.
func IsSupported() bool {
	termEnv := os.Getenv("TERM")
	if termEnv == "" {
		return false
	}
	for _, deny := range []string{"dumb", "cons25", "emacs"} {
		if strings.EqualFold(termEnv, deny) {
			return false
		}
	}
	return true
}

// SetUTF8 sets the console to UTF-8 mode. POSIX terminals need no
// preparation.
func SetUTF8() {}

// terminalWidth queries the window size of the terminal attached to fd.
func terminalWidth(fd int) (int, bool) {
	if fd < 0 {
		return 0, false
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}
	return int(ws.Col), true
}

// platformPostRaw applies platform-specific console tweaks after raw mode is
// entered. POSIX raw mode needs none.
func platformPostRaw(e *Editor) {}
