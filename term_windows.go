//go:build windows

package inline

import (
	"golang.org/x/sys/windows"
)

// IsSupported reports whether the terminal is likely capable of processed
// output. Windows consoles with virtual terminal support always are.
func IsSupported() bool {
	return true
}

// SetUTF8 switches the console's input and output code pages to UTF-8.
func SetUTF8() {
	const cpUTF8 = 65001
	_ = windows.SetConsoleCP(cpUTF8)
	_ = windows.SetConsoleOutputCP(cpUTF8)
}

// terminalWidth queries the console screen buffer attached to fd.
func terminalWidth(fd int) (int, bool) {
	if fd < 0 {
		return 0, false
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, false
	}
	return int(info.Window.Right-info.Window.Left) + 1, true
}

// platformPostRaw enables virtual terminal processing on the output handle
// so the renderer's escape sequences are interpreted, and virtual terminal
// input so key events arrive as the same byte sequences a POSIX terminal
// produces.
func platformPostRaw(e *Editor) {
	if e.outFd >= 0 {
		var mode uint32
		h := windows.Handle(e.outFd)
		if err := windows.GetConsoleMode(h, &mode); err == nil {
			_ = windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		}
	}
	if e.inFd >= 0 {
		var mode uint32
		h := windows.Handle(e.inFd)
		if err := windows.GetConsoleMode(h, &mode); err == nil {
			_ = windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
		}
	}
}
