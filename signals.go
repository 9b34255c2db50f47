package inline

import (
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// Process-wide state shared with the emergency handlers. lastEditor is the
// editor most recently placed into raw mode; savedState duplicates its saved
// terminal state so a crash can restore the terminal without dereferencing
// the editor. resizePending is set by the window-size-change handler and
// polled by the input loop.
var (
	lastEditor    atomic.Pointer[Editor]
	resizePending atomic.Bool
	savedState    termStateSlot
)

// termStateSlot holds the first saved terminal state of the process. It is
// written on raw-mode entry and read from the signal handler goroutine.
type termStateSlot struct {
	mu    sync.Mutex
	fd    int
	state *term.State
}

func (s *termStateSlot) set(fd int, state *term.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		s.fd = fd
		s.state = state
	}
}

// restore puts the terminal back into its saved state. Safe to call when no
// state was saved.
func (s *termStateSlot) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != nil {
		_ = term.Restore(s.fd, s.state)
	}
}

var (
	handlerMu    sync.Mutex
	installCount int
)

// installEmergencyHandlers installs the signal hooks on the first raw-mode
// entry. Nested sessions share one installation.
func installEmergencyHandlers() {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	installCount++
	if installCount > 1 {
		return
	}
	platformInstallHandlers()
}

// removeEmergencyHandlers removes the signal hooks on the last raw-mode
// exit.
func removeEmergencyHandlers() {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if installCount > 0 {
		installCount--
	}
	if installCount > 0 {
		return
	}
	platformRemoveHandlers()
}
