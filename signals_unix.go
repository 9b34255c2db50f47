//go:build !windows

package inline

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

var sigCh chan os.Signal

// platformInstallHandlers subscribes to window-size changes and the graceful
// termination signals. SIGWINCH sets the sticky resize flag polled by the
// input loop; a termination signal restores the terminal, resets the
// disposition, and re-raises so the process exits with 128+signo. Crash
// signals (SIGSEGV and friends) stay with the Go runtime.
func platformInstallHandlers() {
	sigCh = make(chan os.Signal, 8)
	signal.Notify(sigCh, unix.SIGWINCH, unix.SIGTERM, unix.SIGQUIT, unix.SIGHUP)
	go watchSignals(sigCh)
}

func platformRemoveHandlers() {
	if sigCh != nil {
		signal.Stop(sigCh)
		close(sigCh)
		sigCh = nil
	}
}

func watchSignals(ch chan os.Signal) {
	for sig := range ch {
		if sig == unix.SIGWINCH {
			resizePending.Store(true)
			continue
		}

		savedState.restore()
		if s, ok := sig.(syscall.Signal); ok {
			signal.Reset(sig)
			_ = unix.Kill(unix.Getpid(), s)
		}
		return
	}
}
