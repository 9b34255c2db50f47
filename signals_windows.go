//go:build windows

package inline

// Windows consoles deliver neither SIGWINCH nor the POSIX termination
// signals; resizes are picked up by re-querying the width each loop
// iteration, and console-close restoration is handled by the system
// resetting the console mode when the process exits.
func platformInstallHandlers() {}

func platformRemoveHandlers() {}
