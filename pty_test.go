//go:build !windows

package inline

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// readUntil consumes from r until the accumulated output contains want.
func readUntil(t *testing.T, r io.Reader, want string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	var got strings.Builder
	buf := make([]byte, 4096)
	for time.Now().Before(deadline) {
		n, err := r.Read(buf)
		if n > 0 {
			got.Write(buf[:n])
			if strings.Contains(got.String(), want) {
				return
			}
		}
		if err != nil {
			break
		}
	}
	t.Fatalf("did not observe %q in terminal output; got %q", want, got.String())
}

// TestReadLinePTY exercises the real raw-mode path end to end: the editor
// owns the slave side of a pseudoterminal, the test plays the terminal on
// the master side.
func TestReadLinePTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))
	t.Setenv("TERM", "xterm-256color")

	e := New("> ", WithTTY(tty))
	defer e.Close()

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := e.ReadLine()
		ch <- result{line, err}
	}()

	// Wait for the prompt so raw mode is in effect before typing.
	readUntil(t, ptmx, "> ")
	go io.Copy(io.Discard, ptmx)

	_, err = ptmx.WriteString("hello\r")
	require.NoError(t, err)

	select {
	case res := <-ch:
		require.NoError(t, res.err)
		require.Equal(t, "hello", res.line)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for ReadLine")
	}

	require.Equal(t, []string{"hello"}, e.history.items)
	require.False(t, e.rawEnabled)
}
