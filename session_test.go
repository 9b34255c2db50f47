package inline

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLinePipe(t *testing.T) {
	e := New("> ",
		WithInput(strings.NewReader("hello\nworld")),
		WithOutput(io.Discard))

	line, err := e.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "hello", line)

	// An unterminated final line is returned without error.
	line, err = e.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "world", line)

	// Exhausted input reports EOF.
	line, err = e.ReadLine()
	require.Equal(t, io.EOF, err)
	require.Equal(t, "", line)
}

func TestReadLinePipeEmptyLines(t *testing.T) {
	e := New("> ",
		WithInput(strings.NewReader("\n\nx\n")),
		WithOutput(io.Discard))

	for _, want := range []string{"", "", "x"} {
		line, err := e.ReadLine()
		require.NoError(t, err)
		require.Equal(t, want, line)
	}
	_, err := e.ReadLine()
	require.Equal(t, io.EOF, err)
}

func TestReadUnsupported(t *testing.T) {
	out := &bytes.Buffer{}
	e := New("> ",
		WithInput(strings.NewReader("abc\r\n")),
		WithOutput(out))

	line, err := e.readUnsupported()
	require.NoError(t, err)
	require.Equal(t, "abc", line)
	require.Equal(t, "> ", out.String())
}

func TestIsSupported(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	require.True(t, IsSupported())
	t.Setenv("TERM", "dumb")
	require.False(t, IsSupported())
	t.Setenv("TERM", "EMACS")
	require.False(t, IsSupported())
	t.Setenv("TERM", "")
	require.False(t, IsSupported())
}

func TestHistoryPersistsAcrossReads(t *testing.T) {
	e := newScenarioEditor()
	_, err := run(t, e, "first\r")
	require.NoError(t, err)
	_, err = run(t, e, "second\r")
	require.NoError(t, err)

	line, err := run(t, e, "\x1b[A\x1b[A\r")
	require.NoError(t, err)
	require.Equal(t, "first", line)
}

func TestRawModeSkippedWithoutTerminal(t *testing.T) {
	e := newScenarioEditor()
	_, err := run(t, e, "x\r")
	require.NoError(t, err)
	require.False(t, e.handlersInstalled)
	require.Nil(t, e.savedTerm)
}
