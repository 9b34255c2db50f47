package inline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddHistory(t *testing.T) {
	e := newBareEditor()

	require.False(t, e.AddHistory(""))
	require.True(t, e.AddHistory("one"))
	require.True(t, e.AddHistory("two"))

	// Adjacent duplicates are elided; non-adjacent ones are not.
	require.False(t, e.AddHistory("two"))
	require.True(t, e.AddHistory("one"))
	require.Equal(t, []string{"one", "two", "one"}, e.history.items)
}

func TestHistoryBound(t *testing.T) {
	e := newBareEditor()
	e.SetHistoryLength(3)

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		e.AddHistory(s)
		require.LessOrEqual(t, e.history.count(), 3)
	}
	require.Equal(t, []string{"c", "d", "e"}, e.history.items)

	// Shrinking the bound trims the front.
	e.SetHistoryLength(1)
	require.Equal(t, []string{"e"}, e.history.items)
}

func TestHistoryDisabled(t *testing.T) {
	e := newBareEditor()
	e.AddHistory("one")
	e.SetHistoryLength(0)
	require.Equal(t, 0, e.history.count())
	require.False(t, e.AddHistory("two"))

	// Negative means unlimited.
	e.SetHistoryLength(-1)
	require.True(t, e.AddHistory("two"))
}

func TestHistoryBrowsing(t *testing.T) {
	e := newBareEditor()
	e.reset()
	e.initViewport()
	e.AddHistory("one")
	e.AddHistory("two")

	// The first history key loads the most recent entry and parks the
	// cursor at its end.
	e.historyKey(-1)
	require.Equal(t, "two", e.text.String())
	require.Equal(t, 3, e.text.cursor)
	require.Equal(t, 1, e.history.index)

	e.historyKey(-1)
	require.Equal(t, "one", e.text.String())
	require.Equal(t, 0, e.history.index)

	// Moving past the oldest entry clamps.
	e.historyKey(-1)
	require.Equal(t, "one", e.text.String())
	require.Equal(t, 0, e.history.index)

	e.historyKey(1)
	require.Equal(t, "two", e.text.String())

	e.endHistoryBrowsing()
	require.Equal(t, invalidIndex, e.history.index)
}

func TestHistoryKeyWithEmptyHistory(t *testing.T) {
	e := newBareEditor()
	e.reset()
	e.initViewport()
	e.insertString("draft")
	e.historyKey(-1)
	require.Equal(t, "draft", e.text.String())
	require.Equal(t, invalidIndex, e.history.index)
}
