package inline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF8Length(t *testing.T) {
	require.Equal(t, 1, utf8Length('a'))
	require.Equal(t, 2, utf8Length(0xc3))
	require.Equal(t, 3, utf8Length(0xe4))
	require.Equal(t, 4, utf8Length(0xf0))
	require.Equal(t, 0, utf8Length(0x80)) // continuation
	require.Equal(t, 0, utf8Length(0xff)) // invalid
}

func TestGraphemeSplit(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"\n", 1},
		{"a", 1},
		{"abc", 1},
		{"é", 2},                                   // precomposed é
		{"é", 3},                                  // e + combining acute
		{"é̈x", 5},                           // stacked combining marks
		{"世界", 3},                             // CJK pair, one at a time
		{"\U0001f680", 4},                               // rocket
		{"☀️", 6},                             // sun + VS16
		{"1⃣", 4},                                  // keycap
		{"\U0001f44d\U0001f3fd", 8},                     // thumbs up + skin tone
		{"\U0001f469\U0001f3fd‍\U0001f680", 15},    // ZWJ emoji with modifier
		{"\U0001f469‍\U0001f469‍\U0001f467", 18}, // family via two joins
		{"a‍b", 4},                                 // ZWJ after a non-pictographic does not join
		{"\xff\xfe", 1},                                 // malformed input advances one byte
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, GraphemeSplit([]byte(tc.input)), "%q", tc.input)
	}
}

func TestGraphemeSplitIncomplete(t *testing.T) {
	// A truncated multi-byte sequence consumes what is available.
	full := []byte("é")
	require.Equal(t, 1, GraphemeSplit(full[:1]))
}

func TestGraphemeWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"a", 1},
		{"\t", inlineTabWidth},
		{"\n", 1},
		{"é", 1}, // combining grapheme with ASCII base
		{"́", 0},  // combining-only
		{"é", 1},
		{"世", 2},                               // CJK unified
		{"Ａ", 2},                               // fullwidth A
		{"\U0001f680", 2},                           // emoji block
		{"☀️", 2},                         // VS16 extender
		{"1⃣", 2},                              // keycap extender
		{"\U0001f469\U0001f3fd‍\U0001f680", 2}, // ZWJ sequence
	}
	for _, tc := range tests {
		b := []byte(tc.input)
		n := GraphemeSplit(b)
		require.Equal(t, len(b), n, "split %q", tc.input)
		require.Equal(t, tc.want, GraphemeWidth(b), "width %q", tc.input)
	}
	require.Equal(t, 0, GraphemeWidth(nil))
}

func TestStringWidth(t *testing.T) {
	require.Equal(t, 0, StringWidth(""))
	require.Equal(t, 5, StringWidth("hello"))
	require.Equal(t, 4, StringWidth("世界"))
	require.Equal(t, 6, StringWidth("a\tb\t"))
	require.Equal(t, 4, StringWidth("café"))
}

func TestUnisegGraphemeSplitter(t *testing.T) {
	require.Equal(t, 0, UnisegGraphemeSplitter(nil))
	require.Equal(t, 3, UnisegGraphemeSplitter([]byte("éx")))
	require.Equal(t, 1, UnisegGraphemeSplitter([]byte("abc")))
}

func TestUniwidthGraphemeWidth(t *testing.T) {
	require.Equal(t, 0, UniwidthGraphemeWidth(nil))
	require.Equal(t, inlineTabWidth, UniwidthGraphemeWidth([]byte("\t")))
	require.Equal(t, 2, UniwidthGraphemeWidth([]byte("世")))
	require.Equal(t, 1, UniwidthGraphemeWidth([]byte("a")))
}

func TestCustomSplitterHooks(t *testing.T) {
	e := New("> ")
	e.SetGraphemeSplitter(UnisegGraphemeSplitter)
	e.SetGraphemeWidth(UniwidthGraphemeWidth)
	e.insertString("éx")
	require.Equal(t, 2, e.text.graphemeCount())
	e.SetGraphemeSplitter(nil)
	e.SetGraphemeWidth(nil)
	require.Equal(t, 2, e.text.graphemeCount())
}
