package inline

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// utf8Length returns the encoded length 1..4 implied by a UTF-8 leading byte,
// or 0 for an invalid leading byte or a continuation byte.
func utf8Length(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// Suffix code points modify the previous code point but don't join further:
// VS15 (U+FE0E), VS16 (U+FE0F), the combining keycap (U+20E3), and the five
// emoji skin tone modifiers (U+1F3FB..U+1F3FF).
var suffixExtenders = [][]byte{
	{0xef, 0xb8, 0x8e},
	{0xef, 0xb8, 0x8f},
	{0xe2, 0x83, 0xa3},
	{0xf0, 0x9f, 0x8f, 0xbb},
	{0xf0, 0x9f, 0x8f, 0xbc},
	{0xf0, 0x9f, 0x8f, 0xbd},
	{0xf0, 0x9f, 0x8f, 0xbe},
	{0xf0, 0x9f, 0x8f, 0xbf},
}

// zwj is the zero-width joiner (U+200D), which connects the next code point
// into the same grapheme.
var zwj = []byte{0xe2, 0x80, 0x8d}

// matchPrefix returns the length of the table entry matching a prefix of s,
// or 0.
func matchPrefix(table [][]byte, s []byte) int {
	for _, seq := range table {
		if len(s) >= len(seq) && string(s[:len(seq)]) == string(seq) {
			return len(seq)
		}
	}
	return 0
}

// isExtendedPictographic reports whether the splitter treats cp as
// emoji-joinable: the emoji blocks, miscellaneous symbols, and dingbats.
func isExtendedPictographic(cp rune) bool {
	switch {
	case cp >= 0x1f300 && cp <= 0x1faff:
		return true
	case cp >= 0x2600 && cp <= 0x26ff:
		return true
	case cp >= 0x2700 && cp <= 0x27bf:
		return true
	}
	return false
}

// GraphemeSplit returns the byte length of the first grapheme in s using a
// minimal heuristic segmentation: one leading code point, greedily extended
// by two-byte code points with lead bytes 0xCC..0xCF (the combining marks
// U+0300..U+036F, but also U+0370..U+03FF), suffix extenders (variation selectors,
// the keycap mark, skin tone modifiers), and ZWJ joins between extended
// pictographic code points. Malformed input advances one byte. It is the
// default GraphemeSplitFunc; full Unicode segmentation conformance is not
// promised.
func GraphemeSplit(s []byte) int {
	if len(s) == 0 {
		return 0
	}

	n := utf8Length(s[0])
	if n == 0 {
		n = 1
	}
	if n > len(s) {
		return len(s)
	}

	prev, _ := utf8.DecodeRune(s)
	p := n

	// Combining marks in U+0300..U+036F have leading bytes 0xCC..0xCD; the
	// test accepts 0xCC..0xCF, so U+0370..U+03FF are absorbed as well.
	for p < len(s) && s[p] >= 0xcc && s[p] <= 0xcf {
		n = utf8Length(s[p])
		if n == 0 || p+n > len(s) {
			break
		}
		prev, _ = utf8.DecodeRune(s[p:])
		p += n
	}

	for {
		n = matchPrefix(suffixExtenders, s[p:])
		if n == 0 {
			break
		}
		prev, _ = utf8.DecodeRune(s[p:])
		p += n
	}

	for {
		n = matchPrefix([][]byte{zwj}, s[p:])
		if n == 0 {
			break
		}
		p += n
		if p >= len(s) {
			break
		}
		n = utf8Length(s[p])
		if n == 0 || p+n > len(s) {
			break
		}
		next, _ := utf8.DecodeRune(s[p:])

		// Only join if both sides are emoji.
		if !isExtendedPictographic(prev) || !isExtendedPictographic(next) {
			break
		}
		prev = next
		p += n

		for {
			n = matchPrefix(suffixExtenders, s[p:])
			if n == 0 {
				break
			}
			prev, _ = utf8.DecodeRune(s[p:])
			p += n
		}
	}

	return p
}

// containsExtender reports whether g contains a ZWJ, VS16, or keycap mark.
func containsExtender(g []byte) bool {
	for i := 0; i+2 < len(g); i++ {
		a, b, c := g[i], g[i+1], g[i+2]
		if a == 0xe2 && b == 0x80 && c == 0x8d { // ZWJ
			return true
		}
		if a == 0xef && b == 0xb8 && c == 0x8f { // VS16
			return true
		}
		if a == 0xe2 && b == 0x83 && c == 0xa3 { // keycap
			return true
		}
	}
	return false
}

// GraphemeWidth predicts the display width in terminal cells of the grapheme
// g: 0 for combining-only graphemes, 2 for emoji sequences, fullwidth forms,
// the emoji blocks and CJK unified ideographs, inlineTabWidth for a tab, 1
// for ASCII, and the go-runewidth estimate otherwise. It is the default
// GraphemeWidthFunc.
func GraphemeWidth(g []byte) int {
	if len(g) == 0 {
		return 0
	}
	if g[0] == '\t' {
		return inlineTabWidth
	}
	// Keycap sequences start with an ASCII digit, so the extender check runs
	// before the ASCII fast path.
	if containsExtender(g) {
		return 2
	}
	if g[0] < 0x80 {
		return 1
	}

	// Combining-only grapheme (rare).
	if len(g) >= 2 && (g[0] == 0xcc || g[0] == 0xcd) {
		return 0
	}
	// Fullwidth forms (U+FF00 block).
	if len(g) >= 2 && g[0] == 0xef && (g[1] == 0xbc || g[1] == 0xbd) {
		return 2
	}

	cp, _ := utf8.DecodeRune(g)
	if cp >= 0x1f300 && cp <= 0x1faff { // emoji blocks
		return 2
	}
	if cp >= 0x4e00 && cp <= 0x9fff { // CJK unified ideographs
		return 2
	}
	if cp == utf8.RuneError {
		return 1
	}
	return runewidth.RuneWidth(cp)
}

// StringWidth returns the display width of s using the default grapheme
// splitter and width estimator.
func StringWidth(s string) int {
	b := []byte(s)
	width := 0
	for len(b) > 0 {
		n := GraphemeSplit(b)
		if n <= 0 {
			n = 1
		}
		width += GraphemeWidth(b[:n])
		b = b[n:]
	}
	return width
}
