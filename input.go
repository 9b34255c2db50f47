package inline

import "unicode/utf8"

const (
	keyCtrlA     = 1
	keyCtrlB     = 2
	keyCtrlC     = 3
	keyCtrlD     = 4
	keyCtrlE     = 5
	keyCtrlF     = 6
	keyCtrlG     = 7
	keyCtrlH     = 8
	keyTab       = 9
	keyLineFeed  = 10 // Control-Return
	keyCtrlK     = 11
	keyCtrlL     = 12
	keyEnter     = 13
	keyCtrlN     = 14
	keyCtrlO     = 15
	keyCtrlP     = 16
	keyCtrlT     = 20
	keyCtrlU     = 21
	keyCtrlV     = 22
	keyCtrlX     = 24
	keyCtrlY     = 25
	keyEscape    = 27
	keyBackspace = 127
	keyUnknown   = 0xd800 /* UTF-16 surrogate area */ + iota
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
	keyShift = 0x10000000
	keyCtrl  = 0x20000000
	keyAlt   = 0x40000000
)

// A map of the supported control sequences to the key that will be emitted
// when the sequence is matched.
//
// The same control sequence is sometimes used by different terminals to
// represent different keys, so the table is restricted to the sequences
// shared by the vast majority of terminals: the standard CSI forms plus the
// DEC "ESC O" aliases for the cursor and Home/End keys.
var supportedSeqs = map[string]rune{
	"\x1b[A":    keyUp,
	"\x1b[B":    keyDown,
	"\x1b[C":    keyRight,
	"\x1b[D":    keyLeft,
	"\x1bOA":    keyUp,
	"\x1bOB":    keyDown,
	"\x1bOC":    keyRight,
	"\x1bOD":    keyLeft,
	"\x1b[H":    keyHome,
	"\x1b[F":    keyEnd,
	"\x1bOH":    keyHome,
	"\x1bOF":    keyEnd,
	"\x1b[Z":    keyTab | keyShift,
	"\x1b[5~":   keyPageUp,
	"\x1b[6~":   keyPageDown,
	"\x1b[1;2C": keyRight | keyShift,
	"\x1b[1;2D": keyLeft | keyShift,
}

type seqTrie struct {
	children []seqTrie
	key      byte
	value    rune
}

func (t *seqTrie) findChild(b byte) *seqTrie {
	for i := range t.children {
		child := &t.children[i]
		if child.key == b {
			return child
		}
	}
	return nil
}

func (t *seqTrie) add(seq []byte, value rune) {
	node := t
	for _, b := range seq {
		child := node.findChild(b)
		if child == nil {
			node.children = append(node.children, seqTrie{key: b})
			child = &node.children[len(node.children)-1]
		}
		node = child
	}
	node.value = value
}

func (t *seqTrie) match(buf, origBuf []byte, mods rune) (rune, []byte) {
	node := t
	for i, b := range buf {
		node = node.findChild(b)
		if node == nil {
			// An unrecognised or partial sequence. There is no way to find the
			// end of a sequence without knowing them all, but [a-zA-Z~] only
			// appears at the end of one.
			for j := i; j < len(buf); j++ {
				b := buf[j]
				if b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '~' {
					return keyUnknown, buf[j+1:]
				}
			}
			return utf8.RuneError, origBuf
		}
		if len(node.children) == 0 {
			return node.value | mods, buf[i+1:]
		}
	}
	// A prefix of a known sequence; the caller reads more and tries again.
	return utf8.RuneError, origBuf
}

var seqMatcher = func() *seqTrie {
	t := &seqTrie{}
	for seq, value := range supportedSeqs {
		t.add([]byte(seq), value)
	}
	return t
}()

// parseKey parses a single key from the prefix of the specified byte slice:
// a control byte, a recognised escape sequence, an Alt-prefixed character, or
// a UTF-8 encoded code point. Rather than consulting termcap/terminfo, the
// decoder handles the sequence set shared by effectively all modern
// terminals (the approach used by linenoise and libraries inspired by it).
//
// If a prefix of a recognised sequence is matched but there are insufficient
// bytes in the input, utf8.RuneError is returned and the caller should read
// more input and retry. An unrecognised escape sequence decodes as
// keyUnknown. On success the remaining bytes of the input are returned.
func parseKey(buf []byte) (rune, []byte) {
	var origBuf = buf
	var mods rune

	for len(buf) >= 2 {
		// An escape that does not begin "\x1bO..." or "\x1b[..." marks the
		// following key with the Alt modifier.
		if buf[0] != keyEscape || buf[1] == 'O' || buf[1] == '[' {
			break
		}
		mods |= keyAlt
		buf = buf[1:]
	}

	if len(buf) <= 0 {
		return utf8.RuneError, origBuf
	}

	if buf[0] != keyEscape {
		if !utf8.FullRune(buf) {
			return utf8.RuneError, origBuf
		}
		r, l := utf8.DecodeRune(buf)
		return r | mods, buf[l:]
	}

	return seqMatcher.match(buf, origBuf, mods)
}

// readKey returns the next decoded key from the input, carrying partial
// escape sequences across reads.
func (e *Editor) readKey() (rune, error) {
	for {
		if len(e.inBytes) > 0 {
			origInBytes := e.inBytes
			key, rest := parseKey(e.inBytes)
			if key != utf8.RuneError {
				e.inBytes = rest
				debugPrintf(" input: %q -> %s\n",
					origInBytes[:len(origInBytes)-len(rest)], debugKey(key))
				return key, nil
			}
		}

		// Read more input, preserving any partial escape sequence.
		if len(e.inBytes) > 0 {
			n := copy(e.inBuf[:], e.inBytes)
			e.inBytes = e.inBuf[:n]
		}
		readBuf := e.inBuf[len(e.inBytes):]
		n, err := e.in.Read(readBuf)
		if n > 0 {
			e.inBytes = e.inBuf[:len(e.inBytes)+n]
			continue
		}
		if err != nil {
			return utf8.RuneError, err
		}
	}
}
