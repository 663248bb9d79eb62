package input

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// csiKeys maps the final bytes of short CSI sequences to special keys.
var csiKeys = map[byte]Key{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys maps CSI n~ parameters to special keys.
var tildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPgup,
	6:  KeyPgdn,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// Parse decodes the next event from buf, returning the event, the number
// of bytes consumed, and whether decoding succeeded. A false result with
// zero consumed means buf holds an incomplete sequence; a false result
// with nonzero consumed means those bytes should be discarded.
func Parse(buf []byte) (Event, int, bool) {
	if len(buf) == 0 {
		return Event{}, 0, false
	}

	if buf[0] == 0x1b {
		return parseEscape(buf)
	}

	return parseRune(buf, 0)
}

func parseRune(buf []byte, mod Modifier) (Event, int, bool) {
	switch buf[0] {
	case '\r', '\n':
		return Event{Type: EventKey, Mod: mod, Key: KeyEnter}, 1, true
	case '\t':
		return Event{Type: EventKey, Mod: mod, Key: KeyTab}, 1, true
	case 0x7f, 0x08:
		return Event{Type: EventKey, Mod: mod, Key: KeyBackspace}, 1, true
	}
	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError && n == 1 {
		if !utf8.FullRune(buf) {
			return Event{}, 0, false
		}
		return Event{}, 1, false
	}
	return Event{Type: EventKey, Mod: mod, Ch: r}, n, true
}

func parseEscape(buf []byte) (Event, int, bool) {
	if len(buf) == 1 {
		// A lone escape byte is ambiguous: it may be the escape key or
		// the start of a longer sequence split across reads. Report it
		// incomplete; Channel delivers it as KeyEscape if nothing more
		// arrives in time.
		return Event{}, 0, false
	}

	if buf[1] == '[' {
		return parseCSI(buf)
	}
	if buf[1] == 'O' {
		if len(buf) == 2 {
			return Event{}, 0, false
		}
		if buf[2] >= 'P' && buf[2] <= 'S' {
			// SS3 encoding for F1..F4.
			return Event{Type: EventKey, Key: KeyF1 - Key(buf[2]-'P')}, 3, true
		}
	}

	// Alt-modified rune.
	ev, n, ok := parseRune(buf[1:], ModAlt)
	if ok {
		return ev, n + 1, true
	}
	if n == 0 {
		return Event{}, 0, false
	}
	return Event{}, n + 1, false
}

func parseCSI(buf []byte) (Event, int, bool) {
	if len(buf) < 3 {
		return Event{}, 0, false
	}

	if buf[2] == 'M' || buf[2] == '<' {
		return parseMouse(buf)
	}

	if key, ok := csiKeys[buf[2]]; ok {
		return Event{Type: EventKey, Key: key}, 3, true
	}

	// CSI n~ form with a decimal parameter.
	i := 2
	n := 0
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		n = n*10 + int(buf[i]-'0')
		i++
	}
	if i == len(buf) {
		return Event{}, 0, false
	}
	if i > 2 && buf[i] == '~' {
		if key, ok := tildeKeys[n]; ok {
			return Event{Type: EventKey, Key: key}, i + 1, true
		}
		return Event{}, i + 1, false
	}

	// Unrecognized sequence; discard through its final byte.
	for i = 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return Event{}, i + 1, false
		}
	}
	return Event{}, 0, false
}

func parseMouse(buf []byte) (Event, int, bool) {
	if buf[2] == 'M' {
		// X10 encoding: \033 [ M Cb Cx Cy
		if len(buf) < 6 {
			return Event{}, 0, false
		}
		b := int(buf[3]) - 32
		ev, ok := mouseButton(b)
		if !ok {
			return Event{}, 6, false
		}
		// the coord is 1,1 for upper left
		ev.Mouse.X = int(buf[4]) - 1 - 32
		ev.Mouse.Y = int(buf[5]) - 1 - 32
		return ev, 6, true
	}

	// SGR 1006 encoding: \033 [ < Cb ; Cx ; Cy (M or m)
	mi := bytes.IndexAny(buf, "Mm")
	if mi == -1 {
		return Event{}, 0, false
	}
	isM := buf[mi] == 'M'

	fields := bytes.Split(buf[3:mi], []byte{';'})
	if len(fields) != 3 {
		return Event{}, mi + 1, false
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(string(f))
		if err != nil {
			return Event{}, mi + 1, false
		}
		nums[i] = n
	}

	ev, ok := mouseButton(nums[0])
	if !ok {
		return Event{}, mi + 1, false
	}
	if !isM {
		// release is signaled by a lowercase m
		ev.Key = MouseRelease
	}
	ev.Mouse.X = nums[1] - 1
	ev.Mouse.Y = nums[2] - 1
	return ev, mi + 1, true
}

func mouseButton(b int) (Event, bool) {
	ev := Event{Type: EventMouse}
	switch b & 3 {
	case 0:
		if b&64 != 0 {
			ev.Key = MouseWheelUp
		} else {
			ev.Key = MouseLeft
		}
	case 1:
		if b&64 != 0 {
			ev.Key = MouseWheelDown
		} else {
			ev.Key = MouseMiddle
		}
	case 2:
		ev.Key = MouseRight
	case 3:
		ev.Key = MouseRelease
	}
	if b&32 != 0 {
		ev.Mod |= ModMotion
	}
	return ev, true
}
