// Package input decodes terminal key and mouse escape sequences into
// events. It understands plain runes, CSI special keys, and both the SGR
// 1006 and legacy X10 mouse encodings.
package input

import "image"

type EventType int

const (
	EventKey EventType = iota
	EventMouse
)

type Modifier uint8

const (
	ModAlt Modifier = 1 << iota
	ModMotion
)

type Key int

const (
	KeyF1 Key = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	MouseLeft
	MouseMiddle
	MouseRight
	MouseRelease
	MouseWheelUp
	MouseWheelDown
)

// Event is one decoded input. Key events carry either Key or Ch; mouse
// events carry a Mouse* key and a zero-based cell coordinate.
type Event struct {
	Type  EventType // one of Event* constants
	Mod   Modifier  // one of Mod* constants or 0
	Key   Key       // one of Key* constants, invalid if Ch is not 0
	Ch    rune      // a unicode character
	Mouse image.Point
}
