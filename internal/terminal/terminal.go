// Package terminal prepares a tty for sixel output: raw mode, alternate
// screen, cursor and mouse reporting control, and size queries.
package terminal

import (
	"os"
	"strconv"
)

// CursorHome moves the cursor to the top left corner. Exported so frame
// writers can fold it into their own output stream.
const CursorHome = "\033[H"

const (
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	enterAlt    = "\033[?1049h"
	exitAlt     = "\033[?1049l"
	clearScreen = "\033[2J"
	mouseOn     = "\033[?1002h\033[?1006h"
	mouseOff    = "\033[?1006l\033[?1002l"
)

// Size reports terminal dimensions in cells and, when the terminal
// provides them, in pixels.
type Size struct {
	Cols, Rows    int
	Width, Height int
}

// Terminal owns a pair of tty files for the duration of a session.
type Terminal struct {
	in    *os.File
	out   *os.File
	raw   *rawState
	mouse bool
	alt   bool
}

// New wraps open tty files. It changes no terminal modes; call Open or
// SetRaw before reading input.
func New(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// Open readies the terminal for a full-screen session: raw mode,
// alternate screen, hidden cursor, cleared display.
func (t *Terminal) Open() error {
	if err := enableVT(t.out); err != nil {
		return err
	}
	if err := t.SetRaw(); err != nil {
		return err
	}
	t.alt = true
	return t.emit(enterAlt + hideCursor + clearScreen + CursorHome)
}

// Close restores everything Open and EnableMouse changed. Safe to call
// on a terminal that was never opened.
func (t *Terminal) Close() (rerr error) {
	if t.mouse {
		rerr = t.DisableMouse()
	}
	if t.alt {
		t.alt = false
		if err := t.emit(showCursor + exitAlt); rerr == nil {
			rerr = err
		}
	}
	if err := t.Restore(); rerr == nil {
		rerr = err
	}
	return rerr
}

func (t *Terminal) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t *Terminal) Write(p []byte) (int, error) { return t.out.Write(p) }

// SetRaw switches the tty to raw input, remembering the prior state for
// Restore.
func (t *Terminal) SetRaw() error {
	st, err := makeRaw(t.in)
	if err != nil {
		return err
	}
	t.raw = st
	return nil
}

// Restore returns the tty to the mode it was in before SetRaw.
func (t *Terminal) Restore() error {
	if t.raw == nil {
		return nil
	}
	err := restore(t.in, t.raw)
	t.raw = nil
	return err
}

// Size queries the output tty dimensions.
func (t *Terminal) Size() (Size, error) { return getSize(t.out) }

// CellSize reports the pixel dimensions of one character cell. Falls
// back to 10x20 when the terminal does not report pixel sizes.
func (t *Terminal) CellSize() (w, h int) {
	sz, err := t.Size()
	if err != nil || sz.Cols == 0 || sz.Rows == 0 || sz.Width == 0 || sz.Height == 0 {
		return 10, 20
	}
	return sz.Width / sz.Cols, sz.Height / sz.Rows
}

// MoveTo places the cursor at a zero-based cell coordinate.
func (t *Terminal) MoveTo(x, y int) error {
	return t.emit("\033[" + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H")
}

func (t *Terminal) Home() error  { return t.emit(CursorHome) }
func (t *Terminal) Clear() error { return t.emit(clearScreen + CursorHome) }

// EnableMouse turns on button-drag reporting in the SGR encoding.
func (t *Terminal) EnableMouse() error {
	t.mouse = true
	return t.emit(mouseOn)
}

func (t *Terminal) DisableMouse() error {
	t.mouse = false
	return t.emit(mouseOff)
}

func (t *Terminal) emit(s string) error {
	_, err := t.out.WriteString(s)
	return err
}
