//go:build !windows

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

type rawState struct {
	attr unix.Termios
}

// makeRaw disables canonical input, echo, signal generation, and flow
// control, and sets a blocking one-byte read threshold. Output
// processing is left alone so "\n" still advances a line.
func makeRaw(f *os.File) (*rawState, error) {
	var attr unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &attr); err != nil {
		return nil, err
	}
	saved := attr
	attr.Iflag &^= unix.ICRNL | unix.IXON
	attr.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	attr.Cc[unix.VMIN] = 1
	attr.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(f.Fd(), termios.TCSAFLUSH, &attr); err != nil {
		return nil, err
	}
	return &rawState{attr: saved}, nil
}

// enableVT is a no-op; unix terminals interpret escape sequences
// natively.
func enableVT(*os.File) error { return nil }

func restore(f *os.File, st *rawState) error {
	return termios.Tcsetattr(f.Fd(), termios.TCSADRAIN, &st.attr)
}

func getSize(f *os.File) (Size, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		Width:  int(ws.Xpixel),
		Height: int(ws.Ypixel),
	}, nil
}
