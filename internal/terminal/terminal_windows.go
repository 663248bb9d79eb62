//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

type rawState struct {
	mode uint32
}

// makeRaw switches the console input handle to raw virtual-terminal
// input so escape sequences arrive unprocessed.
func makeRaw(f *os.File) (*rawState, error) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, err
	}
	saved := mode
	mode &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(h, mode); err != nil {
		return nil, err
	}
	return &rawState{mode: saved}, nil
}

// enableVT turns on escape sequence interpretation for the output
// handle.
func enableVT(f *os.File) error {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

func restore(f *os.File, st *rawState) error {
	return windows.SetConsoleMode(windows.Handle(f.Fd()), st.mode)
}

func getSize(f *os.File) (Size, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return Size{}, err
	}
	return Size{
		Cols: int(info.Window.Right-info.Window.Left) + 1,
		Rows: int(info.Window.Bottom-info.Window.Top) + 1,
	}, nil
}
