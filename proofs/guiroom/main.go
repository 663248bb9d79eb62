// Guiroom is a widget demo on a sixel canvas: buttons, checkboxes, a
// radio group, a slider wired to a progress bar, and a text input.
// Click with the mouse, tab cycles focus, q or escape quits.
package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/mesolimbo/sixel/internal/input"
	"github.com/mesolimbo/sixel/internal/render"
	"github.com/mesolimbo/sixel/internal/terminal"
)

const (
	canvasW = 480
	canvasH = 380
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func buildForm(f *Form) (counter *Component) {
	f.Add(&Component{Kind: KindLabel, Bounds: rect(20, 16, 440, 30), Label: "SIXEL WIDGETS", Scale: 3})

	counter = f.Add(&Component{Kind: KindLabel, Bounds: rect(220, 76, 200, 20), Label: "CLICKS: 0"})
	btn := f.Add(&Component{Kind: KindButton, Bounds: rect(20, 64, 180, 44), Label: "PRESS ME"})
	btn.OnChange = func(c *Component) {
		counter.Label = "CLICKS: " + strconv.Itoa(c.Clicks)
	}

	f.Add(&Component{Kind: KindCheckbox, Bounds: rect(20, 128, 200, 24), Label: "ENABLE", Checked: true})
	f.Add(&Component{Kind: KindRadio, Bounds: rect(20, 168, 160, 20), Label: "SMALL", Group: 1, Checked: true})
	f.Add(&Component{Kind: KindRadio, Bounds: rect(20, 196, 160, 20), Label: "LARGE", Group: 1})

	progress := f.Add(&Component{Kind: KindProgress, Bounds: rect(20, 296, 440, 20), Value: 40})
	slider := f.Add(&Component{Kind: KindSlider, Bounds: rect(20, 244, 440, 24), Value: 40})
	slider.OnChange = func(c *Component) { progress.Value = c.Value }

	f.Add(&Component{Kind: KindTextInput, Bounds: rect(20, 336, 440, 28), Label: "TYPE HERE"})
	return counter
}

func rect(x, y, w, h int) image.Rectangle { return image.Rect(x, y, x+w, y+h) }

func run() (rerr error) {
	term := terminal.New(os.Stdin, os.Stdout)
	if err := term.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := term.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if err := term.EnableMouse(); err != nil {
		return err
	}

	th := newTheme()
	form := &Form{}
	buildForm(form)

	// Rendering happens off the input thread: frames are drawn into the
	// back buffer, committed, and handed to the background worker, which
	// drops stale frames under load and hands spent buffers back through
	// Submit. The cursor-home goes out inside the worker's own write, so
	// the input thread never touches the output file.
	flip := render.NewFlip(canvasW, canvasH)
	sched := render.NewScheduler(term)
	sched.SetPrefix([]byte(terminal.CursorHome))
	bg := render.StartBackground(sched)
	defer bg.Stop()

	cellW, cellH := term.CellSize()

	events, mute := input.Channel(term)
	defer mute()

	present := func() error {
		th.draw(flip.Draw(), form)
		flip.Reclaim(bg.Submit(flip.Commit(), th.pal))
		return bg.Err()
	}
	if err := present(); err != nil {
		return err
	}

	for ev := range events {
		switch ev.Type {
		case input.EventMouse:
			px := image.Pt(ev.Mouse.X*cellW, ev.Mouse.Y*cellH)
			switch {
			case ev.Key == input.MouseLeft && ev.Mod&input.ModMotion != 0:
				form.Hover(px)
				form.Click(px) // drag keeps sliders tracking
			case ev.Key == input.MouseLeft:
				form.Click(px)
			case ev.Key == input.MouseRelease:
				form.Hover(px)
			}

		case input.EventKey:
			switch {
			case ev.Ch == 'q' || ev.Key == input.KeyEscape:
				return nil
			case ev.Key == input.KeyTab:
				form.FocusNext()
			case ev.Key == input.KeyArrowLeft:
				form.Arrow(-1)
			case ev.Key == input.KeyArrowRight:
				form.Arrow(1)
			case ev.Key == input.KeyBackspace:
				form.Backspace()
			case ev.Ch != 0:
				form.Rune(ev.Ch)
			}
		}
		if err := present(); err != nil {
			return err
		}
	}
	return nil
}
