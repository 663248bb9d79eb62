// Sixtop is a system monitor drawn with sixel graphics: CPU, memory,
// and network panels with scrolling history. Press t to cycle views,
// q to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mesolimbo/sixel/internal/config"
	"github.com/mesolimbo/sixel/internal/input"
	"github.com/mesolimbo/sixel/internal/render"
	"github.com/mesolimbo/sixel/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() (rerr error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	term := terminal.New(os.Stdin, os.Stdout)
	if err := term.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := term.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	col := newCollector(cfg.Sixtop.History, cfg.Sixtop.Interval)
	pan, err := newPanels()
	if err != nil {
		return err
	}
	v := viewNamed(cfg.Sixtop.View)
	sched := render.NewScheduler(term)
	sched.SetPrefix([]byte(terminal.CursorHome))

	events, mute := input.Channel(term)
	defer mute()

	tick := time.NewTicker(time.Duration(cfg.Sixtop.Interval * float64(time.Second)))
	defer tick.Stop()

	draw := func() error {
		_, err := sched.Tick(pan.frame(col, v), pan.pal)
		return err
	}

	col.sample()
	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case <-tick.C:
			col.sample()
			if err := draw(); err != nil {
				return err
			}

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type != input.EventKey {
				continue
			}
			switch {
			case ev.Ch == 'q' || ev.Key == input.KeyEscape:
				return nil
			case ev.Ch == 't':
				v = (v + 1) % viewCount
				if err := term.Clear(); err != nil {
					return err
				}
				sched.Invalidate()
				if err := draw(); err != nil {
					return err
				}
			}
		}
	}
}
