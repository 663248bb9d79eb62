// Snake on a sixel canvas. Arrows or wasd steer, r restarts after a
// crash, q quits.
package main

import (
	"fmt"
	"math/rand"
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

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := newGame(cfg.Snake.Width, cfg.Snake.Height, rng)
	rend := newRenderer(g)
	sched := render.NewScheduler(term)
	sched.SetPrefix([]byte(terminal.CursorHome))

	events, mute := input.Channel(term)
	defer mute()

	tick := time.NewTicker(time.Duration(float64(time.Second) / cfg.Snake.Speed))
	defer tick.Stop()

	draw := func() error {
		_, err := sched.Tick(rend.frame(g), rend.pal)
		return err
	}
	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case <-tick.C:
			g.step()
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
			case ev.Ch == 'r' && g.over:
				g.reset()
			case ev.Key == input.KeyArrowUp || ev.Ch == 'w':
				g.turn(up)
			case ev.Key == input.KeyArrowDown || ev.Ch == 's':
				g.turn(down)
			case ev.Key == input.KeyArrowLeft || ev.Ch == 'a':
				g.turn(left)
			case ev.Key == input.KeyArrowRight || ev.Ch == 'd':
				g.turn(right)
			}
			if err := draw(); err != nil {
				return err
			}
		}
	}
}
