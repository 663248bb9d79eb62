// Testpattern animates an opensimplex plasma through color ramps.
// Press p to cycle ramps, q to quit. Gives a quick eyeball check that a
// terminal's sixel support handles full-palette animated streams.
package main

import (
	"fmt"
	"log"
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
	f, err := os.Create("debug.log")
	if err != nil {
		return err
	}
	defer f.Close()
	log.SetOutput(f)

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

	p, err := newPlasma(400, 240, cfg.MaxColors)
	if err != nil {
		return err
	}
	sched := render.NewScheduler(term)
	sched.SetPrefix([]byte(terminal.CursorHome))

	events, mute := input.Channel(term)
	defer mute()

	tick := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer tick.Stop()

	meter := render.NewMeter()
	report := time.NewTicker(5 * time.Second)
	defer report.Stop()

	for {
		select {
		case <-report.C:
			log.Printf("frame avg %v (%.1f fps)", meter.Average(), meter.FPS())

		case <-tick.C:
			meter.Begin()
			if _, err := sched.Tick(p.frame(), p.pal); err != nil {
				return err
			}
			meter.End()

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
			case ev.Ch == 'p':
				log.Printf("ramp = %s", p.cycle())
			}
		}
	}
}
