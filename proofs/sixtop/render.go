package main

import (
	"fmt"

	"github.com/mesolimbo/sixel/internal/moremath"
	"github.com/mesolimbo/sixel/internal/sixdraw"
	"github.com/mesolimbo/sixel/internal/sixel"
)

const (
	frameW   = 640
	panelH   = 150
	panelPad = 10
	inset    = 14
)

// view selects which panels are drawn.
type view int

const (
	viewAll view = iota
	viewCPU
	viewMem
	viewCount
)

func (v view) String() string {
	switch v {
	case viewCPU:
		return "cpu"
	case viewMem:
		return "mem"
	default:
		return "all"
	}
}

func viewNamed(name string) view {
	switch name {
	case "cpu":
		return viewCPU
	case "mem":
		return viewMem
	default:
		return viewAll
	}
}

type panels struct {
	pal *sixel.Palette
	buf *sixel.Buffer

	bg, panelBg, border, text int
	userIdx, sysIdx           int
	userFill, sysFill         int
	rxIdx, txIdx              int
	heat                      []int // green to red ramp for load bars
}

func newPanels() (*panels, error) {
	pal := sixel.NewPalette(32)
	p := &panels{pal: pal}
	p.bg = pal.MustRegister(sixel.RGB(16, 16, 24))
	p.panelBg = pal.MustRegister(sixel.RGB(30, 32, 44))
	p.border = pal.MustRegister(sixel.RGB(90, 95, 120))
	p.text = pal.MustRegister(sixel.RGB(210, 210, 215))
	p.userIdx = pal.MustRegister(sixel.RGB(80, 220, 100))
	p.sysIdx = pal.MustRegister(sixel.RGB(240, 160, 60))
	p.userFill = pal.MustRegister(sixel.RGB(30, 80, 40))
	p.sysFill = pal.MustRegister(sixel.RGB(90, 60, 25))
	p.rxIdx = pal.MustRegister(sixel.RGB(90, 180, 250))
	p.txIdx = pal.MustRegister(sixel.RGB(230, 110, 200))

	heat, err := pal.RegisterRamp(sixel.RGB(80, 220, 100), sixel.RGB(235, 70, 60), 8)
	if err != nil {
		return nil, err
	}
	p.heat = heat
	return p, nil
}

// frame lays out the panels for the requested view and returns the
// rendered buffer. The buffer is reallocated when the view changes
// height.
func (p *panels) frame(c *collector, v view) *sixel.Buffer {
	var draws []func(*sixel.Buffer, int, int, *collector)
	switch v {
	case viewCPU:
		draws = append(draws, p.cpuPanel)
	case viewMem:
		draws = append(draws, p.memPanel)
	default:
		draws = append(draws, p.cpuPanel, p.memPanel, p.netPanel)
	}

	h := len(draws)*(panelH+panelPad) + panelPad
	if p.buf == nil || p.buf.H != h {
		p.buf = sixel.NewBuffer(frameW, h)
	}
	b := p.buf
	b.Clear(p.bg)

	y := panelPad
	for _, draw := range draws {
		sixdraw.RoundedRectFilled(b, panelPad, y, frameW-2*panelPad, panelH, 8, p.panelBg, p.border)
		draw(b, panelPad+inset, y+inset, c)
		y += panelH + panelPad
	}
	return b
}

func (p *panels) graphArea(x, y int) (gx, gy, gw, gh int) {
	return x, y + 24, frameW - 2*panelPad - 2*inset, panelH - 2*inset - 24
}

func (p *panels) cpuPanel(b *sixel.Buffer, x, y int, c *collector) {
	label := fmt.Sprintf("CPU  USER %3.0f%%  SYS %3.0f%%", c.user.latest(), c.system.latest())
	sixdraw.Text(b, x, y, label, p.text, 2)

	gx, gy, gw, gh := p.graphArea(x, y)
	sixdraw.DualLineGraph(b, c.user.vals, c.system.vals, gx, gy, gw, gh, 100,
		p.userIdx, p.sysIdx, p.userFill, p.sysFill)
}

func (p *panels) memPanel(b *sixel.Buffer, x, y int, c *collector) {
	used := c.memUsed.latest()
	label := fmt.Sprintf("MEM  %3.0f%% OF %.0fGB", used, c.memTotalGB)
	sixdraw.Text(b, x, y, label, p.text, 2)

	gx, gy, gw, gh := p.graphArea(x, y)
	barH := 14
	heat := p.heat[moremath.ClampInt(int(used/100*float64(len(p.heat))), 0, len(p.heat)-1)]
	sixdraw.HBar(b, gx, gy, gw, barH, used, 100, heat)
	sixdraw.Rect(b, gx, gy, gw, barH, p.border, false)
	sixdraw.LineGraph(b, c.memUsed.vals, gx, gy+barH+6, gw, gh-barH-6, 100, p.rxIdx, sixel.Unset)
}

func (p *panels) netPanel(b *sixel.Buffer, x, y int, c *collector) {
	label := fmt.Sprintf("NET  RX %6.0fKB/S  TX %6.0fKB/S", c.rx.latest(), c.tx.latest())
	sixdraw.Text(b, x, y, label, p.text, 2)

	gx, gy, gw, gh := p.graphArea(x, y)
	maxV := maxOf(c.rx.vals, c.tx.vals)
	sixdraw.DualLineGraph(b, c.rx.vals, c.tx.vals, gx, gy, gw, gh, maxV,
		p.rxIdx, p.txIdx, sixel.Unset, sixel.Unset)
}

// maxOf picks a graph ceiling covering both series, with a floor so an
// idle network does not stretch noise to full height.
func maxOf(a, b []float64) float64 {
	m := 1.0
	for _, v := range a {
		if v > m {
			m = v
		}
	}
	for _, v := range b {
		if v > m {
			m = v
		}
	}
	return m
}
