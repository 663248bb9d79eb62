package main

import (
	"github.com/mesolimbo/sixel/internal/sixdraw"
	"github.com/mesolimbo/sixel/internal/sixel"
	"github.com/mesolimbo/sixel/internal/sixfont"
)

// theme maps the fixed demo palette to register indices.
type theme struct {
	pal *sixel.Palette

	bg, panel, border  int
	text, dim          int
	accent, accentHi   int
	track, fill, thumb int
	focusRing          int
}

func newTheme() *theme {
	pal := sixel.NewPalette(16)
	t := &theme{pal: pal}
	t.bg = pal.MustRegister(sixel.RGB(24, 26, 32))
	t.panel = pal.MustRegister(sixel.RGB(40, 44, 56))
	t.border = pal.MustRegister(sixel.RGB(100, 106, 130))
	t.text = pal.MustRegister(sixel.RGB(220, 222, 228))
	t.dim = pal.MustRegister(sixel.RGB(140, 144, 158))
	t.accent = pal.MustRegister(sixel.RGB(70, 140, 240))
	t.accentHi = pal.MustRegister(sixel.RGB(110, 175, 255))
	t.track = pal.MustRegister(sixel.RGB(60, 64, 80))
	t.fill = pal.MustRegister(sixel.RGB(70, 140, 240))
	t.thumb = pal.MustRegister(sixel.RGB(230, 232, 238))
	t.focusRing = pal.MustRegister(sixel.RGB(250, 210, 90))
	return t
}

// draw renders the whole form into b.
func (t *theme) draw(b *sixel.Buffer, f *Form) {
	b.Clear(t.bg)
	for _, c := range f.comps {
		t.drawComponent(b, c)
	}
}

func (t *theme) drawComponent(b *sixel.Buffer, c *Component) {
	r := c.Bounds
	x, y, w, h := r.Min.X, r.Min.Y, r.Dx(), r.Dy()

	switch c.Kind {
	case KindLabel:
		t.drawLabel(b, c)

	case KindButton:
		face := t.panel
		if c.hover {
			face = t.accentHi
		}
		sixdraw.RoundedRectFilled(b, x, y, w, h, 6, face, t.border)
		tw := sixfont.TextWidth(c.Label, 2)
		sixdraw.Text(b, x+(w-tw)/2, y+(h-2*sixfont.Height)/2, c.Label, t.text, 2)

	case KindCheckbox:
		box := h
		sixdraw.RoundedRectFilled(b, x, y, box, box, 3, t.panel, t.border)
		if c.Checked {
			sixdraw.Checkmark(b, x+3, y+3, box-6, t.accent)
		}
		sixdraw.Text(b, x+box+8, y+(box-2*sixfont.Height)/2, c.Label, t.text, 2)

	case KindRadio:
		rad := h / 2
		cx, cy := x+rad, y+rad
		sixdraw.Circle(b, cx, cy, rad, t.border, false)
		if c.Checked {
			sixdraw.Circle(b, cx, cy, rad-3, t.accent, true)
		}
		sixdraw.Text(b, x+h+8, y+(h-2*sixfont.Height)/2, c.Label, t.text, 2)

	case KindSlider:
		sixdraw.Slider(b, x, y, w, h, c.Value, c.Max, t.track, t.fill, t.thumb)
		if c.focus {
			sixdraw.Rect(b, x-2, y-2, w+4, h+4, t.focusRing, false)
		}

	case KindProgress:
		sixdraw.ProgressBar(b, x, y, w, h, c.Value, c.Max, t.track, t.fill, t.border)

	case KindTextInput:
		sixdraw.RoundedRectFilled(b, x, y, w, h, 3, t.panel, t.border)
		if c.focus {
			sixdraw.Rect(b, x-2, y-2, w+4, h+4, t.focusRing, false)
		}
		tx := x + 6
		ty := y + (h-2*sixfont.Height)/2
		shown := c.Text
		if shown == "" && !c.focus {
			sixdraw.Text(b, tx, ty, c.Label, t.dim, 2)
		} else {
			sixdraw.Text(b, tx, ty, shown, t.text, 2)
		}
		if c.focus {
			curX := tx + sixfont.TextWidth(c.Text[:c.Cursor], 2)
			sixdraw.VLine(b, curX, y+4, h-8, t.accent)
		}
	}
}

func (t *theme) drawLabel(b *sixel.Buffer, c *Component) {
	scale := c.Scale
	if scale <= 0 {
		scale = 2
	}
	sixdraw.Text(b, c.Bounds.Min.X, c.Bounds.Min.Y, c.Label, t.text, scale)
}
