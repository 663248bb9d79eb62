package main

import (
	"image"
	"unicode/utf8"

	"github.com/mesolimbo/sixel/internal/moremath"
)

// Kind tags the variant a Component holds.
type Kind int

const (
	KindLabel Kind = iota
	KindButton
	KindCheckbox
	KindRadio
	KindSlider
	KindProgress
	KindTextInput
)

// Caps describe what interactions a kind supports.
type Caps uint8

const (
	Clickable Caps = 1 << iota
	Focusable
	ValueHolder
)

var kindCaps = map[Kind]Caps{
	KindLabel:     0,
	KindButton:    Clickable,
	KindCheckbox:  Clickable | ValueHolder,
	KindRadio:     Clickable | ValueHolder,
	KindSlider:    Clickable | Focusable | ValueHolder,
	KindProgress:  ValueHolder,
	KindTextInput: Clickable | Focusable | ValueHolder,
}

// Component is one widget. The payload fields past Enabled are
// meaningful per kind: Checked for checkboxes and radios, Value and Max
// for sliders and progress bars, Text and Cursor for text inputs,
// Clicks for buttons.
type Component struct {
	Kind    Kind
	Bounds  image.Rectangle
	Label   string
	Enabled bool

	Checked bool
	Group   int // radio group id
	Value   float64
	Max     float64
	Text    string
	Cursor  int // byte offset into Text, always on a rune boundary
	MaxLen  int // maximum runes in Text
	Clicks  int
	Scale   int // text scale for labels, 0 means default

	OnChange func(*Component)

	hover bool
	focus bool
}

func (c *Component) caps() Caps { return kindCaps[c.Kind] }

func (c *Component) changed() {
	if c.OnChange != nil {
		c.OnChange(c)
	}
}

// Form owns a set of components and routes events to them.
type Form struct {
	comps   []*Component
	focused *Component
}

func (f *Form) Add(c *Component) *Component {
	c.Enabled = true
	if c.Kind == KindSlider || c.Kind == KindProgress {
		if c.Max <= 0 {
			c.Max = 100
		}
	}
	if c.Kind == KindTextInput && c.MaxLen <= 0 {
		c.MaxLen = 32
	}
	f.comps = append(f.comps, c)
	return c
}

// Hover updates hover state for a pointer position.
func (f *Form) Hover(pt image.Point) {
	for _, c := range f.comps {
		c.hover = c.Enabled && c.caps()&Clickable != 0 && pt.In(c.Bounds)
	}
}

// Click dispatches a press at a pixel position. Focusable targets take
// focus; anything focused elsewhere loses it.
func (f *Form) Click(pt image.Point) {
	var hit *Component
	for _, c := range f.comps {
		if c.Enabled && c.caps()&Clickable != 0 && pt.In(c.Bounds) {
			hit = c
		}
	}

	if f.focused != nil && f.focused != hit {
		f.focused.focus = false
		f.focused = nil
	}
	if hit == nil {
		return
	}
	if hit.caps()&Focusable != 0 {
		hit.focus = true
		f.focused = hit
	}

	switch hit.Kind {
	case KindButton:
		hit.Clicks++
		hit.changed()
	case KindCheckbox:
		hit.Checked = !hit.Checked
		hit.changed()
	case KindRadio:
		f.selectRadio(hit)
	case KindSlider:
		hit.setSliderFromX(pt.X)
	}
}

// selectRadio checks one radio and clears the rest of its group.
func (f *Form) selectRadio(sel *Component) {
	for _, c := range f.comps {
		if c.Kind == KindRadio && c.Group == sel.Group {
			was := c.Checked
			c.Checked = c == sel
			if c.Checked != was {
				c.changed()
			}
		}
	}
}

func (c *Component) setSliderFromX(x int) {
	w := c.Bounds.Dx()
	if w <= 1 {
		return
	}
	frac := float64(x-c.Bounds.Min.X) / float64(w-1)
	v := moremath.ClampFloat(frac, 0, 1) * c.Max
	if v != c.Value {
		c.Value = v
		c.changed()
	}
}

// FocusNext moves focus to the next focusable component, wrapping.
func (f *Form) FocusNext() {
	var focusable []*Component
	for _, c := range f.comps {
		if c.Enabled && c.caps()&Focusable != 0 {
			focusable = append(focusable, c)
		}
	}
	if len(focusable) == 0 {
		return
	}
	next := focusable[0]
	for i, c := range focusable {
		if c == f.focused {
			next = focusable[(i+1)%len(focusable)]
			break
		}
	}
	if f.focused != nil {
		f.focused.focus = false
	}
	next.focus = true
	f.focused = next
}

// Rune types into the focused text input.
func (f *Form) Rune(r rune) {
	c := f.focused
	if c == nil || c.Kind != KindTextInput || utf8.RuneCountInString(c.Text) >= c.MaxLen {
		return
	}
	c.Text = c.Text[:c.Cursor] + string(r) + c.Text[c.Cursor:]
	c.Cursor += utf8.RuneLen(r)
	c.changed()
}

// Backspace deletes the rune before the cursor in the focused text input.
func (f *Form) Backspace() {
	c := f.focused
	if c == nil || c.Kind != KindTextInput || c.Cursor == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(c.Text[:c.Cursor])
	c.Text = c.Text[:c.Cursor-n] + c.Text[c.Cursor:]
	c.Cursor -= n
	c.changed()
}

// Arrow nudges the focused slider or moves the text cursor.
func (f *Form) Arrow(dx int) {
	c := f.focused
	if c == nil {
		return
	}
	switch c.Kind {
	case KindSlider:
		step := c.Max / 20
		v := moremath.ClampFloat(c.Value+float64(dx)*step, 0, c.Max)
		if v != c.Value {
			c.Value = v
			c.changed()
		}
	case KindTextInput:
		if dx > 0 && c.Cursor < len(c.Text) {
			_, n := utf8.DecodeRuneInString(c.Text[c.Cursor:])
			c.Cursor += n
		} else if dx < 0 && c.Cursor > 0 {
			_, n := utf8.DecodeLastRuneInString(c.Text[:c.Cursor])
			c.Cursor -= n
		}
	}
}
