// Package sixel models paletted pixel buffers and serializes them as DEC
// Sixel escape sequences.
//
// Sixel encodes six vertical pixels per character. Each data character is
// 63 + mask, where bit 0 is the top pixel of the band and bit 5 the bottom.
// Color channels are expressed in the Sixel range [0, 100].
package sixel

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxColors is the default palette capacity; most terminals register at
// most 256 Sixel colors.
const MaxColors = 256

// ErrPaletteExhausted is returned by Register when the palette is at
// capacity and the color has no exact match. Callers may fall back to
// Quantize.
var ErrPaletteExhausted = errors.New("sixel: palette exhausted")

// Color is an RGB triple in the Sixel channel range [0, 100].
type Color struct {
	R, G, B uint8
}

// RGB converts 8-bit channels to a Sixel range Color.
func RGB(r, g, b uint8) Color {
	return Color{
		R: uint8(int(r) * 100 / 255),
		G: uint8(int(g) * 100 / 255),
		B: uint8(int(b) * 100 / 255),
	}
}

// Palette is a bounded, ordered set of colors with stable dense indices.
// Colors are immutable once registered and the palette never shrinks.
type Palette struct {
	colors  []Color
	index   map[Color]int
	max     int
	version uint64
}

// NewPalette returns an empty palette holding at most max colors; max <= 0
// selects MaxColors.
func NewPalette(max int) *Palette {
	if max <= 0 {
		max = MaxColors
	}
	return &Palette{
		index: make(map[Color]int, max),
		max:   max,
	}
}

// Register returns the index of c, appending it if absent. Registering a
// color already in the palette returns the existing index and does not
// mutate the palette. Fails with ErrPaletteExhausted at capacity.
func (p *Palette) Register(c Color) (int, error) {
	if i, ok := p.index[c]; ok {
		return i, nil
	}
	if len(p.colors) >= p.max {
		return -1, ErrPaletteExhausted
	}
	i := len(p.colors)
	p.colors = append(p.colors, c)
	p.index[c] = i
	p.version++
	return i, nil
}

// MustRegister is Register for program-setup palettes whose size is known
// to fit; it panics on ErrPaletteExhausted.
func (p *Palette) MustRegister(c Color) int {
	i, err := p.Register(c)
	if err != nil {
		panic(err)
	}
	return i
}

// Quantize returns the index of the registered color nearest to c by
// squared Euclidean distance in RGB space. Exact ties break to the lowest
// index. Returns -1 on an empty palette.
func (p *Palette) Quantize(c Color) int {
	if i, ok := p.index[c]; ok {
		return i
	}
	best, bestDist := -1, 0
	for i, pc := range p.colors {
		dr := int(pc.R) - int(c.R)
		dg := int(pc.G) - int(c.G)
		db := int(pc.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// RegisterRamp registers n colors blending from one color to another in Lab
// space, returning their indices in ramp order. Endpoint colors are
// included; n must be at least 2.
func (p *Palette) RegisterRamp(from, to Color, n int) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("sixel: ramp needs at least 2 colors, got %d", n)
	}
	a := colorful.Color{R: float64(from.R) / 100, G: float64(from.G) / 100, B: float64(from.B) / 100}
	b := colorful.Color{R: float64(to.R) / 100, G: float64(to.G) / 100, B: float64(to.B) / 100}
	idxs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		c := a.BlendLab(b, t).Clamped()
		idx, err := p.Register(Color{
			R: uint8(c.R*100 + 0.5),
			G: uint8(c.G*100 + 0.5),
			B: uint8(c.B*100 + 0.5),
		})
		if err != nil {
			return idxs, err
		}
		idxs = append(idxs, idx)
	}
	return idxs, nil
}

// At returns the color at index i, reporting whether i is in range.
func (p *Palette) At(i int) (Color, bool) {
	if i < 0 || i >= len(p.colors) {
		return Color{}, false
	}
	return p.colors[i], true
}

// Len returns the number of registered colors.
func (p *Palette) Len() int { return len(p.colors) }

// Cap returns the palette capacity.
func (p *Palette) Cap() int { return p.max }

// Version is a counter bumped on every registration; it feeds frame
// fingerprints so palette growth invalidates cached frames.
func (p *Palette) Version() uint64 { return p.version }
