package main

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mesolimbo/sixel/internal/sixel"
)

// ramp names a registered gradient.
type ramp struct {
	name string
	idxs []int
}

// plasma animates opensimplex noise through a color ramp.
type plasma struct {
	pal   *sixel.Palette
	buf   *sixel.Buffer
	noise opensimplex.Noise
	ramps []ramp
	cur   int
	freq  float64
	t     float64
}

func newPlasma(w, h, maxColors int) (*plasma, error) {
	pal := sixel.NewPalette(maxColors)
	p := &plasma{
		pal:   pal,
		buf:   sixel.NewBuffer(w, h),
		noise: opensimplex.NewNormalized(0),
		freq:  0.02,
	}

	steps := maxColors / 4
	for _, r := range []struct {
		name     string
		from, to sixel.Color
	}{
		{"fire", sixel.RGB(20, 0, 40), sixel.RGB(255, 200, 40)},
		{"ocean", sixel.RGB(0, 10, 60), sixel.RGB(120, 240, 255)},
		{"forest", sixel.RGB(10, 30, 10), sixel.RGB(200, 255, 140)},
	} {
		idxs, err := pal.RegisterRamp(r.from, r.to, steps)
		if err != nil {
			return nil, err
		}
		p.ramps = append(p.ramps, ramp{name: r.name, idxs: idxs})
	}
	return p, nil
}

// cycle switches to the next ramp.
func (p *plasma) cycle() string {
	p.cur = (p.cur + 1) % len(p.ramps)
	return p.ramps[p.cur].name
}

// frame advances the animation and redraws the buffer. Noise values in
// [0, 1] pick a ramp entry directly; the hue shimmer overlay instead
// goes through palette quantization, exercising the nearest-color path.
func (p *plasma) frame() *sixel.Buffer {
	p.t += 0.03
	idxs := p.ramps[p.cur].idxs
	b := p.buf

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			n := p.noise.Eval3(float64(x)*p.freq, float64(y)*p.freq, p.t)
			i := int(n * float64(len(idxs)))
			if i >= len(idxs) {
				i = len(idxs) - 1
			}
			b.Set(x, y, idxs[i])
		}
	}

	// shimmer band: smooth hue rotation quantized to the palette
	bandTop := b.H - 12
	for y := bandTop; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			hue := float64((x+int(p.t*40))%b.W) / float64(b.W) * 360
			c := colorful.Hsv(hue, 0.7, 0.9)
			r8, g8, b8 := c.Clamped().RGB255()
			b.Set(x, y, p.pal.Quantize(sixel.RGB(r8, g8, b8)))
		}
	}
	return b
}
