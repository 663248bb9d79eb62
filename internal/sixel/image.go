package sixel

import (
	"image"

	"github.com/nfnt/resize"
)

// FromImage scales an already-decoded image to w by h and quantizes every
// pixel to the nearest registered palette color. Decoding image files is
// the caller's concern; this only bridges image.Image into a Buffer.
//
// Fully transparent pixels map to Unset. Returns an empty buffer when the
// palette has no colors to quantize against.
func FromImage(img image.Image, w, h int, p *Palette) *Buffer {
	b := NewBuffer(w, h)
	if p.Len() == 0 || w == 0 || h == 0 {
		return b
	}
	scaled := resize.Resize(uint(w), uint(h), img, resize.Bilinear)
	bounds := scaled.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := scaled.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			c := RGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			b.Pix[y*w+x] = p.Quantize(c)
		}
	}
	return b
}
