package sixel

import "image"

// Unset marks a buffer cell with no pixel; the encoder emits nothing for it.
const Unset = -1

// Buffer is a 2D grid of palette indices, the canonical in-memory image.
// Pix is stored in row-major order, Pix[y*W+x].
type Buffer struct {
	W, H int
	Pix  []int
}

// NewBuffer returns a w by h buffer with every cell Unset.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Pix: make([]int, w*h)}
	b.Clear(Unset)
	return b
}

// Bounds returns the buffer's bounding rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// Set writes a palette index at (x, y). Out-of-bounds writes are silently
// dropped so that drawing primitives clip at the edges for free.
func (b *Buffer) Set(x, y, idx int) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.Pix[y*b.W+x] = idx
}

// At returns the palette index at (x, y), or Unset out of bounds.
func (b *Buffer) At(x, y int) int {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return Unset
	}
	return b.Pix[y*b.W+x]
}

// Clear resets every cell to the given index (commonly Unset or a
// background color).
func (b *Buffer) Clear(idx int) {
	for i := range b.Pix {
		b.Pix[i] = idx
	}
}

// Blit copies src into b with src's origin at (atX, atY), clipped to b's
// bounds. Unset cells in src are copied too; use BlitOver to composite.
func (b *Buffer) Blit(src *Buffer, atX, atY int) {
	b.blit(src, atX, atY, false)
}

// BlitOver copies src into b like Blit but skips src's Unset cells, leaving
// the destination visible beneath them.
func (b *Buffer) BlitOver(src *Buffer, atX, atY int) {
	b.blit(src, atX, atY, true)
}

func (b *Buffer) blit(src *Buffer, atX, atY int, over bool) {
	r := image.Rect(atX, atY, atX+src.W, atY+src.H).Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := (y-atY)*src.W + (r.Min.X - atX)
		di := y*b.W + r.Min.X
		for x := r.Min.X; x < r.Max.X; x, si, di = x+1, si+1, di+1 {
			if over && src.Pix[si] == Unset {
				continue
			}
			b.Pix[di] = src.Pix[si]
		}
	}
}
