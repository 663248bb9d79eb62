package sixdraw

import (
	"github.com/mesolimbo/sixel/internal/sixel"
	"github.com/mesolimbo/sixel/internal/sixfont"
)

// Glyph stamps a single font cell at (x, y), scaled by integer scale.
// Characters missing from the font render the fallback placeholder.
func Glyph(dst *sixel.Buffer, r rune, x, y, idx, scale int) {
	if scale < 1 {
		scale = 1
	}
	g, _ := sixfont.Lookup(r)
	for row, bits := range g {
		for col := 0; col < sixfont.Width; col++ {
			if bits&(1<<uint(sixfont.Width-1-col)) == 0 {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					dst.Set(x+col*scale+sx, y+row*scale+sy, idx)
				}
			}
		}
	}
}

// Text stamps a string left to right at (x, y) and returns the advance
// width in pixels.
func Text(dst *sixel.Buffer, x, y int, s string, idx, scale int) int {
	if scale < 1 {
		scale = 1
	}
	cx := x
	for _, r := range s {
		Glyph(dst, r, cx, y, idx, scale)
		cx += sixfont.Advance * scale
	}
	return cx - x
}
