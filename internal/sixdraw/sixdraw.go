// Package sixdraw holds stateless drawing primitives over sixel.Buffer.
// Every primitive clips silently at the buffer edges (the buffer drops
// off-bounds writes), and none of them know anything about encoding.
package sixdraw

import (
	"math"

	"github.com/mesolimbo/sixel/internal/moremath"
	"github.com/mesolimbo/sixel/internal/sixel"
)

// Line draws a straight segment from (x0, y0) to (x1, y1) with integer
// Bresenham stepping. Both endpoints are painted exactly once; there is no
// anti-aliasing.
func Line(dst *sixel.Buffer, x0, y0, x1, y1, idx int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := moremath.IntSign(x1 - x0)
	sy := moremath.IntSign(y1 - y0)
	err := dx - dy
	for {
		dst.Set(x0, y0, idx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// HLine draws a horizontal run of length pixels starting at (x, y).
func HLine(dst *sixel.Buffer, x, y, length, idx int) {
	for i := 0; i < length; i++ {
		dst.Set(x+i, y, idx)
	}
}

// VLine draws a vertical run of length pixels starting at (x, y).
func VLine(dst *sixel.Buffer, x, y, length, idx int) {
	for i := 0; i < length; i++ {
		dst.Set(x, y+i, idx)
	}
}

// Rect draws a w by h rectangle anchored at (x, y), filled or as a
// one-pixel border.
func Rect(dst *sixel.Buffer, x, y, w, h, idx int, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if filled {
		for row := 0; row < h; row++ {
			HLine(dst, x, y+row, w, idx)
		}
		return
	}
	HLine(dst, x, y, w, idx)
	HLine(dst, x, y+h-1, w, idx)
	VLine(dst, x, y+1, h-2, idx)
	VLine(dst, x+w-1, y+1, h-2, idx)
}

// Bar fills a w by h column anchored at (x, y). It is a filled Rect under
// a graph-flavored name so graph code reads as intended.
func Bar(dst *sixel.Buffer, x, y, w, h, idx int) {
	Rect(dst, x, y, w, h, idx, true)
}

// Circle draws a midpoint circle of the given radius centered at (cx, cy),
// filled by horizontal spans or as an outline.
func Circle(dst *sixel.Buffer, cx, cy, radius, idx int, filled bool) {
	x, y := radius, 0
	d := 1 - radius
	for x >= y {
		if filled {
			HLine(dst, cx-x, cy+y, 2*x+1, idx)
			HLine(dst, cx-x, cy-y, 2*x+1, idx)
			HLine(dst, cx-y, cy+x, 2*y+1, idx)
			HLine(dst, cx-y, cy-x, 2*y+1, idx)
		} else {
			dst.Set(cx+x, cy+y, idx)
			dst.Set(cx-x, cy+y, idx)
			dst.Set(cx+x, cy-y, idx)
			dst.Set(cx-x, cy-y, idx)
			dst.Set(cx+y, cy+x, idx)
			dst.Set(cx-y, cy+x, idx)
			dst.Set(cx+y, cy-x, idx)
			dst.Set(cx-y, cy-x, idx)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Checkmark draws a check glyph fitting a size by size box at (x, y).
func Checkmark(dst *sixel.Buffer, x, y, size, idx int) {
	midX := x + size/3
	midY := y + size*2/3
	for i := 0; i < size/3; i++ {
		dst.Set(midX-i, midY-i, idx)
		dst.Set(midX-i, midY-i-1, idx)
	}
	for i := 0; i < size*2/3; i++ {
		dst.Set(midX+i, midY-i, idx)
		dst.Set(midX+i, midY-i-1, idx)
	}
}

// Graph renders a series as adjacent one-pixel columns in the x, y, w, h
// box, newest value in the rightmost column. Values map to column heights
// by round((v-minV)/(maxV-minV)*(h-1)), clamped to [0, h-1]; a degenerate
// range (maxV == minV) pins every column to the box's vertical midpoint.
func Graph(dst *sixel.Buffer, vals []float64, x, y, w, h int, minV, maxV float64, idx int) {
	if w <= 0 || h <= 0 || len(vals) == 0 {
		return
	}
	if len(vals) > w {
		vals = vals[len(vals)-w:]
	}
	span := maxV - minV
	col := x + w - len(vals)
	for i, v := range vals {
		var hv int
		if span == 0 {
			hv = h / 2
		} else {
			hv = int(math.Round((v - minV) / span * float64(h-1)))
			hv = moremath.ClampInt(hv, 0, h-1)
		}
		if hv > 0 {
			Bar(dst, col+i, y+h-hv, 1, hv, idx)
		}
	}
}

// HBar fills a horizontal bar proportional to value within [0, maxV].
func HBar(dst *sixel.Buffer, x, y, w, h int, value, maxV float64, idx int) {
	if maxV <= 0 {
		return
	}
	value = moremath.ClampFloat(value, 0, maxV)
	bw := int(value / maxV * float64(w))
	if bw > 0 {
		Rect(dst, x, y, bw, h, idx, true)
	}
}
