package sixdraw

import (
	"github.com/mesolimbo/sixel/internal/moremath"
	"github.com/mesolimbo/sixel/internal/sixel"
)

// LineGraph plots a series as a connected polyline across the x, y, w, h
// box, values scaled against [0, maxV] with zero at the bottom edge. A
// fillIdx other than sixel.Unset floods the area under the line. When the
// series is longer than the box the most recent w samples are shown.
func LineGraph(dst *sixel.Buffer, vals []float64, x, y, w, h int, maxV float64, lineIdx, fillIdx int) {
	if len(vals) == 0 || w <= 0 || h <= 0 || maxV <= 0 {
		return
	}
	if len(vals) > w {
		vals = vals[len(vals)-w:]
	}

	ys := make([]int, len(vals))
	for i, v := range vals {
		v = moremath.ClampFloat(v, 0, maxV)
		ys[i] = y + h - 1 - int(v/maxV*float64(h-1))
	}

	xs := make([]int, len(vals))
	if len(vals) == 1 {
		xs[0] = x + w - 1
	} else {
		step := float64(w-1) / float64(len(vals)-1)
		for i := range xs {
			xs[i] = x + int(float64(i)*step)
		}
	}

	if fillIdx != sixel.Unset {
		for i := range xs {
			VLine(dst, xs[i], ys[i], y+h-ys[i], fillIdx)
			if i > 0 {
				for gx := xs[i-1] + 1; gx < xs[i]; gx++ {
					t := float64(gx-xs[i-1]) / float64(xs[i]-xs[i-1])
					gy := ys[i-1] + int(t*float64(ys[i]-ys[i-1]))
					VLine(dst, gx, gy, y+h-gy, fillIdx)
				}
			}
		}
	}

	dst.Set(xs[0], ys[0], lineIdx)
	for i := 1; i < len(xs); i++ {
		Line(dst, xs[i-1], ys[i-1], xs[i], ys[i], lineIdx)
	}
}

// DualLineGraph overlays two series in one box, the first drawn beneath
// the second (CPU user/system style).
func DualLineGraph(dst *sixel.Buffer, a, b []float64, x, y, w, h int, maxV float64, aLine, bLine, aFill, bFill int) {
	LineGraph(dst, a, x, y, w, h, maxV, aLine, aFill)
	LineGraph(dst, b, x, y, w, h, maxV, bLine, bFill)
}

// ProgressBar draws a rounded progress bar filled proportionally to value
// in [0, maxV]. borderIdx may be sixel.Unset for no border.
func ProgressBar(dst *sixel.Buffer, x, y, w, h int, value, maxV float64, bgIdx, fillIdx, borderIdx int) {
	const radius = 3
	if maxV <= 0 {
		return
	}
	value = moremath.ClampFloat(value, 0, maxV)

	RoundedRectFilled(dst, x, y, w, h, radius, bgIdx, sixel.Unset)

	fw := int(value / maxV * float64(w))
	if fw >= 2*radius {
		RoundedRectFilled(dst, x, y, fw, h, radius, fillIdx, sixel.Unset)
	} else if fw > 0 {
		Rect(dst, x+radius, y, fw, h, fillIdx, true)
		for cy := 0; cy < radius; cy++ {
			for cx := 0; cx < radius; cx++ {
				dx := float64(radius-cx) - 0.5
				dy := float64(radius-cy) - 0.5
				if dx*dx+dy*dy <= float64(radius*radius) {
					dst.Set(x+cx, y+cy, fillIdx)
					dst.Set(x+cx, y+h-1-cy, fillIdx)
				}
			}
		}
	}

	if borderIdx != sixel.Unset {
		RoundedRect(dst, x, y, w, h, radius, borderIdx, AllCorners)
	}
}

// Slider draws a slider track with a filled portion and a rounded thumb,
// returning the x coordinate of the thumb center for hit testing.
func Slider(dst *sixel.Buffer, x, y, w, h int, value, maxV float64, trackIdx, fillIdx, thumbIdx int) int {
	const thumbWidth = 8
	if maxV <= 0 {
		maxV = 1
	}
	value = moremath.ClampFloat(value, 0, maxV)

	trackY := y + h/2 - 2
	Rect(dst, x, trackY, w, 4, trackIdx, true)

	fw := int(value / maxV * float64(w))
	if fw > 0 {
		Rect(dst, x, trackY, fw, 4, fillIdx, true)
	}

	thumbX := x + int(value/maxV*float64(w-thumbWidth))
	RoundedRectFilled(dst, thumbX, y, thumbWidth, h, 3, thumbIdx, sixel.Unset)
	return thumbX + thumbWidth/2
}
