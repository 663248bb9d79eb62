package sixdraw

import "github.com/mesolimbo/sixel/internal/sixel"

// Corners selects which corners of a rounded rectangle get an arc;
// unselected corners stay square.
type Corners uint8

const (
	TopLeft Corners = 1 << iota
	TopRight
	BottomLeft
	BottomRight

	AllCorners = TopLeft | TopRight | BottomLeft | BottomRight
)

// RoundedRect draws a rectangle border with quarter-circle arcs on the
// selected corners.
func RoundedRect(dst *sixel.Buffer, x, y, w, h, radius, idx int, corners Corners) {
	HLine(dst, x+radius, y, w-2*radius, idx)
	HLine(dst, x+radius, y+h-1, w-2*radius, idx)
	VLine(dst, x, y+radius, h-2*radius, idx)
	VLine(dst, x+w-1, y+radius, h-2*radius, idx)

	corner(dst, x, y, radius, idx, corners&TopLeft != 0, -1, -1)
	corner(dst, x+w-1-radius, y, radius, idx, corners&TopRight != 0, 1, -1)
	corner(dst, x, y+h-1-radius, radius, idx, corners&BottomLeft != 0, -1, 1)
	corner(dst, x+w-1-radius, y+h-1-radius, radius, idx, corners&BottomRight != 0, 1, 1)
}

// RoundedRectFilled draws a filled rounded rectangle; borderIdx other than
// sixel.Unset adds a border pass on top.
func RoundedRectFilled(dst *sixel.Buffer, x, y, w, h, radius, fillIdx, borderIdx int) {
	Rect(dst, x+radius, y, w-2*radius, h, fillIdx, true)
	Rect(dst, x, y+radius, w, h-2*radius, fillIdx, true)

	for cy := 0; cy < radius; cy++ {
		for cx := 0; cx < radius; cx++ {
			dx := float64(radius-cx) - 0.5
			dy := float64(radius-cy) - 0.5
			if dx*dx+dy*dy <= float64(radius*radius) {
				dst.Set(x+cx, y+cy, fillIdx)
				dst.Set(x+w-1-cx, y+cy, fillIdx)
				dst.Set(x+cx, y+h-1-cy, fillIdx)
				dst.Set(x+w-1-cx, y+h-1-cy, fillIdx)
			}
		}
	}

	if borderIdx != sixel.Unset {
		RoundedRect(dst, x, y, w, h, radius, borderIdx, AllCorners)
	}
}

func corner(dst *sixel.Buffer, x, y, radius, idx int, round bool, sx, sy int) {
	if !round {
		// Square corner: close the border gap left by the radius inset.
		if sy < 0 {
			if sx < 0 {
				HLine(dst, x, y, radius, idx)
				VLine(dst, x, y, radius, idx)
			} else {
				HLine(dst, x+1, y, radius, idx)
				VLine(dst, x+radius, y, radius, idx)
			}
		} else {
			if sx < 0 {
				HLine(dst, x, y+radius, radius, idx)
				VLine(dst, x, y+1, radius, idx)
			} else {
				HLine(dst, x+1, y+radius, radius, idx)
				VLine(dst, x+radius, y+1, radius, idx)
			}
		}
		return
	}
	// Arc approximation: pixels whose distance from the inner corner point
	// lands on the radius shell.
	for i := 0; i <= radius; i++ {
		for j := 0; j <= radius; j++ {
			d := i*i + j*j
			if d >= (radius-1)*(radius-1) && d <= (radius+1)*(radius+1) {
				px := x + radius - i
				if sx > 0 {
					px = x + i
				}
				py := y + radius - j
				if sy > 0 {
					py = y + j
				}
				dst.Set(px, py, idx)
			}
		}
	}
}
