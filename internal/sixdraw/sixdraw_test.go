package sixdraw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesolimbo/sixel/internal/sixel"
	. "github.com/mesolimbo/sixel/internal/sixdraw"
	"github.com/mesolimbo/sixel/internal/sixfont"
)

func count(b *sixel.Buffer, idx int) int {
	n := 0
	for _, v := range b.Pix {
		if v == idx {
			n++
		}
	}
	return n
}

func TestLine_endpointsExactlyOnce(t *testing.T) {
	for _, tc := range []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 1, 2, 6, 2},
		{"vertical", 3, 0, 3, 7},
		{"diagonal", 0, 0, 7, 7},
		{"steep", 2, 0, 4, 7},
		{"shallow reversed", 7, 3, 0, 1},
		{"single point", 4, 4, 4, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := sixel.NewBuffer(8, 8)
			Line(b, tc.x0, tc.y0, tc.x1, tc.y1, 1)
			assert.Equal(t, 1, b.At(tc.x0, tc.y0))
			assert.Equal(t, 1, b.At(tc.x1, tc.y1))
		})
	}
}

func TestLine_clipsOffBuffer(t *testing.T) {
	b := sixel.NewBuffer(4, 4)
	Line(b, -5, -5, 8, 8, 1) // crosses the buffer diagonally
	assert.Equal(t, 1, b.At(0, 0))
	assert.Equal(t, 1, b.At(3, 3))
}

func TestRect(t *testing.T) {
	b := sixel.NewBuffer(6, 6)
	Rect(b, 1, 1, 4, 4, 2, false)
	assert.Equal(t, 12, count(b, 2), "border covers the perimeter only")
	assert.Equal(t, sixel.Unset, b.At(2, 2))

	Rect(b, 1, 1, 4, 4, 3, true)
	assert.Equal(t, 16, count(b, 3))
}

func TestBar(t *testing.T) {
	b := sixel.NewBuffer(4, 8)
	Bar(b, 1, 3, 2, 5, 1)
	assert.Equal(t, 10, count(b, 1))
	assert.Equal(t, 1, b.At(1, 3))
	assert.Equal(t, 1, b.At(2, 7))
	assert.Equal(t, sixel.Unset, b.At(1, 2))
}

func TestGraph_scenarioHeights(t *testing.T) {
	// graph([1,5,10], w=3, h=10, 0..10) maps to column heights [1,5,9].
	b := sixel.NewBuffer(3, 10)
	Graph(b, []float64{1, 5, 10}, 0, 0, 3, 10, 0, 10, 1)

	heights := make([]int, 3)
	for x := 0; x < 3; x++ {
		for y := 0; y < 10; y++ {
			if b.At(x, y) == 1 {
				heights[x]++
			}
		}
	}
	assert.Equal(t, []int{1, 5, 9}, heights)

	// Columns grow up from the bottom edge.
	assert.Equal(t, 1, b.At(0, 9))
	assert.Equal(t, sixel.Unset, b.At(0, 8))
}

func TestGraph_newestValueRightmost(t *testing.T) {
	b := sixel.NewBuffer(3, 4)
	// Five samples into a 3-wide box: only the last three survive.
	Graph(b, []float64{4, 4, 0, 0, 4}, 0, 0, 3, 4, 0, 4, 1)
	assert.Equal(t, 1, b.At(2, 0), "latest sample fills the rightmost column")
	assert.Equal(t, sixel.Unset, b.At(0, 0), "older samples scrolled off")
	assert.Equal(t, sixel.Unset, b.At(1, 0))
}

func TestGraph_degenerateRange(t *testing.T) {
	b := sixel.NewBuffer(4, 10)
	Graph(b, []float64{3, 3, 3, 3}, 0, 0, 4, 10, 5, 5, 1)
	for x := 0; x < 4; x++ {
		h := 0
		for y := 0; y < 10; y++ {
			if b.At(x, y) == 1 {
				h++
			}
		}
		assert.Equal(t, 5, h, "flat range pins columns to the midpoint")
	}
}

func TestGraph_clampsOutOfRange(t *testing.T) {
	b := sixel.NewBuffer(2, 6)
	Graph(b, []float64{-10, 99}, 0, 0, 2, 6, 0, 10, 1)
	col0 := 0
	col1 := 0
	for y := 0; y < 6; y++ {
		if b.At(0, y) == 1 {
			col0++
		}
		if b.At(1, y) == 1 {
			col1++
		}
	}
	assert.Equal(t, 0, col0)
	assert.Equal(t, 5, col1)
}

func TestText_advanceAndStamp(t *testing.T) {
	b := sixel.NewBuffer(40, 10)
	adv := Text(b, 0, 0, "HI", 1, 1)
	assert.Equal(t, 2*sixfont.Advance, adv)
	// H has its full left column set.
	for y := 0; y < sixfont.Height; y++ {
		assert.Equal(t, 1, b.At(0, y))
	}
}

func TestText_scale(t *testing.T) {
	small := sixel.NewBuffer(20, 20)
	big := sixel.NewBuffer(20, 20)
	Text(small, 0, 0, "I", 1, 1)
	Text(big, 0, 0, "I", 1, 2)
	require.Greater(t, count(big, 1), count(small, 1))
	assert.Equal(t, 4*count(small, 1), count(big, 1), "2x scale quadruples pixel area")
}

func TestGlyph_fallbackForUnknown(t *testing.T) {
	b := sixel.NewBuffer(8, 8)
	Glyph(b, '☃', 0, 0, 1, 1)
	// The hollow-box placeholder has all four corners set.
	assert.Equal(t, 1, b.At(0, 0))
	assert.Equal(t, 1, b.At(sixfont.Width-1, 0))
	assert.Equal(t, 1, b.At(0, sixfont.Height-1))
	assert.Equal(t, 1, b.At(sixfont.Width-1, sixfont.Height-1))
	assert.Equal(t, sixel.Unset, b.At(2, 3), "placeholder interior stays empty")
}

func TestHBar(t *testing.T) {
	b := sixel.NewBuffer(10, 2)
	HBar(b, 0, 0, 10, 2, 50, 100, 1)
	assert.Equal(t, 10, count(b, 1))
	assert.Equal(t, 1, b.At(4, 1))
	assert.Equal(t, sixel.Unset, b.At(5, 0))
}

func TestLineGraph_fillReachesBottom(t *testing.T) {
	b := sixel.NewBuffer(10, 10)
	LineGraph(b, []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100}, 0, 0, 10, 10, 100, 1, 2)
	// Top row is the line, everything beneath is fill.
	assert.Equal(t, 1, b.At(0, 0))
	for y := 1; y < 10; y++ {
		assert.Equal(t, 2, b.At(0, y))
	}
}

func TestLineGraph_singleSampleAnchorsRight(t *testing.T) {
	b := sixel.NewBuffer(10, 10)
	LineGraph(b, []float64{100}, 0, 0, 10, 10, 100, 1, sixel.Unset)
	assert.Equal(t, 1, b.At(9, 0))
	assert.Equal(t, 1, count(b, 1))
}

func TestCircle_outlineSymmetry(t *testing.T) {
	b := sixel.NewBuffer(16, 16)
	Circle(b, 8, 8, 5, 1, false)
	assert.Equal(t, 1, b.At(13, 8))
	assert.Equal(t, 1, b.At(3, 8))
	assert.Equal(t, 1, b.At(8, 13))
	assert.Equal(t, 1, b.At(8, 3))
	assert.Equal(t, sixel.Unset, b.At(8, 8), "outline leaves the center empty")

	filled := sixel.NewBuffer(16, 16)
	Circle(filled, 8, 8, 5, 1, true)
	assert.Equal(t, 1, filled.At(8, 8))
}

func TestSlider_thumbTracksValue(t *testing.T) {
	b := sixel.NewBuffer(60, 12)
	left := Slider(b, 0, 0, 60, 12, 0, 100, 1, 2, 3)
	b.Clear(sixel.Unset)
	right := Slider(b, 0, 0, 60, 12, 100, 100, 1, 2, 3)
	assert.Less(t, left, right)
	assert.Equal(t, 4, left, "thumb center at half the thumb width")
	assert.Equal(t, 56, right)
}
