package sixfont_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mesolimbo/sixel/internal/sixfont"
)

func TestLookup(t *testing.T) {
	ga, ok := Lookup('A')
	assert.True(t, ok)
	gb, ok := Lookup('a')
	assert.True(t, ok, "lowercase folds to uppercase")
	assert.Equal(t, ga, gb)

	fb, ok := Lookup('☃')
	assert.False(t, ok)
	assert.Equal(t, Fallback, fb, "unknown characters render the placeholder")
}

func TestGlyphsFitCell(t *testing.T) {
	for _, r := range "ABCXYZ0189:%()[]<>=+_|.,-/!' " {
		g, ok := Lookup(r)
		assert.True(t, ok, "glyph %q present", r)
		for row, bits := range g {
			assert.Zero(t, bits>>Width, "glyph %q row %d overflows %d columns", r, row, Width)
		}
	}
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth("", 1))
	assert.Equal(t, Width, TextWidth("A", 1))
	assert.Equal(t, 2*Advance-1, TextWidth("AB", 1))
	assert.Equal(t, 2*(2*Advance)-2, TextWidth("AB", 2))
	assert.Equal(t, Width, TextWidth("A", 0), "scale floors at 1")
}
