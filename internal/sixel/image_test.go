package sixel_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mesolimbo/sixel/internal/sixel"
)

func TestFromImage_quantizesToPalette(t *testing.T) {
	p := NewPalette(4)
	black := p.MustRegister(Color{})
	red := p.MustRegister(Color{R: 100})

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 250, A: 0xff})
	img.Set(1, 0, color.RGBA{R: 250, A: 0xff})
	img.Set(0, 1, color.RGBA{R: 5, G: 5, B: 5, A: 0xff})
	img.Set(1, 1, color.RGBA{R: 5, G: 5, B: 5, A: 0xff})

	b := FromImage(img, 2, 2, p)
	assert.Equal(t, red, b.At(0, 0))
	assert.Equal(t, red, b.At(1, 0))
	assert.Equal(t, black, b.At(0, 1))
	assert.Equal(t, black, b.At(1, 1))
}

func TestFromImage_transparentStaysUnset(t *testing.T) {
	p := NewPalette(4)
	p.MustRegister(Color{})

	img := image.NewRGBA(image.Rect(0, 0, 1, 1)) // zero value: fully transparent
	b := FromImage(img, 1, 1, p)
	assert.Equal(t, Unset, b.At(0, 0))
}

func TestFromImage_emptyPalette(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	b := FromImage(img, 3, 3, NewPalette(4))
	for _, v := range b.Pix {
		assert.Equal(t, Unset, v)
	}
}
