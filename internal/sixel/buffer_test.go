package sixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mesolimbo/sixel/internal/sixel"
)

func TestBuffer_setClipsSilently(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(1, 1, 7)
	assert.Equal(t, 7, b.At(1, 1))

	// Off-buffer writes are dropped, not panics.
	b.Set(-1, 0, 9)
	b.Set(0, -1, 9)
	b.Set(3, 0, 9)
	b.Set(0, 2, 9)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.NotEqual(t, 9, b.At(x, y))
		}
	}

	assert.Equal(t, Unset, b.At(5, 5))
}

func TestBuffer_clear(t *testing.T) {
	b := NewBuffer(2, 2)
	assert.Equal(t, Unset, b.At(0, 0), "new buffers start unset")

	b.Clear(3)
	assert.Equal(t, []int{3, 3, 3, 3}, b.Pix)

	b.Clear(Unset)
	assert.Equal(t, []int{Unset, Unset, Unset, Unset}, b.Pix)
}

func TestBuffer_blitClips(t *testing.T) {
	dst := NewBuffer(4, 4)
	dst.Clear(0)
	src := NewBuffer(2, 2)
	src.Clear(5)

	// Partially off the bottom-right corner.
	dst.Blit(src, 3, 3)
	assert.Equal(t, 5, dst.At(3, 3))
	assert.Equal(t, 0, dst.At(2, 3))
	assert.Equal(t, 0, dst.At(3, 2))

	// Entirely outside is a no-op.
	dst.Blit(src, 10, 10)
	dst.Blit(src, -2, -2)
	assert.Equal(t, 0, dst.At(0, 0))
}

func TestBuffer_blitOverSkipsUnset(t *testing.T) {
	dst := NewBuffer(2, 1)
	dst.Clear(1)
	src := NewBuffer(2, 1)
	src.Set(1, 0, 8) // (0,0) stays Unset

	dst.BlitOver(src, 0, 0)
	assert.Equal(t, 1, dst.At(0, 0), "unset source cells leave destination alone")
	assert.Equal(t, 8, dst.At(1, 0))

	dst.Clear(1)
	dst.Blit(src, 0, 0)
	assert.Equal(t, Unset, dst.At(0, 0), "plain blit copies unset cells")
}

func TestNewBuffer_negativeDimensions(t *testing.T) {
	b := NewBuffer(-3, -1)
	assert.Equal(t, 0, b.W)
	assert.Equal(t, 0, b.H)
	assert.Empty(t, b.Pix)
}
