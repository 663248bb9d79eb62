package sixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mesolimbo/sixel/internal/sixel"
)

func TestPalette_registerDedupes(t *testing.T) {
	p := NewPalette(4)

	i, err := p.Register(Color{R: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	j, err := p.Register(Color{G: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, j)

	again, err := p.Register(Color{R: 100})
	require.NoError(t, err)
	assert.Equal(t, i, again, "re-registering an existing color returns its index")
	assert.Equal(t, 2, p.Len())
}

func TestPalette_exhaustion(t *testing.T) {
	p := NewPalette(2)
	p.MustRegister(Color{})
	p.MustRegister(Color{R: 100})

	_, err := p.Register(Color{G: 100})
	assert.ErrorIs(t, err, ErrPaletteExhausted)

	// Capacity does not break re-registration of known colors.
	i, err := p.Register(Color{R: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestPalette_quantize(t *testing.T) {
	p := NewPalette(8)
	black := p.MustRegister(Color{})
	red := p.MustRegister(Color{R: 100})
	dim := p.MustRegister(Color{R: 10})

	for _, tc := range []struct {
		name string
		c    Color
		want int
	}{
		{"exact match returns own index", Color{R: 100}, red},
		{"near black", Color{R: 2, G: 3}, black},
		{"near dim red", Color{R: 12}, dim},
		{"equidistant tie breaks to lowest index", Color{R: 5}, black},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Quantize(tc.c))
		})
	}
}

func TestPalette_quantizeEmpty(t *testing.T) {
	assert.Equal(t, -1, NewPalette(4).Quantize(Color{R: 50}))
}

func TestPalette_versionTracksGrowth(t *testing.T) {
	p := NewPalette(4)
	v0 := p.Version()
	p.MustRegister(Color{R: 100})
	v1 := p.Version()
	assert.NotEqual(t, v0, v1)

	p.MustRegister(Color{R: 100}) // dedupe, no growth
	assert.Equal(t, v1, p.Version())
}

func TestPalette_registerRamp(t *testing.T) {
	p := NewPalette(16)
	idxs, err := p.RegisterRamp(Color{}, Color{R: 100, G: 100, B: 100}, 5)
	require.NoError(t, err)
	require.Len(t, idxs, 5)

	first, ok := p.At(idxs[0])
	require.True(t, ok)
	last, ok := p.At(idxs[4])
	require.True(t, ok)
	assert.Equal(t, Color{}, first)
	assert.Equal(t, Color{R: 100, G: 100, B: 100}, last)

	_, err = p.RegisterRamp(Color{}, Color{R: 100}, 1)
	assert.Error(t, err)
}

func TestRGB_scalesToSixelRange(t *testing.T) {
	assert.Equal(t, Color{R: 100, G: 0, B: 39}, RGB(255, 0, 100))
	assert.Equal(t, Color{}, RGB(0, 0, 0))
}
