package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mesolimbo/sixel/internal/render"
	"github.com/mesolimbo/sixel/internal/sixel"
)

type countingWriter struct {
	writes [][]byte
	fail   error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	if w.fail != nil {
		err := w.fail
		w.fail = nil
		return 0, err
	}
	w.writes = append(w.writes, append([]byte(nil), p...))
	return len(p), nil
}

func testFrame(t *testing.T) (*sixel.Buffer, *sixel.Palette) {
	t.Helper()
	p := sixel.NewPalette(8)
	p.MustRegister(sixel.Color{})
	p.MustRegister(sixel.Color{R: 100})
	b := sixel.NewBuffer(12, 6)
	b.Clear(1)
	return b, p
}

func TestScheduler_skipsIdenticalFrames(t *testing.T) {
	w := &countingWriter{}
	s := NewScheduler(w)
	b, p := testFrame(t)

	flushed, err := s.Tick(b, p)
	require.NoError(t, err)
	assert.True(t, flushed)

	flushed, err = s.Tick(b, p)
	require.NoError(t, err)
	assert.False(t, flushed, "identical frame produces zero bytes")
	assert.Len(t, w.writes, 1)

	b.Set(0, 0, 0)
	flushed, err = s.Tick(b, p)
	require.NoError(t, err)
	assert.True(t, flushed)
	assert.Len(t, w.writes, 2)
}

func TestScheduler_paletteGrowthInvalidates(t *testing.T) {
	w := &countingWriter{}
	s := NewScheduler(w)
	b, p := testFrame(t)

	_, err := s.Tick(b, p)
	require.NoError(t, err)

	p.MustRegister(sixel.Color{G: 100})
	flushed, err := s.Tick(b, p)
	require.NoError(t, err)
	assert.True(t, flushed, "palette version feeds the fingerprint")
}

func TestScheduler_flushErrorRetries(t *testing.T) {
	w := &countingWriter{fail: errors.New("tty gone")}
	s := NewScheduler(w)
	b, p := testFrame(t)

	flushed, err := s.Tick(b, p)
	assert.False(t, flushed)
	var fe *FlushError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "tty gone", fe.Unwrap().Error())
	assert.Equal(t, Idle, s.State(), "scheduler is reusable after a flush error")

	// Same frame again: the failed flush did not record a fingerprint,
	// so the retry writes.
	flushed, err = s.Tick(b, p)
	require.NoError(t, err)
	assert.True(t, flushed)
	assert.Len(t, w.writes, 1)
}

func TestScheduler_encodeErrorPropagates(t *testing.T) {
	w := &countingWriter{}
	s := NewScheduler(w)
	p := sixel.NewPalette(4)
	p.MustRegister(sixel.Color{})
	b := sixel.NewBuffer(2, 2)
	b.Set(0, 0, 9)

	_, err := s.Tick(b, p)
	var ee sixel.EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Empty(t, w.writes, "no partial stream reaches the terminal")
}

func TestScheduler_invalidate(t *testing.T) {
	w := &countingWriter{}
	s := NewScheduler(w)
	b, p := testFrame(t)

	_, err := s.Tick(b, p)
	require.NoError(t, err)
	s.Invalidate()
	flushed, err := s.Tick(b, p)
	require.NoError(t, err)
	assert.True(t, flushed, "invalidate forces a redraw")
}

func TestScheduler_streamsMatchDirectEncode(t *testing.T) {
	w := &countingWriter{}
	s := NewScheduler(w)
	b, p := testFrame(t)

	_, err := s.Tick(b, p)
	require.NoError(t, err)

	want, err := sixel.Encode(b, p)
	require.NoError(t, err)
	require.Len(t, w.writes, 1)
	assert.Equal(t, want, w.writes[0])
}

func TestFingerprint(t *testing.T) {
	b, p := testFrame(t)
	assert.Equal(t, Fingerprint(b, p), Fingerprint(b, p), "deterministic")

	b2 := sixel.NewBuffer(12, 6)
	b2.Clear(1)
	assert.Equal(t, Fingerprint(b, p), Fingerprint(b2, p), "content equality, not identity")

	b2.Set(3, 3, 0)
	assert.NotEqual(t, Fingerprint(b, p), Fingerprint(b2, p))

	// Same cells, different shape.
	wide := sixel.NewBuffer(6, 2)
	tall := sixel.NewBuffer(2, 6)
	assert.NotEqual(t, Fingerprint(wide, p), Fingerprint(tall, p))
}

func TestFlip(t *testing.T) {
	f := NewFlip(4, 4)
	first := f.Draw()
	first.Set(0, 0, 1)

	committed := f.Commit()
	assert.Same(t, first, committed, "commit returns the buffer that was drawn")
	assert.NotSame(t, committed, f.Draw(), "drawing continues in another buffer")

	second := f.Draw()
	assert.Same(t, second, f.Commit())

	// Nothing has been reclaimed, so the next back buffer is a fresh
	// allocation rather than a frame still handed out.
	third := f.Draw()
	assert.NotSame(t, first, third)
	assert.NotSame(t, second, third)

	f.Reclaim(first)
	assert.Same(t, third, f.Commit())
	assert.Same(t, first, f.Draw(), "reclaimed buffers rotate back in")

	f.Reclaim(nil) // ignored
	assert.Same(t, first, f.Draw())
}

func TestScheduler_prefixFlushedWithFrame(t *testing.T) {
	w := &countingWriter{}
	s := NewScheduler(w)
	s.SetPrefix([]byte("\033[H"))
	b, p := testFrame(t)

	wrote, err := s.Tick(b, p)
	require.NoError(t, err)
	require.True(t, wrote)
	require.Len(t, w.writes, 1, "prefix and frame share a single write")
	assert.True(t, bytes.HasPrefix(w.writes[0], []byte("\033[H")))
	assert.Contains(t, string(w.writes[0]), "\033P")

	// Skipped frames write nothing, prefix included.
	wrote, err = s.Tick(b, p)
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.Len(t, w.writes, 1)
}
