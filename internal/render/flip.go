package render

import "github.com/mesolimbo/sixel/internal/sixel"

// Flip rotates frame buffers between the input thread and a Background
// worker. The input thread draws into the back buffer, Commit hands the
// finished frame off and pulls a fresh back buffer from the free pool,
// and buffers released by Background.Submit come back through Reclaim.
// Each buffer is owned by exactly one side at a time; the input thread
// never draws into a frame the worker may still be encoding.
type Flip struct {
	w, h int
	back *sixel.Buffer
	free []*sixel.Buffer
}

// NewFlip returns a rotation seeded with a back buffer and one free
// buffer, all cleared.
func NewFlip(w, h int) *Flip {
	return &Flip{
		w:    w,
		h:    h,
		back: sixel.NewBuffer(w, h),
		free: []*sixel.Buffer{sixel.NewBuffer(w, h)},
	}
}

// Draw returns the back buffer to render the next frame into.
func (f *Flip) Draw() *sixel.Buffer { return f.back }

// Commit returns the finished frame and rotates a free buffer in as the
// new back buffer, allocating one when the pool is empty. The caller
// passes the result to a Background and from then on draws only into the
// fresh Draw() buffer.
func (f *Flip) Commit() *sixel.Buffer {
	done := f.back
	if n := len(f.free); n > 0 {
		f.back = f.free[n-1]
		f.free = f.free[:n-1]
	} else {
		f.back = sixel.NewBuffer(f.w, f.h)
	}
	return done
}

// Reclaim adds a buffer the worker has released back to the free pool.
// A nil buffer is ignored, so Background.Submit's result can be passed
// straight through.
func (f *Flip) Reclaim(b *sixel.Buffer) {
	if b != nil {
		f.free = append(f.free, b)
	}
}
