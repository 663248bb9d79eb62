package render

import (
	"sync"

	"github.com/mesolimbo/sixel/internal/sixel"
)

type frame struct {
	buf *sixel.Buffer
	pal *sixel.Palette
}

// Background runs a Scheduler on its own goroutine. Submitted frames land
// in a pending slot of one: a frame arriving while an encode is in flight
// replaces the pending frame rather than queueing, so the worker never
// falls more than one superseded frame behind. Submit transfers buffer
// ownership to the worker and hands spent buffers back, so the caller
// always draws into a buffer the worker does not hold (see Flip).
type Background struct {
	sched *Scheduler

	mu       sync.Mutex
	cond     *sync.Cond
	pending  *frame
	retired  []*sixel.Buffer
	shutdown bool
	err      error

	done chan struct{}
}

// StartBackground wraps a scheduler in a worker goroutine.
func StartBackground(s *Scheduler) *Background {
	bg := &Background{
		sched: s,
		done:  make(chan struct{}),
	}
	bg.cond = sync.NewCond(&bg.mu)
	go bg.run()
	return bg
}

// Submit hands a committed frame to the worker without blocking. A frame
// already pending is discarded in favor of this one. Ownership of b
// passes to the worker; the return value is a buffer the worker no
// longer references and the caller may draw into again, or nil when none
// has come back yet. The palette is read by the worker without locking,
// so it must be fully registered before the first Submit. After Stop,
// b is returned unchanged.
func (bg *Background) Submit(b *sixel.Buffer, p *sixel.Palette) *sixel.Buffer {
	bg.mu.Lock()
	defer bg.mu.Unlock()
	if bg.shutdown {
		return b
	}
	var free *sixel.Buffer
	if bg.pending != nil {
		free = bg.pending.buf
	} else if n := len(bg.retired); n > 0 {
		free = bg.retired[n-1]
		bg.retired = bg.retired[:n-1]
	}
	bg.pending = &frame{buf: b, pal: p}
	bg.cond.Signal()
	return free
}

// Err returns the most recent flush error, if any. The worker keeps
// running after flush errors; the next submitted frame retries.
func (bg *Background) Err() error {
	bg.mu.Lock()
	defer bg.mu.Unlock()
	return bg.err
}

// Stop shuts the worker down and waits for it. An encode in flight is
// allowed to finish (encoding is pure computation) but its bytes are
// discarded rather than flushed.
func (bg *Background) Stop() {
	bg.mu.Lock()
	if bg.shutdown {
		bg.mu.Unlock()
		<-bg.done
		return
	}
	bg.shutdown = true
	bg.pending = nil
	bg.cond.Signal()
	bg.mu.Unlock()
	<-bg.done
}

func (bg *Background) run() {
	defer close(bg.done)
	for {
		bg.mu.Lock()
		for bg.pending == nil && !bg.shutdown {
			bg.cond.Wait()
		}
		if bg.shutdown {
			bg.mu.Unlock()
			return
		}
		f := *bg.pending
		bg.pending = nil
		bg.mu.Unlock()

		fp := Fingerprint(f.buf, f.pal)
		if bg.sched.haveLast && fp == bg.sched.last {
			bg.retire(f.buf)
			continue
		}

		out, err := bg.sched.encode(f.buf, f.pal)

		// Shutdown arriving mid-encode discards the result unflushed.
		bg.mu.Lock()
		stopping := bg.shutdown
		bg.mu.Unlock()
		if stopping {
			return
		}

		if err == nil {
			if werr := bg.sched.flush(out); werr != nil {
				err = &FlushError{Err: werr}
			} else {
				bg.sched.last = fp
				bg.sched.haveLast = true
			}
		}

		bg.mu.Lock()
		bg.retired = append(bg.retired, f.buf)
		bg.err = err
		bg.mu.Unlock()
	}
}

// retire releases a buffer the worker is done with back to Submit.
func (bg *Background) retire(b *sixel.Buffer) {
	bg.mu.Lock()
	bg.retired = append(bg.retired, b)
	bg.mu.Unlock()
}
