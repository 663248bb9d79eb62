package input

import (
	"io"
	"time"
)

// escTimeout is how long an escape prefix that does not yet decode is
// held back waiting for the rest of its sequence.
const escTimeout = 50 * time.Millisecond

// Channel reads from reader and delivers decoded events until the reader
// fails or the returned stop function is called. An escape byte whose
// sequence has not finished arriving is held for escTimeout before being
// delivered as the escape key, so sequences split across reads still
// decode as one event. Stop only prevents further sends; it cannot
// interrupt a read blocked on a terminal.
func Channel(reader io.Reader) (<-chan Event, func()) {
	ch := make(chan Event)
	done := make(chan struct{})
	chunks := make(chan []byte)

	go func() {
		defer close(chunks)
		for {
			chunk := make([]byte, 256)
			n, err := reader.Read(chunk)
			if n > 0 {
				select {
				case chunks <- chunk[:n]:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	go func() {
		defer close(ch)
		var buf []byte

		emit := func(ev Event) bool {
			select {
			case ch <- ev:
				return true
			case <-done:
				return false
			}
		}
		// drain decodes as much of buf as possible. It returns false
		// when the consumer is gone; afterwards buf is either empty or
		// holds an incomplete sequence.
		drain := func() bool {
			for len(buf) > 0 {
				ev, used, ok := Parse(buf)
				if used == 0 {
					return true
				}
				buf = buf[used:]
				if ok && !emit(ev) {
					return false
				}
			}
			return true
		}
		// bareEscape gives up on the held escape prefix: the escape byte
		// becomes its own key and the rest decodes as ordinary input.
		bareEscape := func() bool {
			buf = buf[1:]
			return emit(Event{Type: EventKey, Key: KeyEscape}) && drain()
		}

		for {
			var timeout <-chan time.Time
			if len(buf) > 0 && buf[0] == 0x1b {
				timeout = time.After(escTimeout)
			}
			select {
			case chunk, open := <-chunks:
				if !open {
					// Reader is gone; nothing more will arrive to finish
					// a held sequence.
					for len(buf) > 0 && buf[0] == 0x1b {
						if !bareEscape() {
							return
						}
					}
					return
				}
				buf = append(buf, chunk...)
				if !drain() {
					return
				}
			case <-timeout:
				if !bareEscape() {
					return
				}
			case <-done:
				return
			}
		}
	}()

	var stopped bool
	return ch, func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}
}
