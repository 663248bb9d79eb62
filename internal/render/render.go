// Package render gates and dispatches frame encoding. A Scheduler walks
// Idle -> Encoding -> Flushing per frame, skipping both stages entirely
// when a frame's fingerprint matches the last one flushed; identical
// consecutive frames cost zero bytes on the wire after the first. A
// Background wraps a Scheduler in a worker goroutine with latest-wins
// frame handoff for applications that render off the input thread.
package render

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/mesolimbo/sixel/internal/sixel"
)

// State is the scheduler's position in its per-frame walk.
type State int

const (
	Idle State = iota
	Encoding
	Flushing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Encoding:
		return "Encoding"
	case Flushing:
		return "Flushing"
	default:
		return fmt.Sprintf("Invalid<%d>", int(s))
	}
}

// FlushError wraps a terminal write failure. The scheduler returns to Idle
// and keeps the previous flushed fingerprint, so the caller may simply
// tick again to retry.
type FlushError struct {
	Err error
}

func (e *FlushError) Error() string { return "render: flush: " + e.Err.Error() }
func (e *FlushError) Unwrap() error { return e.Err }

// Fingerprint hashes a frame's pixel content and palette version for
// change detection. It is recomputed every frame and never persisted.
func Fingerprint(b *sixel.Buffer, p *sixel.Palette) uint64 {
	h := fnv.New64a()
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(b.W)<<32|uint64(uint32(b.H)))
	h.Write(word[:])
	binary.LittleEndian.PutUint64(word[:], p.Version())
	h.Write(word[:])
	for _, v := range b.Pix {
		binary.LittleEndian.PutUint64(word[:], uint64(int64(v)))
		h.Write(word[:])
	}
	return h.Sum64()
}

// Scheduler encodes and flushes frames to a terminal writer, skipping
// frames whose fingerprint matches the last successful flush. Not safe
// for concurrent use; wrap it in a Background for that.
type Scheduler struct {
	out io.Writer
	enc *sixel.Encoder

	state    State
	buf      []byte
	prefix   []byte
	last     uint64
	haveLast bool
}

// NewScheduler returns a scheduler writing finished streams to out.
func NewScheduler(out io.Writer) *Scheduler {
	return &Scheduler{
		out: out,
		enc: sixel.NewEncoder(),
		buf: make([]byte, 0, 1<<16),
	}
}

// SetEncoder replaces the encoder, for callers tuning the run threshold.
func (s *Scheduler) SetEncoder(enc *sixel.Encoder) { s.enc = enc }

// SetPrefix sets bytes written ahead of every frame, typically a
// cursor-home sequence. The prefix goes out in the same write as the
// sixel stream, so the whole update reaches the terminal in one piece
// even when another goroutine shares the output file.
func (s *Scheduler) SetPrefix(p []byte) { s.prefix = append(s.prefix[:0:0], p...) }

// State reports the scheduler's current state; outside of Tick it is
// always Idle.
func (s *Scheduler) State() State { return s.state }

// Tick presents a frame. If its fingerprint matches the last flushed
// frame nothing is written and Tick reports false. Encoding failures
// propagate as-is; write failures return a *FlushError and leave the
// scheduler Idle with its fingerprint unchanged so the next Tick retries.
func (s *Scheduler) Tick(b *sixel.Buffer, p *sixel.Palette) (bool, error) {
	fp := Fingerprint(b, p)
	if s.haveLast && fp == s.last {
		return false, nil
	}

	s.state = Encoding
	out, err := s.encode(b, p)
	if err != nil {
		s.state = Idle
		return false, err
	}

	s.state = Flushing
	err = s.flush(out)
	s.state = Idle
	if err != nil {
		return false, &FlushError{Err: err}
	}
	s.last = fp
	s.haveLast = true
	return true, nil
}

// Invalidate forgets the last flushed frame so the next Tick always
// writes; used after a terminal resize or redraw request.
func (s *Scheduler) Invalidate() { s.haveLast = false }

// encode builds the next stream in the reused scratch buffer, starting
// with the configured prefix.
func (s *Scheduler) encode(b *sixel.Buffer, p *sixel.Palette) ([]byte, error) {
	out, err := s.enc.Encode(append(s.buf[:0], s.prefix...), b, p)
	s.buf = out[:0]
	return out, err
}

// flush writes the stream in one piece, retrying short writes a bounded
// number of times.
func (s *Scheduler) flush(out []byte) error {
	attempts := 5
	n, err := s.out.Write(out)
	for attempts > 1 && err == io.ErrShortWrite {
		attempts--
		out = out[n:]
		n, err = s.out.Write(out)
	}
	return err
}
