package sixel

import (
	"fmt"
	"image"
	"strconv"
)

// Sixel stream punctuation. The introducer and terminator are 7-bit DCS/ST
// forms accepted by every Sixel terminal.
const (
	streamStart    = "\033Pq"
	streamEnd      = "\033\\"
	bandAdvance    = '-' // graphics new line: next 6-row band
	carriageReturn = '$' // return to column 0 within the current band
)

// DefaultMinRun is the run length at which the encoder switches from
// literal data characters to a !count repeat. Decoders accept both forms,
// so the exact threshold is a tuning knob, not protocol.
const DefaultMinRun = 3

// EncodeError reports a buffer cell referencing an index outside the
// palette. It signals corruption upstream; the encoder emits no pixel data
// for the frame rather than desynchronizing the terminal's parser.
type EncodeError struct {
	Pt      image.Point
	Index   int
	Palette int
}

func (e EncodeError) Error() string {
	return fmt.Sprintf("sixel: cell %v references color %d beyond palette of %d", e.Pt, e.Index, e.Palette)
}

// Encoder serializes buffers against a palette. The zero value is not
// usable; call NewEncoder.
type Encoder struct {
	// MinRun is the minimum repeat count encoded as !count rather than
	// literal characters.
	MinRun int

	masks []byte // per-column band masks, reused across bands
	used  []bool // per-index color occupancy, reused across frames
}

// NewEncoder returns an encoder with the default run-length threshold.
func NewEncoder() *Encoder {
	return &Encoder{MinRun: DefaultMinRun}
}

// Encode appends the Sixel stream for b against p to dst and returns the
// extended buffer. Encoding is deterministic: the same buffer and palette
// always produce identical bytes. The buffer is only read.
func (e *Encoder) Encode(dst []byte, b *Buffer, p *Palette) ([]byte, error) {
	dst = append(dst, streamStart...)
	dst = appendRaster(dst, b.W, b.H)

	if b.W == 0 || b.H == 0 {
		return append(dst, streamEnd...), nil
	}

	used, err := e.scan(b, p)
	if err != nil {
		return dst, err
	}

	for i, ok := range used {
		if ok {
			dst = appendColorDef(dst, i, p.colors[i])
		}
	}

	if cap(e.masks) < b.W {
		e.masks = make([]byte, b.W)
	}
	masks := e.masks[:b.W]

	minRun := e.MinRun
	if minRun < 2 {
		minRun = 2
	}

	for bandBase := 0; bandBase < b.H; bandBase += 6 {
		if bandBase > 0 {
			dst = append(dst, bandAdvance)
		}
		first := true
		for idx, ok := range used {
			if !ok {
				continue
			}
			if !bandMasks(masks, b, bandBase, idx) {
				// No pixel of this color anywhere in the band.
				continue
			}
			if !first {
				dst = append(dst, carriageReturn)
			}
			first = false
			dst = append(dst, '#')
			dst = strconv.AppendInt(dst, int64(idx), 10)
			dst = appendRuns(dst, masks, minRun)
		}
	}

	return append(dst, streamEnd...), nil
}

// Encode is a convenience wrapper allocating a fresh stream with a
// one-shot encoder.
func Encode(b *Buffer, p *Palette) ([]byte, error) {
	return NewEncoder().Encode(nil, b, p)
}

// scan walks the buffer once, recording which palette entries are
// referenced and validating every cell index.
func (e *Encoder) scan(b *Buffer, p *Palette) ([]bool, error) {
	if cap(e.used) < p.Len() {
		e.used = make([]bool, p.Len())
	}
	used := e.used[:p.Len()]
	for i := range used {
		used[i] = false
	}
	for i, idx := range b.Pix {
		if idx == Unset {
			continue
		}
		if idx < 0 || idx >= len(used) {
			return nil, EncodeError{
				Pt:      image.Pt(i%b.W, i/b.W),
				Index:   idx,
				Palette: p.Len(),
			}
		}
		used[idx] = true
	}
	return used, nil
}

// bandMasks fills masks with the 6-bit column masks for one color within
// the band starting at row bandBase, reporting whether any bit is set.
// Rows past the buffer height contribute zero bits, keeping the final
// short band column-aligned across colors.
func bandMasks(masks []byte, b *Buffer, bandBase, idx int) bool {
	rows := b.H - bandBase
	if rows > 6 {
		rows = 6
	}
	any := false
	for x := range masks {
		var m byte
		for bit := 0; bit < rows; bit++ {
			if b.Pix[(bandBase+bit)*b.W+x] == idx {
				m |= 1 << uint(bit)
			}
		}
		masks[x] = m
		any = any || m != 0
	}
	return any
}

// appendRuns run-length-encodes a band's column masks. Runs of minRun or
// more identical masks emit !count followed by the data character; shorter
// runs emit the character literally. Zero masks are encoded like any
// other so that column alignment survives for the colors that follow.
func appendRuns(dst []byte, masks []byte, minRun int) []byte {
	for i := 0; i < len(masks); {
		m := masks[i]
		j := i + 1
		for j < len(masks) && masks[j] == m {
			j++
		}
		n := j - i
		ch := byte(63 + m)
		if n >= minRun {
			dst = append(dst, '!')
			dst = strconv.AppendInt(dst, int64(n), 10)
			dst = append(dst, ch)
		} else {
			for ; n > 0; n-- {
				dst = append(dst, ch)
			}
		}
		i = j
	}
	return dst
}

// appendRaster emits the raster attributes directive: 1:1 aspect ratio and
// the pixel dimensions, letting terminals size the image up front.
func appendRaster(dst []byte, w, h int) []byte {
	dst = append(dst, '"', '1', ';', '1', ';')
	dst = strconv.AppendInt(dst, int64(w), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(h), 10)
	return dst
}

// appendColorDef emits #i;2;r;g;b selecting RGB color space with channels
// in [0, 100].
func appendColorDef(dst []byte, i int, c Color) []byte {
	dst = append(dst, '#')
	dst = strconv.AppendInt(dst, int64(i), 10)
	dst = append(dst, ';', '2', ';')
	dst = strconv.AppendInt(dst, int64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(c.B), 10)
	return dst
}
