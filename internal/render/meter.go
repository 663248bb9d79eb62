package render

import "time"

const meterSamples = 64

// Meter tracks frame durations over a sliding window, for pacing checks
// in animated demos.
type Meter struct {
	samples [meterSamples]time.Duration
	i       int
	n       int
	started time.Time
	now     func() time.Time
}

func NewMeter() *Meter {
	return &Meter{now: time.Now}
}

// Begin marks the start of a frame.
func (m *Meter) Begin() { m.started = m.now() }

// End records the frame started by Begin.
func (m *Meter) End() {
	m.samples[m.i] = m.now().Sub(m.started)
	m.i = (m.i + 1) % meterSamples
	if m.n < meterSamples {
		m.n++
	}
}

// Average returns the mean frame duration over the window, zero before
// the first frame completes.
func (m *Meter) Average() time.Duration {
	if m.n == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < m.n; i++ {
		total += m.samples[i]
	}
	return total / time.Duration(m.n)
}

// FPS converts the average frame duration to a rate.
func (m *Meter) FPS() float64 {
	avg := m.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
