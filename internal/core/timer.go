package core

import "time"

// Pacer advances a simulation at a fixed number of generations per second,
// independent of the frame rate of the loop that polls it.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer returns a Pacer for rate generations per second. The first call
// to Due fires immediately.
func NewPacer(rate int) *Pacer {
	p := &Pacer{}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the generation rate. Non-positive rates fall back to 30.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 30
	}
	p.step = time.Second / time.Duration(rate)
}

// Due reports whether a generation should be computed at time now. At most
// one generation is reported per call; a backlog is drained on later calls.
func (p *Pacer) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
