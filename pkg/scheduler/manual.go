package scheduler

import (
	"sort"
	"time"
)

type manualTimer struct {
	seq       uint64
	due       time.Duration
	fn        func()
	cancelled bool
}

type manualFrame struct {
	fn        func(ts float64)
	cancelled bool
}

// Manual is a Driver whose clock only moves when told to. Timers fire in due
// order during Advance; frame callbacks fire during Frame.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
	frames []*manualFrame
}

// NewManual returns a driver at time zero
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time
func (m *Manual) Now() time.Duration {
	return m.now
}

// SetTimeout implements Driver
func (m *Manual) SetTimeout(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{seq: m.seq, due: m.now + d, fn: fn}
	m.timers = append(m.timers, t)
	return func() { t.cancelled = true }
}

// RequestFrame implements Driver
func (m *Manual) RequestFrame(fn func(ts float64)) func() {
	f := &manualFrame{fn: fn}
	m.frames = append(m.frames, f)
	return func() { f.cancelled = true }
}

// Advance moves the clock forward by d, firing every timer that comes due,
// including timers scheduled by callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.cancelled = true
		next.fn()
	}
	m.now = target
	m.compact()
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.cancelled || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.SliceStable(m.timers, func(i, j int) bool { return m.timers[i].due < m.timers[j].due })
}

// Frame runs the callbacks queued for the next frame. Callbacks that request
// another frame are queued for the following call.
func (m *Manual) Frame() {
	queued := m.frames
	m.frames = nil
	ts := float64(m.now) / float64(time.Millisecond)
	for _, f := range queued {
		if !f.cancelled {
			f.fn(ts)
		}
	}
}

// RunFrames runs n frames, advancing the clock by one 60Hz interval each.
func (m *Manual) RunFrames(n int) {
	for i := 0; i < n; i++ {
		m.Frame()
		m.Advance(16 * time.Millisecond)
	}
}

// PendingTimers returns how many timers are still scheduled
func (m *Manual) PendingTimers() int {
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// PendingFrames returns how many frame callbacks are queued
func (m *Manual) PendingFrames() int {
	n := 0
	for _, f := range m.frames {
		if !f.cancelled {
			n++
		}
	}
	return n
}
