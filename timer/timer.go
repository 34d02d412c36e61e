// Package timer runs periodic callbacks on simulation time. Callbacks fire
// from Advance on the caller's goroutine, so they share the game loop's
// single mutator context.
package timer

import "time"

// Scheduler owns a clock and the handles registered against it.
type Scheduler struct {
	now     time.Duration
	handles []*Handle
	seq     uint64
}

// Handle is one periodic registration. Cancel it and call Every again to
// change its cadence; the pending wait is discarded, not carried over.
type Handle struct {
	interval time.Duration
	next     time.Duration
	seq      uint64
	fn       func()
	canceled bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulation time elapsed through Advance.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run each interval, first at Now()+interval.
// A non-positive interval returns a canceled handle that never fires.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	s.seq++
	h := &Handle{
		interval: interval,
		next:     s.now + interval,
		seq:      s.seq,
		fn:       fn,
	}
	if interval <= 0 {
		h.canceled = true
		return h
	}
	s.handles = append(s.handles, h)
	return h
}

// Advance moves the clock forward by dt and runs every callback that falls
// due, earliest first. A handle fires once per elapsed interval, so a long
// dt can fire it several times. Ties run in registration order.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		h := s.nextDue(target)
		if h == nil {
			break
		}
		s.now = h.next
		h.next += h.interval
		h.fn()
	}
	s.now = target
	s.compact()
}

// Len reports the number of live handles.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.handles {
		if !h.canceled {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDue(target time.Duration) *Handle {
	var due *Handle
	for _, h := range s.handles {
		if h.canceled || h.next > target {
			continue
		}
		if due == nil || h.next < due.next || (h.next == due.next && h.seq < due.seq) {
			due = h
		}
	}
	return due
}

func (s *Scheduler) compact() {
	kept := s.handles[:0]
	for _, h := range s.handles {
		if !h.canceled {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.handles); i++ {
		s.handles[i] = nil
	}
	s.handles = kept
}

// Cancel stops future firings. Safe to call more than once and from inside
// the handle's own callback.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.canceled = true
}

// Active reports whether the handle will fire again.
func (h *Handle) Active() bool {
	return h != nil && !h.canceled
}

// Interval returns the cadence the handle was registered with.
func (h *Handle) Interval() time.Duration {
	if h == nil {
		return 0
	}
	return h.interval
}
