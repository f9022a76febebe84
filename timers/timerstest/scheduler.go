// Package timerstest provides a manually advanced timers.Scheduler.
package timerstest

import (
	"time"

	"github.com/vcrobe/pagefx/timers"
)

// Compile-time assertion to ensure Scheduler implements timers.Scheduler.
var _ timers.Scheduler = (*Scheduler)(nil)

// Scheduler runs callbacks on simulated time. Nothing fires until Advance is
// called; callbacks then run synchronously in due-time order, ties broken by
// scheduling order, which matches how browsers order timers.
type Scheduler struct {
	now    time.Duration
	seq    int
	timers []*timer
}

// New returns a scheduler at time zero.
func New() *Scheduler { return &Scheduler{} }

type timer struct {
	due      time.Duration
	interval time.Duration
	seq      int
	fn       func()
	stopped  bool
}

func (t *timer) Stop() { t.stopped = true }

func (s *Scheduler) After(d time.Duration, fn func()) timers.Timer {
	return s.add(d, 0, fn)
}

func (s *Scheduler) Every(d time.Duration, fn func()) timers.Timer {
	if d <= 0 {
		// Browsers clamp zero intervals; avoid spinning forever in Advance.
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{due: s.now + d, interval: interval, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Now is the simulated time elapsed since New.
func (s *Scheduler) Now() time.Duration { return s.now }

// Advance moves simulated time forward by d, firing every timer that comes
// due on the way, including timers scheduled by callbacks during the advance.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.next(end)
		if t == nil {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			s.seq++
			t.seq = s.seq
		} else {
			t.stopped = true
		}
		t.fn()
	}
	s.now = end
	s.prune()
}

// RunAll advances until no timers remain or limit has elapsed.
func (s *Scheduler) RunAll(limit time.Duration) {
	end := s.now + limit
	for s.Pending() > 0 && s.now < end {
		t := s.next(end)
		if t == nil {
			break
		}
		s.Advance(t.due - s.now)
	}
}

// Pending reports how many timers are still scheduled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *Scheduler) next(end time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.stopped || t.due > end {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) prune() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
}
