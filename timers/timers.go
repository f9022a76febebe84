// Package timers abstracts the host's timer callbacks so deferred UI work
// (animation ticks, delayed dismissal, delayed focus) can run on simulated
// time in tests.
package timers

import "time"

// Timer is a scheduled callback. Stop cancels any future firing and is safe
// to call more than once, including from inside the callback itself.
type Timer interface {
	Stop()
}

// Scheduler schedules callbacks on the UI event loop.
type Scheduler interface {
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Timer

	// Every runs fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}
