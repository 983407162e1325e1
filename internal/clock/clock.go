// Package clock schedules the timer's periodic and one-shot callbacks.
package clock

import (
	"sync"
	"time"
)

// Handle cancels a scheduled callback.
type Handle interface {
	// Stop prevents any further invocation. It reports whether the callback
	// was still pending.
	Stop() bool
}

// Clock tells the time and schedules callbacks.
type Clock interface {
	Now() time.Time
	// Every calls fn every d until the returned handle is stopped.
	Every(d time.Duration, fn func()) Handle
	// After calls fn once after d unless the handle is stopped first.
	After(d time.Duration, fn func()) Handle
}

// Real is the wall clock.
type Real struct{}

// New returns the wall clock.
func New() Real {
	return Real{}
}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) After(d time.Duration, fn func()) Handle {
	return time.AfterFunc(d, fn)
}

func (Real) Every(d time.Duration, fn func()) Handle {
	h := &ticker{
		t:    time.NewTicker(d),
		done: make(chan struct{}),
	}

	go h.run(fn)

	return h
}

type ticker struct {
	t    *time.Ticker
	done chan struct{}
	once sync.Once
}

func (h *ticker) run(fn func()) {
	for {
		select {
		case <-h.done:
			return
		case <-h.t.C:
			fn()
		}
	}
}

func (h *ticker) Stop() bool {
	stopped := false

	h.once.Do(func() {
		h.t.Stop()
		close(h.done)

		stopped = true
	})

	return stopped
}
