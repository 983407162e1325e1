// Package testutil holds fakes shared by the package tests.
package testutil

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ayoisaiah/pomobar/internal/clock"
	"github.com/ayoisaiah/pomobar/internal/sound"
)

// FakeClock is a manually advanced clock. Callbacks run on the goroutine
// that calls Advance, in due order, without the clock's lock held.
type FakeClock struct {
	now    time.Time
	timers []*fakeTimer
	seq    int
	mu     sync.Mutex
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Time
	fn      func()
	period  time.Duration
	id      int
	stopped bool
}

// NewFakeClock returns a clock frozen at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *FakeClock) After(d time.Duration, fn func()) clock.Handle {
	return c.schedule(d, 0, fn)
}

func (c *FakeClock) Every(d time.Duration, fn func()) clock.Handle {
	return c.schedule(d, d, fn)
}

func (c *FakeClock) schedule(d, period time.Duration, fn func()) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++

	t := &fakeTimer{
		clock:  c,
		at:     c.now.Add(d),
		fn:     fn,
		period: period,
		id:     c.seq,
	}

	c.timers = append(c.timers, t)

	return t
}

// Advance moves the clock forward by d and fires every callback that falls
// due, including ones scheduled by callbacks during the advance.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()

		next := c.nextDue(end)
		if next == nil {
			c.now = end
			c.mu.Unlock()

			return
		}

		c.now = next.at

		if next.period > 0 {
			next.at = next.at.Add(next.period)
		} else {
			next.stopped = true
			c.removeLocked(next)
		}

		fn := next.fn

		c.mu.Unlock()

		fn()
	}
}

// Pending returns the number of scheduled callbacks that have not been
// stopped or fired.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

func (c *FakeClock) nextDue(end time.Time) *fakeTimer {
	var next *fakeTimer

	for _, t := range c.timers {
		if t.at.After(end) {
			continue
		}

		if next == nil || t.at.Before(next.at) ||
			(t.at.Equal(next.at) && t.id < next.id) {
			next = t
		}
	}

	return next
}

func (c *FakeClock) removeLocked(t *fakeTimer) {
	for i, v := range c.timers {
		if v == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}

	t.stopped = true
	t.clock.removeLocked(t)

	return true
}

// AudioRecorder records the calls made to an audio player.
type AudioRecorder struct {
	Calls  []string
	Volume float64
	mu     sync.Mutex
}

func (a *AudioRecorder) Play(c sound.Choice, volume float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls = append(a.Calls, "play:"+string(c))
	a.Volume = volume
}

func (a *AudioRecorder) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls = append(a.Calls, "stop")
}

func (a *AudioRecorder) SetVolume(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Calls = append(a.Calls, fmt.Sprintf("volume:%.2f", v))
	a.Volume = v
}

// Snapshot returns a copy of the recorded calls.
func (a *AudioRecorder) Snapshot() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]string(nil), a.Calls...)
}

// Last returns the most recent call or an empty string.
func (a *AudioRecorder) Last() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.Calls) == 0 {
		return ""
	}

	return a.Calls[len(a.Calls)-1]
}

// Notification is a recorded notification.
type Notification struct {
	Title string
	Body  string
}

// NotifyRecorder records notifications and optionally fails them.
type NotifyRecorder struct {
	Err  error
	Sent []Notification
	mu   sync.Mutex
}

func (n *NotifyRecorder) Notify(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.Sent = append(n.Sent, Notification{Title: title, Body: body})

	return n.Err
}

// Snapshot returns a copy of the recorded notifications.
func (n *NotifyRecorder) Snapshot() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]Notification(nil), n.Sent...)
}

// HookRecorder records session commands.
type HookRecorder struct {
	Err  error
	Cmds []string
	mu   sync.Mutex
}

func (h *HookRecorder) Run(cmd string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Cmds = append(h.Cmds, cmd)

	return h.Err
}

// Snapshot returns a copy of the recorded commands.
func (h *HookRecorder) Snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.Cmds...)
}

// Inline runs fn on the calling goroutine. It replaces the asynchronous
// dispatcher in tests.
func Inline(fn func()) {
	fn()
}

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
