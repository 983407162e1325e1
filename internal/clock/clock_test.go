package clock_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomobar/internal/clock"
)

func TestAfterStopBeforeFire(t *testing.T) {
	var fired atomic.Bool

	h := clock.New().After(time.Hour, func() { fired.Store(true) })

	assert.True(t, h.Stop())
	assert.False(t, h.Stop())
	assert.False(t, fired.Load())
}

func TestEveryFiresUntilStopped(t *testing.T) {
	calls := make(chan struct{}, 16)

	h := clock.New().Every(5*time.Millisecond, func() {
		select {
		case calls <- struct{}{}:
		default:
		}
	})

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never fired")
	}

	assert.True(t, h.Stop())
	assert.False(t, h.Stop())
}
