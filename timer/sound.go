package timer

import (
	"github.com/ayoisaiah/pomobar/internal/clock"
	"github.com/ayoisaiah/pomobar/internal/sound"
)

// playSoundLocked starts the ambient sound of the current phase if sound is
// enabled.
func (e *Engine) playSoundLocked() {
	if !e.opts.Sound.Enabled {
		return
	}

	c := sound.Resolve(e.opts, e.phase)
	v := e.opts.Sound.Volume

	e.serial(func() {
		e.audio.Play(c, v)
	})
}

func (e *Engine) stopSoundLocked() {
	e.serial(e.audio.Stop)
}

// deferSoundStopLocked stops the sound on the next scheduler turn. Start
// cancels it so that a phase started right away keeps its sound.
func (e *Engine) deferSoundStopLocked() {
	e.cancelSoundStopLocked()

	var h clock.Handle

	h = e.clock.After(0, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.closed || e.soundStop != h {
			return
		}

		e.soundStop = nil
		e.stopSoundLocked()
	})

	e.soundStop = h
}

func (e *Engine) cancelSoundStopLocked() {
	if e.soundStop != nil {
		e.soundStop.Stop()
		e.soundStop = nil
	}
}
