package timer

import "time"

// EventType identifies what changed.
type EventType int

const (
	// EventStateChange is sent when the state or phase changes
	EventStateChange EventType = iota
	// EventTick is sent after every countdown second
	EventTick
	// EventPhaseComplete is sent when a phase runs out or is skipped
	EventPhaseComplete
	// EventTaskRecorded is sent when a labelled focus phase is saved to the
	// task history
	EventTaskRecorded
)

func (t EventType) String() string {
	switch t {
	case EventStateChange:
		return "state"
	case EventTick:
		return "tick"
	case EventPhaseComplete:
		return "complete"
	case EventTaskRecorded:
		return "task"
	}

	return "unknown"
}

// Event is delivered to subscribers.
type Event struct {
	Time     time.Time
	Snapshot Snapshot
	Type     EventType
}

// Subscribe registers a new observer channel. Events are dropped when the
// channel's buffer is full. The channel is closed by Close.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Event, buffer)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		close(ch)
		return ch
	}

	e.subs = append(e.subs, ch)

	return ch
}

func (e *Engine) publishLocked(t EventType) {
	ev := Event{
		Type:     t,
		Time:     e.clock.Now(),
		Snapshot: e.snapshotLocked(),
	}

	for _, ch := range e.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
