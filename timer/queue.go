package timer

import "sync"

// queue runs functions one at a time in submission order on its own
// goroutine. Audio calls go through it to keep their order.
type queue struct {
	jobs chan func()
	done chan struct{}
	once sync.Once
}

func newQueue() *queue {
	q := &queue{
		jobs: make(chan func(), 64),
		done: make(chan struct{}),
	}

	go q.run()

	return q
}

func (q *queue) run() {
	defer close(q.done)

	for fn := range q.jobs {
		fn()
	}
}

// push must not be called after close.
func (q *queue) push(fn func()) {
	q.jobs <- fn
}

// close drains the pending jobs and waits for them to finish.
func (q *queue) close() {
	q.once.Do(func() {
		close(q.jobs)
	})

	<-q.done
}
