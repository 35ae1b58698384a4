package editor

import (
	"sync"
	"time"
)

// updateKind is a set of recomputations waiting to run.
type updateKind uint8

const (
	updateHighlight updateKind = 1 << iota
	updateLineNumbers
)

// scheduler debounces recomputation. Every schedule call adds to the pending
// set and restarts the idle timer; when the timer fires the whole set is
// drained and run once. Runs never overlap.
type scheduler struct {
	delay time.Duration
	run   func(updateKind)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64 // bumped on every schedule so superseded timers do nothing
	pending updateKind
	closed  bool

	runMu sync.Mutex
}

func newScheduler(delay time.Duration, run func(updateKind)) *scheduler {
	return &scheduler{delay: delay, run: run}
}

// schedule marks k pending and restarts the idle timer.
func (s *scheduler) schedule(k updateKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending |= k
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(gen)
	})
}

// now marks k pending and drains the pending set on a new goroutine without
// waiting for the idle timer. A schedule call that lands before the goroutine
// starts hands the work back to the timer.
func (s *scheduler) now(k updateKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending |= k
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	go s.fire(gen)
}

// flush cancels the timer and runs anything pending on the calling
// goroutine, after any in-progress run has finished.
func (s *scheduler) flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire(0)
}

// stop cancels the timer and drops pending work. Later schedule calls are
// ignored.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pending = 0
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire drains the pending set. A non-zero gen identifies the timer that
// called it; if that timer has since been replaced the call does nothing.
func (s *scheduler) fire(gen uint64) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	if gen != 0 && gen != s.gen {
		s.mu.Unlock()
		return
	}
	pending := s.pending
	s.pending = 0
	s.mu.Unlock()

	if pending != 0 {
		s.run(pending)
	}
}
