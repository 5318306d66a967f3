// Package debounce provides a per-key write coalescer. Scheduling a key
// cancels that key's pending run; keys never interfere with each other.
//
// The scheduler is injected into services so business code stays free of
// timers and tests can drive pending work synchronously via Flush.
package debounce

import (
	"sync"
	"time"
)

// Scheduler coalesces work per key. The zero value is not usable; construct
// with NewScheduler.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*entry
	stopped bool
}

type entry struct {
	timer *time.Timer
	fn    func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[string]*entry)}
}

// Schedule runs fn after delay unless a newer Schedule, Cancel, or Flush for
// the same key arrives first. The previous pending fn for the key is dropped.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}
	e := &entry{fn: fn}
	e.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// A newer Schedule may have replaced this entry between the timer
		// firing and the lock being acquired.
		if cur, ok := s.pending[key]; !ok || cur != e {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		s.mu.Unlock()
		fn()
	})
	s.pending[key] = e
}

// Cancel drops the pending run for key, if any. Returns true when something
// was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.pending, key)
	return true
}

// Flush runs the pending fn for key immediately, bypassing its timer.
// Returns true when something was pending.
func (s *Scheduler) Flush(key string) bool {
	s.mu.Lock()
	e, ok := s.pending[key]
	if ok {
		e.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	e.fn()
	return true
}

// Pending reports whether key has a scheduled run.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels all pending runs and rejects further scheduling. Intended for
// graceful shutdown; callers that need pending writes persisted should Flush
// the relevant keys first.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for key, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, key)
	}
}
