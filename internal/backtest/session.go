package backtest

import "sync"

// Session holds the single live backtest result and guards it against stale
// writers. Each new request takes an epoch from Begin; only the holder of the
// current epoch may commit, so a slow superseded run can no longer overwrite
// a newer result after the user has re-triggered the computation.
type Session struct {
	mu     sync.Mutex
	epoch  uint64
	result *Result
	stale  bool
}

// NewSession creates an empty result session.
func NewSession() *Session {
	return &Session{}
}

// Begin starts a new computation request and returns its epoch token. Any
// previously issued token becomes stale.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	return s.epoch
}

// Commit stores the result if the epoch is still current. It reports whether
// the result was accepted; stale commits are dropped.
func (s *Session) Commit(epoch uint64, result *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return false
	}
	s.result = result
	s.stale = false
	return true
}

// Latest returns the held result and whether it is still fresh. The result is
// nil until the first successful commit.
func (s *Session) Latest() (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.result != nil && !s.stale
}

// Invalidate marks the held result stale without discarding it, for callers
// that changed an input and have not recomputed yet.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

// Cancel abandons any in-flight request: outstanding epochs become stale and
// their commits will be refused.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
}
