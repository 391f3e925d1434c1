package backtest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CommitCurrentEpoch(t *testing.T) {
	s := NewSession()
	epoch := s.Begin()

	ok := s.Commit(epoch, &Result{Symbol: "BTCUSDT"})
	assert.True(t, ok)

	result, fresh := s.Latest()
	require.NotNil(t, result)
	assert.True(t, fresh)
	assert.Equal(t, "BTCUSDT", result.Symbol)
}

func TestSession_StaleCommitRefused(t *testing.T) {
	s := NewSession()
	stale := s.Begin()
	current := s.Begin()

	// The superseded run finishes late and must not overwrite anything
	assert.False(t, s.Commit(stale, &Result{Symbol: "OLD"}))
	assert.True(t, s.Commit(current, &Result{Symbol: "NEW"}))

	result, fresh := s.Latest()
	require.NotNil(t, result)
	assert.True(t, fresh)
	assert.Equal(t, "NEW", result.Symbol)
}

func TestSession_StaleCommitAfterResult(t *testing.T) {
	s := NewSession()
	first := s.Begin()
	require.True(t, s.Commit(first, &Result{Symbol: "FIRST"}))

	second := s.Begin()
	_ = second // in-flight recompute

	// The old epoch cannot resurrect itself
	assert.False(t, s.Commit(first, &Result{Symbol: "GHOST"}))
	result, _ := s.Latest()
	assert.Equal(t, "FIRST", result.Symbol)
}

func TestSession_LatestBeforeCommit(t *testing.T) {
	s := NewSession()
	s.Begin()

	result, fresh := s.Latest()
	assert.Nil(t, result)
	assert.False(t, fresh)
}

func TestSession_Invalidate(t *testing.T) {
	s := NewSession()
	epoch := s.Begin()
	require.True(t, s.Commit(epoch, &Result{Symbol: "BTCUSDT"}))

	s.Invalidate()

	// The result is kept but no longer fresh
	result, fresh := s.Latest()
	require.NotNil(t, result)
	assert.False(t, fresh)
}

func TestSession_CancelInvalidatesOutstandingEpochs(t *testing.T) {
	s := NewSession()
	epoch := s.Begin()

	s.Cancel()

	assert.False(t, s.Commit(epoch, &Result{Symbol: "LATE"}))
	result, _ := s.Latest()
	assert.Nil(t, result)
}

func TestSession_RecommitRestoresFreshness(t *testing.T) {
	s := NewSession()
	epoch := s.Begin()
	require.True(t, s.Commit(epoch, &Result{Symbol: "A"}))
	s.Invalidate()

	next := s.Begin()
	require.True(t, s.Commit(next, &Result{Symbol: "B"}))

	result, fresh := s.Latest()
	assert.True(t, fresh)
	assert.Equal(t, "B", result.Symbol)
}

func TestSession_ConcurrentBeginCommit(t *testing.T) {
	s := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			epoch := s.Begin()
			s.Commit(epoch, &Result{Symbol: "X"})
		}()
	}
	wg.Wait()

	// Exactly one goroutine held the final epoch; whoever it was, the
	// session must end fresh and consistent.
	result, fresh := s.Latest()
	require.NotNil(t, result)
	assert.True(t, fresh)
}
