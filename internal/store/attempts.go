package store

import (
	"sync"
	"time"
)

type attemptRecord struct {
	failureCount int
	blockedUntil time.Time
}

// AttemptTracker counts consecutive failed logins per username and enforces a
// timed lockout once the failure threshold is reached. Expired lockouts are
// cleaned up lazily, on the next inspection, rather than by a background sweep.
type AttemptTracker struct {
	mu        sync.Mutex
	attempts  map[string]*attemptRecord
	threshold int
	lockout   time.Duration
	now       func() time.Time
}

func NewAttemptTracker(threshold int, lockout time.Duration) *AttemptTracker {
	return &AttemptTracker{
		attempts:  make(map[string]*attemptRecord),
		threshold: threshold,
		lockout:   lockout,
		now:       time.Now,
	}
}

// RecordSuccess clears any attempt state for the username. A single failure
// after a successful login starts counting from one again.
func (t *AttemptTracker) RecordSuccess(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, username)
}

// RecordFailure increments the failure count and arms the lockout window once
// the count reaches the threshold. Returns the new count.
func (t *AttemptTracker) RecordFailure(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.attempts[username]
	if !ok {
		rec = &attemptRecord{}
		t.attempts[username] = rec
	}

	rec.failureCount++
	if rec.failureCount >= t.threshold {
		rec.blockedUntil = t.now().Add(t.lockout)
	}
	return rec.failureCount
}

// IsBlocked reports whether the username is inside an active lockout window
// and, if so, how long remains. A record whose window has elapsed is deleted.
func (t *AttemptTracker) IsBlocked(username string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.attempts[username]
	if !ok || rec.blockedUntil.IsZero() {
		return false, 0
	}

	remaining := rec.blockedUntil.Sub(t.now())
	if remaining <= 0 {
		delete(t.attempts, username)
		return false, 0
	}
	return true, remaining
}

// Threshold returns the failure count at which the lockout arms.
func (t *AttemptTracker) Threshold() int {
	return t.threshold
}
