package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptTracker_LockoutAfterThreshold(t *testing.T) {
	tr := NewAttemptTracker(3, 15*time.Minute)

	assert.Equal(t, 1, tr.RecordFailure("usuario1"))
	assert.Equal(t, 2, tr.RecordFailure("usuario1"))

	blocked, _ := tr.IsBlocked("usuario1")
	assert.False(t, blocked, "two failures must not lock the account")

	assert.Equal(t, 3, tr.RecordFailure("usuario1"))

	blocked, remaining := tr.IsBlocked("usuario1")
	require.True(t, blocked)
	assert.Greater(t, remaining, 14*time.Minute)
	assert.LessOrEqual(t, remaining, 15*time.Minute)
}

func TestAttemptTracker_SuccessClearsRecord(t *testing.T) {
	tr := NewAttemptTracker(3, 15*time.Minute)

	tr.RecordFailure("usuario1")
	tr.RecordFailure("usuario1")
	tr.RecordSuccess("usuario1")

	// Counting restarts from zero: a single failure after a success can
	// never trigger the lockout.
	assert.Equal(t, 1, tr.RecordFailure("usuario1"))
	blocked, _ := tr.IsBlocked("usuario1")
	assert.False(t, blocked)
	assert.Equal(t, 2, tr.RecordFailure("usuario1"))
}

func TestAttemptTracker_LazyExpiry(t *testing.T) {
	tr := NewAttemptTracker(3, 15*time.Minute)

	now := time.Now()
	tr.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		tr.RecordFailure("usuario1")
	}
	blocked, _ := tr.IsBlocked("usuario1")
	require.True(t, blocked)

	// Just before the window elapses the account stays blocked.
	tr.now = func() time.Time { return now.Add(15*time.Minute - time.Second) }
	blocked, _ = tr.IsBlocked("usuario1")
	assert.True(t, blocked)

	// Once the window elapses, the next inspection deletes the record.
	tr.now = func() time.Time { return now.Add(15*time.Minute + time.Second) }
	blocked, _ = tr.IsBlocked("usuario1")
	assert.False(t, blocked)
	assert.Equal(t, 1, tr.RecordFailure("usuario1"), "record must be deleted after expiry")
}

func TestAttemptTracker_UnknownUsernameNotBlocked(t *testing.T) {
	tr := NewAttemptTracker(3, 15*time.Minute)

	blocked, remaining := tr.IsBlocked("nobody")
	assert.False(t, blocked)
	assert.Zero(t, remaining)
	assert.Equal(t, 3, tr.Threshold())
}

func TestAttemptTracker_PerUsernameIsolation(t *testing.T) {
	tr := NewAttemptTracker(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		tr.RecordFailure("usuario1")
	}

	blocked, _ := tr.IsBlocked("admin")
	assert.False(t, blocked, "lockout must not leak across usernames")
}
