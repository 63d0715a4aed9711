package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenStore_IssueAndConsume(t *testing.T) {
	s := NewResetTokenStore(10 * time.Minute)

	token, err := s.Issue("usuario1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(token), 20, "token must be long enough to be unguessable")

	username, err := s.Consume(token)
	require.NoError(t, err)
	assert.Equal(t, "usuario1", username)

	// Single use: the same token fails the second time.
	_, err = s.Consume(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenStore_ReissueInvalidatesPrior(t *testing.T) {
	s := NewResetTokenStore(10 * time.Minute)

	first, err := s.Issue("usuario1")
	require.NoError(t, err)
	second, err := s.Issue("usuario1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = s.Consume(first)
	assert.ErrorIs(t, err, ErrInvalidToken)

	username, err := s.Consume(second)
	require.NoError(t, err)
	assert.Equal(t, "usuario1", username)
}

func TestResetTokenStore_Expiry(t *testing.T) {
	s := NewResetTokenStore(10 * time.Minute)

	now := time.Now()
	s.now = func() time.Time { return now }

	token, err := s.Issue("usuario1")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(10*time.Minute + time.Second) }

	_, err = s.Consume(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	// The expired token was deleted, so an immediate retry reports it as
	// unknown rather than expired.
	_, err = s.Consume(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenStore_TokensAreDistinctPerUser(t *testing.T) {
	s := NewResetTokenStore(10 * time.Minute)

	t1, err := s.Issue("usuario1")
	require.NoError(t, err)
	t2, err := s.Issue("admin")
	require.NoError(t, err)

	// Issuing for one user must not disturb another user's token.
	username, err := s.Consume(t1)
	require.NoError(t, err)
	assert.Equal(t, "usuario1", username)

	username, err = s.Consume(t2)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestResetTokenStore_UnknownToken(t *testing.T) {
	s := NewResetTokenStore(10 * time.Minute)

	_, err := s.Consume("never-issued")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
