package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

type resetToken struct {
	username  string
	expiresAt time.Time
}

// ResetTokenStore maps opaque password-reset tokens to the username they
// authorize. At most one live token exists per username; issuing a new one
// removes any prior tokens. Tokens are single-use and expire after the
// configured TTL, checked lazily at consume time.
type ResetTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*resetToken
	ttl    time.Duration
	now    func() time.Time
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{
		tokens: make(map[string]*resetToken),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a fresh token for the username, invalidating any token issued
// earlier for the same username.
func (s *ResetTokenStore) Issue(username string) (string, error) {
	token, err := makeToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for t, data := range s.tokens {
		if data.username == username {
			delete(s.tokens, t)
		}
	}

	s.tokens[token] = &resetToken{
		username:  username,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

// Consume validates the token and deletes it. An expired token is also
// deleted, so retrying immediately still fails.
func (s *ResetTokenStore) Consume(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.tokens[token]
	if !ok {
		return "", ErrInvalidToken
	}

	if s.now().After(data.expiresAt) {
		delete(s.tokens, token)
		return "", ErrExpiredToken
	}

	delete(s.tokens, token)
	return data.username, nil
}

// makeToken draws 16 bytes from the CSPRNG, hex encoded to 32 characters.
func makeToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
