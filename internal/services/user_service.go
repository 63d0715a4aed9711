package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"shop-api/internal/models"
	"shop-api/internal/store"
)

// UserService answers "is this login valid" and owns the password-reset flow.
// It orchestrates the credential store, the attempt tracker and the reset
// token store; all of them are injected so tests can run against isolated
// instances.
type UserService struct {
	users    *store.UserStore
	attempts *store.AttemptTracker
	tokens   *store.ResetTokenStore
	logger   zerolog.Logger
}

func NewUserService(users *store.UserStore, attempts *store.AttemptTracker, tokens *store.ResetTokenStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		attempts: attempts,
		tokens:   tokens,
		logger:   logger,
	}
}

// Authenticate verifies the credentials and updates attempt state as a side
// effect. The lockout check runs before password verification, so a correct
// password during an active lockout window is still rejected.
func (s *UserService) Authenticate(req *models.LoginRequest) (*models.PublicUser, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if blocked, remaining := s.attempts.IsBlocked(req.Username); blocked {
		minutes := int(math.Ceil(remaining.Seconds() / 60))
		return nil, &store.AccountLockedError{MinutesRemaining: minutes}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Error().Err(err).Str("username", req.Username).Msg("Error comparing password hash")
		}

		count := s.attempts.RecordFailure(req.Username)
		remaining := s.attempts.Threshold() - count
		if remaining > 0 {
			s.logger.Warn().Str("username", req.Username).Int("attempts_remaining", remaining).Msg("Failed login attempt")
			return nil, &store.InvalidPasswordError{AttemptsRemaining: remaining}
		}

		// This failure armed the lockout window.
		blocked, until := s.attempts.IsBlocked(req.Username)
		minutes := 0
		if blocked {
			minutes = int(math.Ceil(until.Seconds() / 60))
		}
		s.logger.Warn().Str("username", req.Username).Msg("Account locked after repeated failures")
		return nil, &store.AccountLockedError{MinutesRemaining: minutes}
	}

	s.attempts.RecordSuccess(req.Username)
	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("User authenticated successfully")
	return user.Public(), nil
}

// GetUserByID resolves the user behind a session token's claims. Tokens
// outlive password resets, so callers get the current record, not a snapshot
// from login time.
func (s *UserService) GetUserByID(id int) (*models.PublicUser, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// RequestPasswordReset mints a single-use reset token for the username,
// invalidating any token issued earlier.
func (s *UserService) RequestPasswordReset(username string) (string, error) {
	if _, err := s.users.FindByUsername(username); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Error issuing reset token")
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("Password reset token issued")
	return token, nil
}

// ResetPassword consumes the token and replaces the user's password hash.
func (s *UserService) ResetPassword(token, newPassword string) error {
	username, err := s.tokens.Consume(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing new password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.SetPasswordHash(username, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("Password reset successfully")
	return nil
}
