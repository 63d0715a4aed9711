package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"shop-api/internal/middleware"
	"shop-api/internal/models"
	"shop-api/internal/services"
	"shop-api/internal/store"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Username and password are required")
		return
	}

	user, err := h.userService.Authenticate(&req)
	if err != nil {
		var locked *store.AccountLockedError
		var badPassword *store.InvalidPasswordError

		switch {
		case errors.As(err, &locked):
			h.respondWithError(w, http.StatusLocked, "account_locked",
				fmt.Sprintf("Account locked. Try again in %d minutes.", locked.MinutesRemaining))
		case errors.As(err, &badPassword):
			h.respondWithError(w, http.StatusUnauthorized, "invalid_password",
				fmt.Sprintf("Invalid password. Attempts remaining: %d", badPassword.AttemptsRemaining))
		case errors.Is(err, store.ErrUserNotFound):
			h.respondWithError(w, http.StatusUnauthorized, "user_not_found", "User not found")
		default:
			h.logger.Error().Err(err).Msg("Login failed")
			h.respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		h.logger.Error().Err(err).Msg("Token generation failed")
		h.respondWithError(w, http.StatusInternalServerError, "token_generation_failed", "Failed to generate token")
		return
	}

	h.respondWithJSON(w, http.StatusOK, models.AuthResponse{
		User:  user,
		Token: token,
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.Username == "" {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Username is required")
		return
	}

	token, err := h.userService.RequestPasswordReset(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondWithError(w, http.StatusNotFound, "user_not_found", "User not found")
			return
		}
		h.logger.Error().Err(err).Msg("Password reset request failed")
		h.respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Password reset token generated",
		"token":   token,
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.Token == "" || req.NewPassword == "" {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Token and new password are required")
		return
	}

	if err := h.userService.ResetPassword(req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidToken):
			h.respondWithError(w, http.StatusBadRequest, "invalid_token", "Invalid token")
		case errors.Is(err, store.ErrExpiredToken):
			h.respondWithError(w, http.StatusBadRequest, "expired_token", "Expired token")
		default:
			h.logger.Error().Err(err).Msg("Password reset failed")
			h.respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Password changed successfully",
	})
}

// Verify confirms the session token and returns the current user record. The
// route is behind the authentication middleware, so reaching here means the
// token checked out; the store lookup guards against ids minted for users
// that no longer exist.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		h.respondWithError(w, http.StatusUnauthorized, "user_not_found", "User not found")
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Token is valid",
		"user":    user,
	})
}

func (h *AuthHandler) respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func (h *AuthHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
