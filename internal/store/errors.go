package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the expected, recoverable outcomes. Handlers map these
// to HTTP statuses with errors.Is / errors.As; nothing in this package panics.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidToken    = errors.New("invalid reset token")
	ErrExpiredToken    = errors.New("expired reset token")
	ErrEmptyCart       = errors.New("cart is empty")

	// ErrInvalidQuantity covers caller bugs (quantity < 1), returned instead
	// of corrupting state.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// AccountLockedError is returned while a username's lockout window is active.
type AccountLockedError struct {
	MinutesRemaining int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d minutes", e.MinutesRemaining)
}

// InvalidPasswordError reports a failed password check and how many attempts
// remain before the account locks.
type InvalidPasswordError struct {
	AttemptsRemaining int
}

func (e *InvalidPasswordError) Error() string {
	return fmt.Sprintf("invalid password, %d attempts remaining", e.AttemptsRemaining)
}

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductName)
}
