package services

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shop-api/internal/models"
	"shop-api/internal/store"
)

// CartService fronts the cart store and runs checkout. The stock transaction
// itself lives in the store layer, where it is serialized behind the cart
// mutex; this layer adds order ids and logging.
type CartService struct {
	carts  *store.CartStore
	logger zerolog.Logger
}

func NewCartService(carts *store.CartStore, logger zerolog.Logger) *CartService {
	return &CartService{
		carts:  carts,
		logger: logger,
	}
}

func (s *CartService) AddItem(userID, productID, quantity int) error {
	if err := s.carts.AddItem(userID, productID, quantity); err != nil {
		return err
	}
	s.logger.Info().
		Int("user_id", userID).
		Int("product_id", productID).
		Int("quantity", quantity).
		Msg("Item added to cart")
	return nil
}

func (s *CartService) UpdateQuantity(userID int, itemID string, quantity int) error {
	return s.carts.UpdateQuantity(userID, itemID, quantity)
}

func (s *CartService) RemoveItem(userID int, itemID string) error {
	return s.carts.RemoveItem(userID, itemID)
}

func (s *CartService) GetCart(userID int) *models.Cart {
	return s.carts.GetCart(userID)
}

func (s *CartService) Clear(userID int) {
	s.carts.Clear(userID)
}

// Checkout validates stock for every cart line and, only if all pass, commits
// the stock deductions and deletes the cart. A single short line aborts the
// whole order with nothing committed.
func (s *CartService) Checkout(userID int) (*models.CheckoutResult, error) {
	total, err := s.carts.Checkout(userID)
	if err != nil {
		s.logger.Warn().Err(err).Int("user_id", userID).Msg("Checkout aborted")
		return nil, err
	}

	result := &models.CheckoutResult{
		OrderID: uuid.NewString(),
		Total:   total,
	}

	s.logger.Info().
		Int("user_id", userID).
		Str("order_id", result.OrderID).
		Float64("total", result.Total).
		Msg("Checkout completed")

	return result, nil
}
