package store

import (
	"sync"

	"github.com/google/uuid"

	"shop-api/internal/models"
)

// CartStore keeps one ordered line-item list per user id. Adding a product a
// user already has merges quantities instead of appending a second line.
// Stock is checked against the catalog at mutation time but only reserved at
// checkout, so two carts can hold the same units until one of them commits.
type CartStore struct {
	catalog *Catalog
	mu      sync.Mutex
	carts   map[int][]*models.CartItem
}

func NewCartStore(catalog *Catalog) *CartStore {
	return &CartStore{
		catalog: catalog,
		carts:   make(map[int][]*models.CartItem),
	}
}

func (s *CartStore) AddItem(userID, productID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	product, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}
	if product.Stock < quantity {
		return &InsufficientStockError{ProductName: product.Name}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.carts[userID] {
		if item.ProductID == productID {
			newQuantity := item.Quantity + quantity
			if product.Stock < newQuantity {
				return &InsufficientStockError{ProductName: product.Name}
			}
			item.Quantity = newQuantity
			item.Price = product.Price
			item.Total = float64(newQuantity) * product.Price
			return nil
		}
	}

	s.carts[userID] = append(s.carts[userID], &models.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Total:     float64(quantity) * product.Price,
		Image:     product.Image,
	})
	return nil
}

func (s *CartStore) RemoveItem(userID int, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return ErrCartNotFound
	}

	for i, item := range cart {
		if item.ID == itemID {
			s.carts[userID] = append(cart[:i], cart[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// UpdateQuantity validates the requested quantity against the product's live
// stock only; units already held by other carts are not subtracted, since
// stock is reserved at checkout rather than at add time.
func (s *CartStore) UpdateQuantity(userID int, itemID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return ErrCartNotFound
	}

	for _, item := range cart {
		if item.ID == itemID {
			product, err := s.catalog.Get(item.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < quantity {
				return &InsufficientStockError{ProductName: product.Name}
			}
			item.Quantity = quantity
			item.Total = float64(quantity) * item.Price
			return nil
		}
	}
	return ErrItemNotFound
}

// GetCart returns the cart contents with the running total. A user without a
// cart entry gets the empty shape, not an error.
func (s *CartStore) GetCart(userID int) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	out := &models.Cart{Items: []*models.CartItem{}}
	for _, item := range cart {
		copied := *item
		out.Items = append(out.Items, &copied)
		out.Total += item.Total
	}
	out.ItemCount = len(cart)
	return out
}

// Clear removes the user's cart entry. Idempotent.
func (s *CartStore) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Checkout runs the stock transaction for the user's cart and, on success,
// deletes the cart entry and returns the total charged. The cart mutex is
// held across the whole transaction, so no add/update/remove can change a
// line between the stock validation and the commit.
func (s *CartStore) Checkout(userID int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[userID]
	if !ok {
		return 0, ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Total
	}

	if err := s.catalog.CommitStock(lines); err != nil {
		return 0, err
	}

	delete(s.carts, userID)
	return total, nil
}
