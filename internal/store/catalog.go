package store

import (
	"sync"

	"shop-api/internal/models"
)

// Catalog holds the seeded products. Stock is the only mutable field and is
// decremented exclusively through CommitStock.
type Catalog struct {
	mu    sync.Mutex
	byID  map[int]*models.Product
	order []int
}

func NewCatalog(products []*models.Product) *Catalog {
	c := &Catalog{
		byID: make(map[int]*models.Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

// List returns all products in seed order. Copies, so callers cannot mutate
// stock behind the lock.
func (c *Catalog) List() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

func (c *Catalog) Get(id int) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// CommitStock runs the checkout stock transaction: a validation pass over all
// lines, then a commit pass decrementing each product's stock. The first line
// whose product cannot cover its quantity aborts the whole call with nothing
// committed. The lock spans both passes, so two concurrent checkouts cannot
// both validate against the same stock snapshot.
func (c *Catalog) CommitStock(lines []*models.CartItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range lines {
		p, ok := c.byID[line.ProductID]
		if !ok {
			return ErrProductNotFound
		}
		if p.Stock < line.Quantity {
			return &InsufficientStockError{ProductName: p.Name}
		}
	}

	for _, line := range lines {
		c.byID[line.ProductID].Stock -= line.Quantity
	}
	return nil
}
