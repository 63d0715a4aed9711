package services

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-api/internal/store"
)

func newTestCartService() (*CartService, *store.Catalog) {
	catalog := store.NewCatalog(store.SeedProducts())
	carts := store.NewCartStore(catalog)
	return NewCartService(carts, zerolog.Nop()), catalog
}

func TestCheckout_HappyPath(t *testing.T) {
	s, catalog := newTestCartService()

	require.NoError(t, s.AddItem(1, 1, 2))

	cart := s.GetCart(1)
	assert.InDelta(t, 5999.98, cart.Total, 0.001)

	result, err := s.Checkout(1)
	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderID)
	assert.InDelta(t, 5999.98, result.Total, 0.001)

	p, err := catalog.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 48, p.Stock)

	cart = s.GetCart(1)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}

func TestCheckout_MultipleLines(t *testing.T) {
	s, catalog := newTestCartService()

	require.NoError(t, s.AddItem(1, 1, 2))
	require.NoError(t, s.AddItem(1, 2, 1))

	wantTotal := 2*2999.99 + 5499.99

	result, err := s.Checkout(1)
	require.NoError(t, err)
	assert.InDelta(t, wantTotal, result.Total, 0.001)

	p1, _ := catalog.Get(1)
	p2, _ := catalog.Get(2)
	assert.Equal(t, 48, p1.Stock)
	assert.Equal(t, 29, p2.Stock)
}

func TestCheckout_EmptyCart(t *testing.T) {
	s, _ := newTestCartService()

	_, err := s.Checkout(1)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
}

func TestCheckout_InsufficientStockAbortsWholeOrder(t *testing.T) {
	s, catalog := newTestCartService()

	// Two users cart the full stock of product 4 (stock 20); only one of
	// them can commit.
	require.NoError(t, s.AddItem(1, 1, 2))
	require.NoError(t, s.AddItem(1, 4, 20))
	require.NoError(t, s.AddItem(2, 4, 20))

	_, err := s.Checkout(2)
	require.NoError(t, err)

	_, err = s.Checkout(1)
	var stockErr *store.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Samsung Galaxy Tab S9", stockErr.ProductName)

	// No partial commit: product 1 still has full stock even though its
	// line would have validated.
	p1, _ := catalog.Get(1)
	assert.Equal(t, 50, p1.Stock)

	// The cart survives a failed checkout.
	cart := s.GetCart(1)
	assert.Len(t, cart.Items, 2)
}

// Two concurrent checkouts demanding the same units cannot both pass
// validation: the stock transaction holds the catalog lock across the
// validate and commit passes, so exactly one order wins.
func TestCheckout_ConcurrentCheckoutsCannotOversell(t *testing.T) {
	s, catalog := newTestCartService()

	require.NoError(t, s.AddItem(1, 3, 25))
	require.NoError(t, s.AddItem(2, 3, 25))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []int{1, 2} {
		wg.Add(1)
		go func(i, userID int) {
			defer wg.Done()
			_, errs[i] = s.Checkout(userID)
		}(i, userID)
	}
	wg.Wait()

	var successes, failures int
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			var stockErr *store.InsufficientStockError
			require.ErrorAs(t, err, &stockErr)
			failures++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)

	p, _ := catalog.Get(3)
	assert.Equal(t, 0, p.Stock, "stock must never go negative")
}

func TestCheckout_OrderIDsAreUnique(t *testing.T) {
	s, _ := newTestCartService()

	require.NoError(t, s.AddItem(1, 1, 1))
	first, err := s.Checkout(1)
	require.NoError(t, err)

	require.NoError(t, s.AddItem(1, 1, 1))
	second, err := s.Checkout(1)
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestCartService_ClearThenCheckout(t *testing.T) {
	s, _ := newTestCartService()

	require.NoError(t, s.AddItem(1, 1, 1))
	s.Clear(1)

	_, err := s.Checkout(1)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
}
