package models

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

// CartItem is one product line in a user's cart. Price is the unit price at
// the time of the last add/merge; Total is always Price * Quantity.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	Image     string  `json:"image"`
}

type Cart struct {
	Items     []*CartItem `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"itemCount"`
}

type AddToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutResult struct {
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}
