package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"shop-api/internal/middleware"
	"shop-api/internal/models"
	"shop-api/internal/services"
	"shop-api/internal/store"
)

type CartHandler struct {
	cartService *services.CartService
	logger      zerolog.Logger
}

func NewCartHandler(cartService *services.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cart": h.cartService.GetCart(userID),
	})
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.ProductID == 0 {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Product ID is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.cartService.AddItem(userID, req.ProductID, req.Quantity); err != nil {
		h.respondWithCartError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Item added to cart",
	})
}

func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.Quantity < 1 {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Quantity must be at least 1")
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if err := h.cartService.UpdateQuantity(userID, itemID, req.Quantity); err != nil {
		h.respondWithCartError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Quantity updated",
	})
}

func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if err := h.cartService.RemoveItem(userID, itemID); err != nil {
		h.respondWithCartError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Item removed from cart",
	})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	h.cartService.Clear(userID)

	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Cart cleared",
	})
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	result, err := h.cartService.Checkout(userID)
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			h.respondWithError(w, http.StatusBadRequest, "empty_cart", "Cart is empty")
			return
		}
		h.respondWithCartError(w, err)
		return
	}

	username, _ := middleware.GetUsername(r)
	h.logger.Info().Str("username", username).Str("order_id", result.OrderID).Msg("Order placed")

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Checkout completed successfully",
		"orderId": result.OrderID,
		"total":   result.Total,
	})
}

// respondWithCartError maps the store error taxonomy to HTTP statuses:
// not-found kinds to 404, stock and quantity failures to 400.
func (h *CartHandler) respondWithCartError(w http.ResponseWriter, err error) {
	var stock *store.InsufficientStockError

	switch {
	case errors.Is(err, store.ErrProductNotFound):
		h.respondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
	case errors.Is(err, store.ErrCartNotFound):
		h.respondWithError(w, http.StatusNotFound, "cart_not_found", "Cart not found")
	case errors.Is(err, store.ErrItemNotFound):
		h.respondWithError(w, http.StatusNotFound, "item_not_found", "Item not found in cart")
	case errors.As(err, &stock):
		h.respondWithError(w, http.StatusBadRequest, "insufficient_stock",
			fmt.Sprintf("Insufficient stock for product %s", stock.ProductName))
	case errors.Is(err, store.ErrInvalidQuantity):
		h.respondWithError(w, http.StatusBadRequest, "invalid_quantity", "Quantity must be at least 1")
	default:
		h.logger.Error().Err(err).Msg("Cart operation failed")
		h.respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
	}
}

func (h *CartHandler) respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func (h *CartHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
