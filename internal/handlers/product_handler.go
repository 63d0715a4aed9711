package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"shop-api/internal/store"
)

type ProductHandler struct {
	catalog *store.Catalog
	logger  zerolog.Logger
}

func NewProductHandler(catalog *store.Catalog, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": h.catalog.List(),
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			h.respondWithError(w, http.StatusNotFound, "product_not_found", "Product not found")
			return
		}
		h.logger.Error().Err(err).Int("product_id", id).Msg("Error fetching product")
		h.respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

func (h *ProductHandler) respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func (h *ProductHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
