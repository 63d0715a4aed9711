package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shop-api/internal/config"
	"shop-api/internal/handlers"
	"shop-api/internal/middleware"
	"shop-api/internal/services"
	"shop-api/internal/store"
)

// SetupRouter wires the stores and services together and mounts the API
// routes. The user store and catalog are injected so tests can run against
// isolated, freshly seeded instances.
func SetupRouter(cfg config.Config, users *store.UserStore, catalog *store.Catalog, logger zerolog.Logger) *mux.Router {
	attempts := store.NewAttemptTracker(cfg.LockoutThreshold, cfg.LockoutDuration)
	tokens := store.NewResetTokenStore(cfg.ResetTokenTTL)
	carts := store.NewCartStore(catalog)

	userService := services.NewUserService(users, attempts, tokens, logger)
	authService := services.NewAuthService(cfg.JWTSecret, cfg.SessionTTL, logger)
	cartService := services.NewCartService(carts, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, logger)
	productHandler := handlers.NewProductHandler(catalog, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.RequestValidation())
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/forgot-password", authHandler.ForgotPassword).Methods("POST")
	auth.HandleFunc("/reset-password", authHandler.ResetPassword).Methods("POST")

	protectedAuth := auth.PathPrefix("").Subrouter()
	protectedAuth.Use(middleware.Authentication(authService, logger))
	protectedAuth.HandleFunc("/verify", authHandler.Verify).Methods("GET")

	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", productHandler.ListProducts).Methods("GET")
	products.HandleFunc("/{id:[0-9]+}", productHandler.GetProduct).Methods("GET")

	// Cart and checkout live under the products prefix and require a session.
	cart := products.PathPrefix("").Subrouter()
	cart.Use(middleware.Authentication(authService, logger))
	cart.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	cart.HandleFunc("/cart", cartHandler.AddToCart).Methods("POST")
	cart.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")
	cart.HandleFunc("/cart/{itemId}", cartHandler.UpdateCartItem).Methods("PUT")
	cart.HandleFunc("/cart/{itemId}", cartHandler.RemoveCartItem).Methods("DELETE")
	cart.HandleFunc("/checkout", cartHandler.Checkout).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
