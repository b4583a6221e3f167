// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"celestial-store/internal/api/handler"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Accounts  *handler.AccountHandler
	Catalog   *handler.CatalogHandler
	Purchases *handler.PurchaseHandler
	Reviews   *handler.ReviewHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Bound every request

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Accounts.Register)
		r.Post("/login", h.Accounts.Login)
		r.Post("/topup", h.Accounts.TopUp)

		r.Get("/products", h.Catalog.ListProducts)
		r.Post("/purchase", h.Purchases.Purchase)

		r.Post("/review", h.Reviews.SubmitReview)
		r.Get("/reviews", h.Reviews.ListReviews)
	})

	logger.Debug("HTTP routes registered")
	return r
}
