package router

import (
	"net/http"

	"sofa-shop/internal/auth"
	"sofa-shop/internal/handler"
	"sofa-shop/internal/metrics"
	"sofa-shop/internal/middleware"
	"sofa-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Order   *handler.OrderHandler
	Catalog *handler.CatalogHandler
	Review  *handler.ReviewHandler
	Admin   *handler.AdminHandler
	Contact *handler.ContactHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.Tokens, authService service.AuthService, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(metrics.Middleware())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.Catalog.ListCategories)
		r.Get("/products", h.Catalog.SearchProducts)
		r.Get("/products/{slug}", h.Catalog.GetProduct)
		r.Post("/products/{id}/reviews", h.Review.Submit)

		r.Post("/orders", h.Order.Checkout)
		r.Get("/orders/track", h.Order.Track)
		r.Post("/orders/{id}/confirm", h.Order.Confirm)

		r.Post("/contact", h.Contact.Submit)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Admin.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(tokens, authService, logger))

				r.Get("/orders", h.Order.List)
				r.Patch("/orders/{id}/status", h.Order.UpdateStatus)

				r.Get("/reviews", h.Review.ListPending)
				r.Patch("/reviews/{id}/approve", h.Review.Approve)
				r.Delete("/reviews/{id}", h.Review.Delete)

				r.Post("/categories", h.Catalog.CreateCategory)
				r.Delete("/categories/{id}", h.Catalog.DeleteCategory)

				r.Post("/products", h.Catalog.CreateProduct)
				r.Put("/products/{id}", h.Catalog.UpdateProduct)
				r.Patch("/products/{id}/active", h.Catalog.SetProductActive)
				r.Delete("/products/{id}", h.Catalog.DeleteProduct)

				r.Put("/variants/{id}", h.Catalog.UpdateVariant)

				r.Post("/images", h.Catalog.UploadImage)
			})
		})
	})

	return r
}
