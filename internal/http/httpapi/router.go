package httpapi

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"aidforpaws/internal/http/handlers"
	"aidforpaws/internal/middleware"
)

// Options carries the router settings that come from configuration.
type Options struct {
	AllowedOrigins              []string
	RateLimitPerMin             int
	DirectDonationsRequireAdmin bool
	CountryLookup               middleware.CountryLookup
	TrustedProxies              []*net.IPNet
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP(opts.TrustedProxies),
		middleware.RequestID,
		middleware.Country(opts.CountryLookup),
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)

	requireAdmin := middleware.AuthJWT(app.JWTSecret)
	limited := middleware.RateLimit(opts.RateLimitPerMin, time.Minute)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Route("/animals", func(r chi.Router) {
			r.Get("/", app.AnimalsList)
			r.Get("/{id}", app.AnimalsGet)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", app.AnimalsCreate)
				r.Put("/{id}", app.AnimalsUpdate)
				r.Delete("/{id}", app.AnimalsDelete)
			})
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", app.DonationsList)
			r.Get("/{id}", app.DonationsGet)
			if opts.DirectDonationsRequireAdmin {
				r.With(requireAdmin).Post("/", app.DonationsCreate)
			} else {
				r.Post("/", app.DonationsCreate)
			}
		})

		r.Route("/payment", func(r chi.Router) {
			r.Use(limited)
			r.Post("/orders", app.PaymentCreateOrder)
			r.Post("/verify", app.PaymentVerify)
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(limited).Post("/login", app.AdminLogin)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/me", app.AdminMe)
				r.Get("/stats", app.AdminStats)
			})
		})
	})

	return r
}
