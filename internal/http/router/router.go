package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/http/middleware"
	"courier-dispatch/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	h *handlers.Handlers,
	couriers *handlers.CourierHandler,
	orders *handlers.OrderHandler,
	regions *handlers.RegionHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/couriers", func(r chi.Router) {
		r.Post("/", couriers.Create)
		r.Get("/", couriers.List)
		r.Get("/{id}", couriers.GetByID)
		r.Patch("/{id}", couriers.Patch)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.Create)
		r.Get("/{id}", orders.GetByID)
		r.Post("/assign", orders.Assign)
		r.Post("/complete", orders.Complete)
	})

	r.Post("/regions", regions.Create)

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
