package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/auth"
	"github.com/HaniMe9/abe-garage-hani/internal/catalog"
	"github.com/HaniMe9/abe-garage-hani/internal/customer"
	"github.com/HaniMe9/abe-garage-hani/internal/dashboard"
	"github.com/HaniMe9/abe-garage-hani/internal/employee"
	"github.com/HaniMe9/abe-garage-hani/internal/order"
	"github.com/HaniMe9/abe-garage-hani/internal/transport"
	"github.com/HaniMe9/abe-garage-hani/internal/transport/middleware"
	"github.com/HaniMe9/abe-garage-hani/internal/transport/swagger"
	"github.com/HaniMe9/abe-garage-hani/internal/vehicle"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Customer  *customer.Handler
	Employee  *employee.Handler
	Vehicle   *vehicle.Handler
	Catalog   *catalog.Handler
	Order     *order.Handler
	Dashboard *dashboard.Handler
}

// RegisterAllRoutes wires the full API surface onto the router. The /api
// prefix matches what the frontend expects; admin-tier gates sit on
// employee management, catalog writes and shop-wide stats.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, gate *auth.RoleGate, cfg *internal.Config, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(cfg.Server.FrontendOrigin))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))
	if cfg.Observability.Metrics.Enabled {
		router.Use(middleware.Metrics)
		router.Handle(cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	router.NotFound(notFoundHandler(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	if cfg.Uploads.Dir != "" {
		router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.livenessHandler)
		r.Get("/ready", healthHandler.readinessHandler)

		// Public auth surface. Customers self-register; employee accounts
		// are provisioned by admin tier further down.
		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/customer/register", h.Auth.RegisterCustomer)
			ar.Post("/customer/login", h.Auth.LoginCustomer)
			ar.Post("/employee/login", h.Auth.LoginEmployee)
		})
		// Legacy spellings kept for the existing frontend.
		r.Post("/customer/login", h.Auth.LoginCustomer)
		r.Post("/login", h.Auth.LoginEmployee)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/auth/verify", h.Auth.Verify)
			pr.Get("/verify", h.Auth.Verify)

			// Customer records are staff-facing.
			pr.Group(func(er chi.Router) {
				er.Use(gate.RequireEmployee())

				er.Route("/customer", func(cr chi.Router) {
					cr.Get("/", h.Customer.List)
					cr.Get("/{id}", h.Customer.Get)
					cr.Put("/{id}", h.Customer.Update)
					cr.Delete("/{id}", h.Customer.Deactivate)
				})
				er.Get("/customer/{customerId}/vehicles", h.Vehicle.ListByCustomer)
				er.Get("/customer/{customerId}/orders", h.Order.ListByCustomer)

				er.Route("/vehicle", func(vr chi.Router) {
					vr.Post("/", h.Vehicle.Create)
					vr.Get("/{id}", h.Vehicle.Get)
					vr.Put("/{id}", h.Vehicle.Update)
				})

				er.Route("/order", func(or chi.Router) {
					or.Post("/", h.Order.Create)
					or.Get("/", h.Order.List)
					or.Get("/{id}", h.Order.Get)
					or.Put("/{id}/complete", h.Order.Complete)
					or.Put("/{id}/status", h.Order.UpdateStatus)
				})

				er.Get("/service", h.Catalog.List)
				er.Get("/service/{id}", h.Catalog.Get)

				er.Get("/dashboard", h.Dashboard.Overview)
				er.Get("/employee-stats/{id}", h.Dashboard.EmployeeStats)
				er.Get("/customer-stats/{id}", h.Dashboard.CustomerStats)
			})

			// Admin tier: employee management, catalog writes, shop stats.
			pr.Group(func(mr chi.Router) {
				mr.Use(gate.RequireAdminTier())

				mr.Post("/auth/employee/register", h.Auth.RegisterEmployee)
				mr.Post("/register", h.Auth.RegisterEmployee)

				mr.Route("/employee", func(er chi.Router) {
					er.Get("/", h.Employee.List)
					er.Get("/{id}", h.Employee.Get)
					er.Put("/{id}", h.Employee.Update)
					er.Delete("/{id}", h.Employee.Deactivate)
				})

				mr.Post("/service", h.Catalog.Create)
				mr.Put("/service/{id}", h.Catalog.Update)

				mr.Get("/admin/stats", h.Dashboard.AdminStats)
				mr.Get("/admin-stats", h.Dashboard.AdminStats)
			})
		})
	})
}

func notFoundHandler(logger *slog.Logger) http.HandlerFunc {
	base := transport.NewBaseHandler(logger)
	return func(w http.ResponseWriter, r *http.Request) {
		base.WriteError(w, http.StatusNotFound, "route not found")
	}
}
