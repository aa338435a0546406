package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/auth"
	authpg "github.com/HaniMe9/abe-garage-hani/internal/auth/postgres"
	"github.com/HaniMe9/abe-garage-hani/internal/catalog"
	catalogpg "github.com/HaniMe9/abe-garage-hani/internal/catalog/postgres"
	"github.com/HaniMe9/abe-garage-hani/internal/core/events"
	"github.com/HaniMe9/abe-garage-hani/internal/customer"
	customerpg "github.com/HaniMe9/abe-garage-hani/internal/customer/postgres"
	"github.com/HaniMe9/abe-garage-hani/internal/dashboard"
	dashboardpg "github.com/HaniMe9/abe-garage-hani/internal/dashboard/postgres"
	"github.com/HaniMe9/abe-garage-hani/internal/employee"
	employeepg "github.com/HaniMe9/abe-garage-hani/internal/employee/postgres"
	"github.com/HaniMe9/abe-garage-hani/internal/metrics"
	"github.com/HaniMe9/abe-garage-hani/internal/order"
	orderpg "github.com/HaniMe9/abe-garage-hani/internal/order/postgres"
	"github.com/HaniMe9/abe-garage-hani/internal/transport/rest"
	"github.com/HaniMe9/abe-garage-hani/internal/vehicle"
	vehiclepg "github.com/HaniMe9/abe-garage-hani/internal/vehicle/postgres"
	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	RoleGate *auth.RoleGate
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.RoleGate, deps.Config, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Environment, cfg.Observability.Logging.Level)
	log := logger.LoggerWrapper()
	if log == nil {
		log = slog.Default()
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm shares the pgx connection pool instead of opening its own.
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	authRepo := authpg.NewRepository(gormDB)
	roles, err := authRepo.LoadRoles()
	if err != nil {
		return nil, fmt.Errorf("failed to load company roles: %w", err)
	}
	registry := auth.NewRoleRegistry(roles)
	log.Info("role registry loaded", "roles", registry.Names())

	tokens := auth.NewJWTTokenGenerator(cfg.Security.SessionSecret, cfg.Security.TokenTTL)
	authService := auth.NewService(authRepo, tokens, registry, cfg.Security.BCryptCost, log)

	bus := events.NewEventBus(log)
	bus.Subscribe(events.OrderCreated, func(ctx context.Context, e events.Event) error {
		metrics.OrdersCreatedTotal.Inc()
		return nil
	})
	bus.Subscribe(events.OrderCompleted, func(ctx context.Context, e events.Event) error {
		metrics.OrdersCompletedTotal.Inc()
		return nil
	})

	customerService := customer.NewService(customerpg.NewRepository(gormDB), log)
	employeeService := employee.NewService(employeepg.NewRepository(gormDB), registry, log)
	vehicleRepo := vehiclepg.NewRepository(gormDB)
	vehicleService := vehicle.NewService(vehicleRepo, log)
	catalogService := catalog.NewService(catalogpg.NewRepository(gormDB), log)
	orderRepo := orderpg.NewRepository(gormDB)
	orderService := order.NewService(orderRepo, catalogpg.NewRepository(gormDB), bus, log)
	dashboardService := dashboard.NewService(dashboardpg.NewRepository(gormDB), orderRepo, vehicleRepo, log)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Customer:  customer.NewHandler(customerService),
		Employee:  employee.NewHandler(employeeService),
		Vehicle:   vehicle.NewHandler(vehicleService),
		Catalog:   catalog.NewHandler(catalogService),
		Order:     order.NewHandler(orderService),
		Dashboard: dashboard.NewHandler(dashboardService),
	}

	return &Dependencies{
		Config:   cfg,
		DB:       db,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		RoleGate: auth.NewRoleGate(log),
		Logger:   log,
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
