package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elliora-dashboard/internal/config"
	"elliora-dashboard/internal/database"
	"elliora-dashboard/internal/handlers"
	"elliora-dashboard/internal/middleware"
	"elliora-dashboard/internal/seed"
	"elliora-dashboard/internal/services"
	"elliora-dashboard/internal/source"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.Load()
	setupLogger(cfg)

	var (
		db      *database.DB
		txnSrc  source.TransactionSource
		acctSrc source.AccountSource
	)

	if cfg.UseLocalSource() {
		var err error
		db, err = database.New(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatalf("Failed to get sql.DB: %v", err)
		}
		if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if err := db.AutoMigrate(); err != nil {
			log.Fatalf("Auto-migration failed: %v", err)
		}
		if err := db.CreateIndexes(); err != nil {
			log.Fatalf("Index creation failed: %v", err)
		}

		if cfg.IsDevelopment() {
			gen := seed.NewGenerator(db, 1, slog.Default())
			if err := gen.Run(3, 60, 90); err != nil {
				log.Fatalf("Seeding failed: %v", err)
			}
		}

		txnSrc = source.NewStoreSource(db.DB)
		acctSrc = source.NewStoreAccountSource(db.DB)
		slog.Info("using local store source")
	} else {
		txnSrc = source.NewHTTPSource(cfg.Upstream.BaseURL, cfg.Upstream.FetchTimeout)
		acctSrc = source.NewHTTPAccountSource(cfg.Upstream.BaseURL, cfg.Upstream.FetchTimeout)
		slog.Info("using upstream account service", slog.String("base_url", cfg.Upstream.BaseURL))
	}

	metrics := services.NewPrometheusMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	healthHandler := handlers.NewHealthCheckHandler(gormDB(db))
	accountHandler := handlers.NewAccountHandler(acctSrc, slog.Default())
	transactionHandler := handlers.NewTransactionViewHandler(txnSrc, cfg.Views, metrics, slog.Default())
	dashboardHandler := handlers.NewDashboardHandler(txnSrc, acctSrc, cfg.Views, metrics, slog.Default())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/accounts", accountHandler.ListAccounts)
	api.GET("/accounts/:accountId/transactions", transactionHandler.ListTransactions)
	api.GET("/dashboard/transactions", dashboardHandler.RecentTransactions)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	slog.Info("server started", slog.String("addr", server.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
	slog.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}

// gormDB unwraps the optional store handle for the health check.
func gormDB(db *database.DB) *gorm.DB {
	if db == nil {
		return nil
	}
	return db.DB
}
