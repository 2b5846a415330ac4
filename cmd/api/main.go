package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kaletesis/stoktakip-backend/internal/config"
	"github.com/kaletesis/stoktakip-backend/internal/modules/auth"
	"github.com/kaletesis/stoktakip-backend/internal/modules/catalog"
	"github.com/kaletesis/stoktakip-backend/internal/modules/export"
	"github.com/kaletesis/stoktakip-backend/internal/modules/inventory"
	"github.com/kaletesis/stoktakip-backend/internal/modules/report"
	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := config.SetupDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to set up database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to database", zap.String("database", cfg.Database.DBName))

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity & Access ───────────────────────────────────
	userRepo := user.NewPostgresRepository(db.DB)
	userService := user.NewService(userRepo, logger)

	authService := auth.NewService(userRepo, cfg.Auth.JWTSecret, logger)
	auth.NewHandler(authService).RegisterRoutes(router)

	authMw := auth.NewMiddleware(authService)
	guard := func(cap auth.Capability) func(http.Handler) http.Handler {
		return chain(authMw.Authenticate, authMw.Require(cap))
	}

	user.NewHandler(userService).RegisterRoutes(router, chain(authMw.Authenticate, authMw.RequireAdmin))

	// ── Catalog & Ledger ────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db.DB)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalog.NewHandler(catalogService).RegisterRoutes(router, authMw.Authenticate, authMw.Require(auth.CapAddProduct))

	inventoryRepo := inventory.NewPostgresRepository(db.DB)
	inventoryService := inventory.NewService(inventoryRepo, logger)
	inventory.NewHandler(inventoryService).RegisterRoutes(router, guard(auth.CapManageInventory))

	// ── Reporting ───────────────────────────────────────────
	reportRepo := report.NewPostgresRepository(db)
	reportService := report.NewService(reportRepo)
	report.NewHandler(reportService, export.WriteTable).RegisterRoutes(router, guard(auth.CapViewReports))

	// ── Start Server ────────────────────────────────────────
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("stok takip API server starting", zap.String("addr", addr))
	log.Fatal(http.ListenAndServe(addr, router))
}

// chain composes middlewares left to right.
func chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
