package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/01moynul/shopfront-api/internal/auth"
	"github.com/01moynul/shopfront-api/internal/config"
	"github.com/01moynul/shopfront-api/internal/database"
	"github.com/01moynul/shopfront-api/internal/handlers"
	"github.com/01moynul/shopfront-api/internal/logger"
	"github.com/01moynul/shopfront-api/internal/repository"
	"github.com/01moynul/shopfront-api/internal/routes"
	"github.com/01moynul/shopfront-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database Connection Pool ---
	db, err := database.Open(ctx, cfg.MySQL, zl)
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.MySQL.AutoMigrate {
		if err := database.EnsureSchema(ctx, db); err != nil {
			zl.Fatal("Failed to apply schema", zap.Error(err))
		}
		zl.Info("Schema ensured")
	}

	// --- Application Setup ---
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	issuer := auth.NewTokenIssuer(cfg.JWT)
	policy := auth.NewCatalogPolicy(cfg.Auth.CatalogAdminEmails)

	app := &handlers.Handlers{
		Products: services.NewProductService(productRepo, zl),
		Users:    services.NewUserService(userRepo, auth.NewBcryptHasher(), zl),
		Carts:    services.NewCartService(cartRepo, productRepo, zl),
		Wishlist: services.NewWishlistService(wishlistRepo, productRepo, zl),
		Tokens:   issuer,
		Logger:   zl,
	}

	router := routes.SetupRouter(app, issuer, policy, zl, cfg.Server)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		zl.Info("Starting Shopfront API server", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	zl.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server forced to shut down", zap.Error(err))
	}
}
