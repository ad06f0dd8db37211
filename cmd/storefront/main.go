package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/api"
	"github.com/velas-starlight/storefront/internal/cart"
	"github.com/velas-starlight/storefront/internal/catalog"
	"github.com/velas-starlight/storefront/internal/checkout"
	"github.com/velas-starlight/storefront/internal/config"
	"github.com/velas-starlight/storefront/internal/discount"
	"github.com/velas-starlight/storefront/internal/notify"
	"github.com/velas-starlight/storefront/internal/pricing"
	"github.com/velas-starlight/storefront/internal/quote"
	"github.com/velas-starlight/storefront/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// The application root owns the single store instance; everything
	// downstream receives it by injection.
	fs := afero.NewOsFs()
	store := cart.NewStore(
		storage.NewFileStore(fs, cfg.Storage.Path, logger),
		cfg.Pricing.FallbackUnitPrice,
		logger,
	)

	engine := pricing.NewEngine(cfg.Pricing)
	ledger := discount.NewLedger(cfg.Discounts, logger)
	notifier := notify.NewLogNotifier(logger)
	form := checkout.NewContactForm()
	quotes := quote.NewFileWriter(fs, filepath.Join(filepath.Dir(cfg.Storage.Path), "quotes"), logger)

	session := checkout.NewSession(store, engine, ledger, form, notifier, quotes, logger)

	router := api.NewRouter(cfg, &api.Deps{
		Catalog: catalog.New(),
		Cart:    store,
		Session: session,
		Form:    form,
	}, logger)

	logger.Info("Storefront listening",
		zap.String("port", cfg.Port),
		zap.Int("cart_items", store.Len()),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
