package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/cart"
	"github.com/velas-starlight/storefront/internal/config"
	"github.com/velas-starlight/storefront/internal/discount"
	"github.com/velas-starlight/storefront/internal/domain"
	"github.com/velas-starlight/storefront/internal/pricing"
	"github.com/velas-starlight/storefront/internal/storage"
)

// Prints the persisted cart and its totals. Usage:
//
//	go run cmd/cart-report/main.go [discount-code]
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	store := cart.NewStore(
		storage.NewFileStore(afero.NewOsFs(), cfg.Storage.Path, logger),
		cfg.Pricing.FallbackUnitPrice,
		logger,
	)

	items := store.Items()
	if len(items) == 0 {
		fmt.Println("The cart is empty.")
		return
	}

	engine := pricing.NewEngine(cfg.Pricing)
	ledger := discount.NewLedger(cfg.Discounts, logger)

	if len(os.Args) > 1 {
		if _, err := ledger.Apply(os.Args[1], engine.Subtotal(items)); err != nil {
			fmt.Fprintf(os.Stderr, "Discount code rejected: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Cart (%d items, %d units)\n\n", len(items), store.TotalUnits())
	for _, line := range engine.Breakdown(items) {
		fmt.Printf("  %-28s %s / %s / %s\n", line.Title, line.Type, line.Size, line.Fragrance)
		fmt.Printf("    %d x $%.2f MXN = $%.2f MXN\n", line.Quantity, line.UnitPrice, line.LineTotal)
	}

	summary := engine.Summarize(items, domain.ShippingStandard, ledger.Amount())
	fmt.Printf("\nSubtotal:  $%.2f MXN\n", summary.Subtotal)
	fmt.Printf("Shipping:  $%.2f MXN (standard)\n", summary.Shipping)
	if summary.Discount > 0 {
		fmt.Printf("Discount: -$%.2f MXN\n", summary.Discount)
	}
	fmt.Printf("Total:     $%.2f MXN\n", summary.Total)
}
