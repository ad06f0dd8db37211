// Package pricing computes subtotal, shipping cost, discount and grand
// total from cart state. All functions are pure; amounts are MXN and are
// rounded for display only at the presentation layer.
package pricing

import (
	"math"

	"github.com/velas-starlight/storefront/internal/config"
	"github.com/velas-starlight/storefront/internal/domain"
)

// Line is one row of the detailed order breakdown shown before payment.
type Line struct {
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Size      string  `json:"size"`
	Fragrance string  `json:"fragrance"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type Engine struct {
	cfg config.PricingConfig
}

func NewEngine(cfg config.PricingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Subtotal returns the sum of unit price times quantity across the items.
// Invalid unit prices count at the fallback price so a single bad item
// cannot zero out a total.
func (e *Engine) Subtotal(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total += e.unitPrice(item) * float64(quantity)
	}
	return total
}

// ShippingCost returns the shipping cost for the selected method. An
// empty cart ships for nothing, a subtotal at or above the free-shipping
// threshold waives the cost regardless of method, and an unrecognized
// method charges the standard rate.
func (e *Engine) ShippingCost(items []domain.CartItem, method domain.ShippingMethod) float64 {
	if len(items) == 0 {
		return 0
	}
	if e.Subtotal(items) >= e.cfg.FreeShippingThreshold {
		return 0
	}
	if method == domain.ShippingExpress {
		return e.cfg.ExpressRate
	}
	return e.cfg.StandardRate
}

// Total is subtotal plus shipping minus the discount amount. It is not
// floored at zero: a discount larger than subtotal plus shipping yields a
// negative total, displayed as-is.
func (e *Engine) Total(items []domain.CartItem, method domain.ShippingMethod, discount float64) float64 {
	return e.Subtotal(items) + e.ShippingCost(items, method) - discount
}

// Summarize computes the full totals block for the given selections.
func (e *Engine) Summarize(items []domain.CartItem, method domain.ShippingMethod, discount float64) domain.OrderSummary {
	subtotal := e.Subtotal(items)
	shipping := e.ShippingCost(items, method)
	units := 0
	for _, item := range items {
		units += item.Quantity
	}
	return domain.OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal + shipping - discount,
		Lines:    len(items),
		Units:    units,
	}
}

// Breakdown returns the per-line detail for the final order summary.
func (e *Engine) Breakdown(items []domain.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		price := e.unitPrice(item)
		lines = append(lines, Line{
			Title:     item.Title,
			Type:      item.Type,
			Size:      item.Size,
			Fragrance: item.Fragrance,
			Quantity:  quantity,
			UnitPrice: price,
			LineTotal: price * float64(quantity),
		})
	}
	return lines
}

// FreeShippingThreshold exposes the configured threshold for display.
func (e *Engine) FreeShippingThreshold() float64 {
	return e.cfg.FreeShippingThreshold
}

func (e *Engine) unitPrice(item domain.CartItem) float64 {
	if item.Price > 0 && !math.IsNaN(item.Price) && !math.IsInf(item.Price, 0) {
		return item.Price
	}
	return e.cfg.FallbackUnitPrice
}
