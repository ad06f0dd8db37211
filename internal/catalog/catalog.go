// Package catalog holds the static product table of the Velas Starlight
// storefront and builds cart item candidates from a product plus the
// options the customer selected.
package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/velas-starlight/storefront/internal/domain"
)

// DefaultUnitPrice is substituted when a product has no sizes to take a
// price from. Every substitution is deterministic: first size's price if
// the product has sizes, otherwise this constant.
const DefaultUnitPrice = 75

// Option filters for Find.
type Filter struct {
	Category string
	Query    string
	Featured bool
}

// SelectedOptions is the configuration chosen in the product detail view.
// Zero values fall back to the product's first type, size and fragrance.
type SelectedOptions struct {
	Type      string
	Size      string
	Price     float64
	Fragrance string
	Quantity  int
}

type Catalog struct {
	products []domain.Product
}

// New creates a catalog with the storefront's product table.
func New() *Catalog {
	return &Catalog{products: products()}
}

// All returns every product in catalog order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Find returns the products matching the filter, in catalog order.
// Category "all" or empty matches everything; the query matches title and
// description case-insensitively.
func (c *Catalog) Find(f Filter) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := []domain.Product{}
	for _, p := range c.products {
		if f.Category != "" && f.Category != "all" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Featured && !p.Featured {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// BuildCartItem assembles a cart item candidate from a product and the
// selected options. Missing options fall back to the product's first
// type, size and fragrance; a missing or invalid price falls back to the
// first size's price. The caller (the cart store) assigns id and
// timestamp on insertion.
func (c *Catalog) BuildCartItem(p domain.Product, opts SelectedOptions) domain.CartItem {
	item := domain.CartItem{
		Title:       p.Title,
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
		Type:        opts.Type,
		Size:        opts.Size,
		Fragrance:   opts.Fragrance,
		Price:       opts.Price,
		Quantity:    opts.Quantity,
		AddedAt:     time.Now(),
	}

	if item.Type == "" && len(p.Types) > 0 {
		item.Type = p.Types[0]
	}
	if item.Size == "" {
		if len(p.Sizes) > 0 {
			item.Size = p.Sizes[0].Label
		} else {
			item.Size = "50 gr"
		}
	}
	if item.Fragrance == "" && len(p.Fragrances) > 0 {
		item.Fragrance = p.Fragrances[0]
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if !validPrice(item.Price) {
		item.Price = fallbackPrice(p)
	}

	return item
}

func validPrice(price float64) bool {
	return price > 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}

func fallbackPrice(p domain.Product) float64 {
	if len(p.Sizes) > 0 && validPrice(p.Sizes[0].Price) {
		return p.Sizes[0].Price
	}
	return DefaultUnitPrice
}
