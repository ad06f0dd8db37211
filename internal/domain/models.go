package domain

import "time"

// CartItem is one line in the cart: a purchasable configuration of a
// product plus its quantity. Display fields are copied from the product
// at add time; later catalog changes do not touch existing items.
type CartItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Size        string    `json:"size"`
	Fragrance   string    `json:"fragrance"`
	Price       float64   `json:"price"` // unit price, MXN
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"addedAt"`
}

// ConfigKey identifies a product configuration. Two additions with the
// same key refer to the same line item and are merged.
type ConfigKey struct {
	Title     string
	Type      string
	Size      string
	Fragrance string
}

// Key returns the merge key for the item.
func (i CartItem) Key() ConfigKey {
	return ConfigKey{
		Title:     i.Title,
		Type:      i.Type,
		Size:      i.Size,
		Fragrance: i.Fragrance,
	}
}

// LineTotal is the item's unit price times its quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Product is a catalog entry with its selectable configuration axes.
type Product struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Types       []string      `json:"types"`
	Sizes       []ProductSize `json:"sizes"`
	Fragrances  []string      `json:"fragrances"`
	Featured    bool          `json:"featured"`
	New         bool          `json:"new"`
	Available   bool          `json:"available"`
}

// ProductSize is one purchasable size of a product.
type ProductSize struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// ShippingContact holds the shipping form data collected during checkout.
type ShippingContact struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
}

// OrderSummary is the recomputed totals block shown on every checkout step.
type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Lines    int     `json:"lines"` // distinct line items
	Units    int     `json:"units"` // total units across lines
}
