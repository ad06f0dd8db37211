// Package quote defines the data handed to the external quote/PDF
// generator. The generator itself is a collaborator; the core only
// assembles its input.
package quote

import "github.com/velas-starlight/storefront/internal/domain"

// Request is the summary the generator renders: the cart lines with the
// totals in effect, plus the shipping contact.
type Request struct {
	Items    []domain.CartItem      `json:"items"`
	Subtotal float64                `json:"subtotal"`
	Shipping float64                `json:"shipping"`
	Discount float64                `json:"discount"`
	Contact  domain.ShippingContact `json:"contact"`
}

// Generator renders a quote document from a request.
type Generator interface {
	Generate(req Request) error
}
