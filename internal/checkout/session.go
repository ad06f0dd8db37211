// Package checkout drives the cart → shipping → payment step flow for
// the single active checkout session. Forward transitions are gated on
// cart contents and shipping-form validity; every entered step gets a
// freshly recomputed summary.
package checkout

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/cart"
	"github.com/velas-starlight/storefront/internal/discount"
	"github.com/velas-starlight/storefront/internal/domain"
	"github.com/velas-starlight/storefront/internal/notify"
	"github.com/velas-starlight/storefront/internal/pricing"
	"github.com/velas-starlight/storefront/internal/quote"
	"github.com/velas-starlight/storefront/pkg/errors"
)

// ShippingForm is the shipping-details collaborator. Once IsValid reports
// true, Data returns the complete contact; that synchronous readiness
// contract is what lets the payment-step summary recompute immediately
// instead of waiting on a timer.
type ShippingForm interface {
	IsValid() bool
	Data() domain.ShippingContact
}

// PaymentSummary is the final pre-commit summary: the totals block plus
// the per-line breakdown.
type PaymentSummary struct {
	domain.OrderSummary
	Items []pricing.Line `json:"items"`
}

type Session struct {
	mu             sync.Mutex
	step           domain.CheckoutStep
	shippingMethod domain.ShippingMethod

	cart      *cart.Store
	pricing   *pricing.Engine
	discounts *discount.Ledger
	form      ShippingForm
	notifier  notify.Notifier
	quotes    quote.Generator
	logger    *zap.Logger
}

// NewSession creates a checkout session starting at the cart step with
// standard shipping selected. The quote generator may be nil when no
// renderer is attached.
func NewSession(
	store *cart.Store,
	engine *pricing.Engine,
	discounts *discount.Ledger,
	form ShippingForm,
	notifier notify.Notifier,
	quotes quote.Generator,
	logger *zap.Logger,
) *Session {
	return &Session{
		step:           domain.StepCart,
		shippingMethod: domain.ShippingStandard,
		cart:           store,
		pricing:        engine,
		discounts:      discounts,
		form:           form,
		notifier:       notifier,
		quotes:         quotes,
		logger:         logger,
	}
}

// Step returns the current checkout step.
func (s *Session) Step() domain.CheckoutStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// ShippingMethod returns the selected shipping method.
func (s *Session) ShippingMethod() domain.ShippingMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shippingMethod
}

// SetShippingMethod selects the shipping method used for every following
// recomputation. Unknown methods are rejected.
func (s *Session) SetShippingMethod(method domain.ShippingMethod) bool {
	if !method.IsValid() {
		return false
	}
	s.mu.Lock()
	s.shippingMethod = method
	s.mu.Unlock()
	s.logger.Info("Shipping method changed", zap.String("method", string(method)))
	return true
}

// AddItem adds a candidate line item to the cart and announces it.
func (s *Session) AddItem(candidate domain.CartItem) domain.CartItem {
	item := s.cart.AddItem(candidate)
	s.notifier.Notify(notify.LevelSuccess, fmt.Sprintf("%s agregado al carrito", item.Title))
	return item
}

// UpdateQuantity changes a line item's quantity; zero or less removes it.
func (s *Session) UpdateQuantity(id string, quantity int) bool {
	if quantity <= 0 {
		_, ok := s.RemoveItem(id)
		return ok
	}
	return s.cart.UpdateQuantity(id, quantity)
}

// RemoveItem removes a line item from the cart and announces it.
func (s *Session) RemoveItem(id string) (domain.CartItem, bool) {
	removed, ok := s.cart.RemoveItem(id)
	if ok {
		s.notifier.Notify(notify.LevelInfo, fmt.Sprintf("%s eliminado del carrito", removed.Title))
	}
	return removed, ok
}

// ClearCart empties the cart and resets the active discount with it.
// Confirmation is the caller's concern.
func (s *Session) ClearCart() {
	s.cart.Clear()
	s.discounts.Clear()
	s.notifier.Notify(notify.LevelInfo, "Carrito vaciado")
}

// ApplyDiscount validates a code against the table and applies it to the
// current subtotal. Returns the percentage applied.
func (s *Session) ApplyDiscount(code string) (float64, error) {
	subtotal := s.pricing.Subtotal(s.cart.Items())
	pct, err := s.discounts.Apply(code, subtotal)
	if err != nil {
		s.notifier.Notify(notify.LevelError, "Código de descuento inválido")
		return 0, err
	}
	s.notifier.Notify(notify.LevelSuccess, fmt.Sprintf("¡Descuento del %g%% aplicado!", pct))
	return pct, nil
}

// Summary recomputes the totals block for the current selections.
func (s *Session) Summary() domain.OrderSummary {
	s.mu.Lock()
	method := s.shippingMethod
	s.mu.Unlock()
	return s.pricing.Summarize(s.cart.Items(), method, s.discounts.Amount())
}

// ProceedToShipping moves from the cart step to the shipping step. Fails
// without a state change when the cart is empty.
func (s *Session) ProceedToShipping() (domain.OrderSummary, error) {
	if s.cart.Len() == 0 {
		s.notifier.Notify(notify.LevelError, "Tu carrito está vacío")
		return domain.OrderSummary{}, &errors.ErrEmptyCart{}
	}

	s.mu.Lock()
	if s.step != domain.StepShipping && !s.step.CanTransitionTo(domain.StepShipping) {
		from := s.step
		s.mu.Unlock()
		return domain.OrderSummary{}, &errors.ErrInvalidStateTransition{From: from, To: domain.StepShipping}
	}
	s.step = domain.StepShipping
	s.mu.Unlock()

	s.logger.Info("Checkout step entered", zap.String("step", string(domain.StepShipping)))
	return s.Summary(), nil
}

// ProceedToPayment moves from the shipping step to the payment step.
// Fails without a state change when the shipping form reports invalid;
// field-level errors stay with the form collaborator. On entry the full
// summary and line breakdown are recomputed, since this is the last
// point before the user commits.
func (s *Session) ProceedToPayment() (PaymentSummary, error) {
	s.mu.Lock()
	if s.step != domain.StepShipping {
		from := s.step
		s.mu.Unlock()
		return PaymentSummary{}, &errors.ErrInvalidStateTransition{From: from, To: domain.StepPayment}
	}
	s.mu.Unlock()

	if !s.form.IsValid() {
		return PaymentSummary{}, &errors.ErrShippingFormInvalid{}
	}

	s.mu.Lock()
	s.step = domain.StepPayment
	s.mu.Unlock()

	s.logger.Info("Checkout step entered", zap.String("step", string(domain.StepPayment)))
	return s.FinalSummary(), nil
}

// BackToCart returns to the cart step.
func (s *Session) BackToCart() {
	s.mu.Lock()
	s.step = domain.StepCart
	s.mu.Unlock()
}

// BackToShipping returns to the shipping step.
func (s *Session) BackToShipping() {
	s.mu.Lock()
	s.step = domain.StepShipping
	s.mu.Unlock()
}

// FinalSummary recomputes the detailed payment-step summary.
func (s *Session) FinalSummary() PaymentSummary {
	items := s.cart.Items()
	return PaymentSummary{
		OrderSummary: s.Summary(),
		Items:        s.pricing.Breakdown(items),
	}
}

// DownloadQuote assembles the quote data and hands it to the generator.
// Requires a non-empty cart and a shipping contact with at least a full
// name and email; without those the user is routed back to the shipping
// step to complete them.
func (s *Session) DownloadQuote() error {
	if s.quotes == nil {
		s.notifier.Notify(notify.LevelError, "Error: Generador de PDF no disponible")
		return fmt.Errorf("quote generator not configured")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		s.notifier.Notify(notify.LevelError, "No hay productos en el carrito")
		return &errors.ErrEmptyCart{}
	}

	contact := s.form.Data()
	if contact.FullName == "" || contact.Email == "" {
		s.notifier.Notify(notify.LevelWarning, "Por favor, completa los datos de envío antes de descargar la cotización")
		s.BackToShipping()
		return &errors.ErrMissingContact{}
	}

	s.mu.Lock()
	method := s.shippingMethod
	s.mu.Unlock()

	req := quote.Request{
		Items:    items,
		Subtotal: s.pricing.Subtotal(items),
		Shipping: s.pricing.ShippingCost(items, method),
		Discount: s.discounts.Amount(),
		Contact:  contact,
	}

	s.notifier.Notify(notify.LevelInfo, "Generando cotización PDF...")
	if err := s.quotes.Generate(req); err != nil {
		s.logger.Error("Quote generation failed", zap.Error(err))
		s.notifier.Notify(notify.LevelError, "Error generando la cotización. Inténtalo de nuevo.")
		return err
	}

	s.notifier.Notify(notify.LevelSuccess, "¡Cotización descargada exitosamente!")
	return nil
}
