package errors

import (
	"fmt"

	"github.com/velas-starlight/storefront/internal/domain"
)

// ErrNotFound indicates a cart item id that is not in the store.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrEmptyCart indicates a checkout action that needs at least one item.
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrInvalidStateTransition indicates an invalid checkout step transition.
type ErrInvalidStateTransition struct {
	From domain.CheckoutStep
	To   domain.CheckoutStep
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid step transition from %s to %s", e.From, e.To)
}

// ErrShippingFormInvalid indicates the shipping details form failed
// validation. Field-level errors are the form collaborator's concern.
type ErrShippingFormInvalid struct{}

func (e *ErrShippingFormInvalid) Error() string {
	return "shipping details are incomplete"
}

// ErrInvalidDiscountCode indicates a code missing from the discount table.
type ErrInvalidDiscountCode struct {
	Code string
}

func (e *ErrInvalidDiscountCode) Error() string {
	return fmt.Sprintf("invalid discount code: %s", e.Code)
}

// ErrMissingContact indicates quote generation was requested before the
// shipping contact had a name and email.
type ErrMissingContact struct{}

func (e *ErrMissingContact) Error() string {
	return "shipping contact needs a full name and email"
}

// ErrStorage wraps a durable-storage read or write failure.
type ErrStorage struct {
	Op  string
	Key string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *ErrStorage) Unwrap() error {
	return e.Err
}
